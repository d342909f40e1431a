package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Mtar786/votingApp/internal/core/ports"
)

func NewHandler(pollHandler *PollHandler, voteHandler *VoteHandler, authHandler *AuthHandler, authService ports.AuthService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Voting App API"})
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		r.Route("/polls", func(r chi.Router) {
			r.Get("/", pollHandler.ListPolls)
			r.Get("/{id}", pollHandler.GetPoll)

			r.Group(func(r chi.Router) {
				r.Use(RequireAuth(authService))
				r.Post("/", pollHandler.CreatePoll)
				r.Post("/{id}/vote", voteHandler.VoteOnPoll)
			})
		})
	})

	return r
}
