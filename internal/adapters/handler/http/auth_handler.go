package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Mtar786/votingApp/internal/core/domain"
	"github.com/Mtar786/votingApp/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Register godoc
// @Summary      Registers a new user
// @Tags         auth
// @Accept       json
// @Success      201
// @Failure      400
// @Failure      409
// @Router       /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrMissingCredentials) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrUsernameTaken) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondInternalError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, registerResponse{
		ID:       user.ID.String(),
		Username: user.Username,
	})
}

// Login godoc
// @Summary      Authenticates a user and returns a bearer token
// @Tags         auth
// @Accept       json
// @Success      200
// @Failure      401
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, username, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrMissingCredentials) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		respondInternalError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		Token:    token,
		Username: username,
	})
}
