package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Mtar786/votingApp/internal/core/domain"
	"github.com/Mtar786/votingApp/internal/core/ports"
)

type PollHandler struct {
	service ports.PollService
}

func NewPollHandler(service ports.PollService) *PollHandler {
	return &PollHandler{
		service: service,
	}
}

type createPollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// pollSummaryResponse is the list projection: the voters field is omitted
// entirely, callers get tallies but not who voted.
type pollSummaryResponse struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Options   []string  `json:"options"`
	Tally     []int     `json:"tally"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePoll godoc
// @Summary      Creates a new poll
// @Tags         polls
// @Accept       json
// @Success      201
// @Failure      400
// @Router       /polls [post]
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var req createPollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ports.CreatePollInput{
		Question:  req.Question,
		Options:   req.Options,
		CreatedBy: userID,
	}

	poll, err := h.service.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuestion) || errors.Is(err, domain.ErrInsufficientOptions) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondInternalError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, poll)
}

// GetPoll godoc
// @Summary      Returns a single poll with its voter records
// @Tags         polls
// @Success      200
// @Failure      404
// @Router       /polls/{id} [get]
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	poll, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPollID) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrPollNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondInternalError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, poll)
}

// ListPolls godoc
// @Summary      Lists all polls, newest first, without voter records
// @Tags         polls
// @Success      200
// @Router       /polls [get]
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.service.List(r.Context())
	if err != nil {
		respondInternalError(w, err)
		return
	}

	summaries := make([]pollSummaryResponse, 0, len(polls))
	for _, poll := range polls {
		summaries = append(summaries, pollSummaryResponse{
			ID:        poll.ID,
			Question:  poll.Question,
			Options:   poll.Options,
			Tally:     poll.Tally,
			CreatedBy: poll.CreatedBy,
			CreatedAt: poll.CreatedAt,
			UpdatedAt: poll.UpdatedAt,
		})
	}

	respondJSON(w, http.StatusOK, summaries)
}
