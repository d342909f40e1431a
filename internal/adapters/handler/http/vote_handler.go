package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Mtar786/votingApp/internal/core/domain"
	"github.com/Mtar786/votingApp/internal/core/ports"
)

type VoteHandler struct {
	service ports.PollService
}

func NewVoteHandler(service ports.PollService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type voteRequest struct {
	// pointer so a missing choice is distinguishable from choice 0
	Choice *int `json:"choice"`
}

type voteResponse struct {
	Message string       `json:"message"`
	Poll    *domain.Poll `json:"poll"`
}

// VoteOnPoll godoc
// @Summary      Casts the authenticated user's single vote on a poll
// @Tags         polls
// @Accept       json
// @Success      200
// @Failure      400
// @Failure      404
// @Router       /polls/{id}/vote [post]
func (h *VoteHandler) VoteOnPoll(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, domain.ErrInvalidPollID.Error())
		return
	}

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Choice == nil {
		respondError(w, http.StatusBadRequest, domain.ErrMissingChoice.Error())
		return
	}

	input := ports.VoteInput{
		PollID: pollID,
		UserID: userID,
		Choice: *req.Choice,
	}

	poll, err := h.service.Vote(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidChoice) || errors.Is(err, domain.ErrAlreadyVoted) {
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

	respondJSON(w, http.StatusOK, voteResponse{
		Message: "Vote recorded",
		Poll:    poll,
	})
}
