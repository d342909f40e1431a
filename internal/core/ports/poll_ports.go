package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/Mtar786/votingApp/internal/core/domain"
)

type PollRepository interface {
	Save(ctx context.Context, poll *domain.Poll) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	// GetAll returns every poll, most recently created first, with the
	// voters projection omitted.
	GetAll(ctx context.Context) ([]*domain.Poll, error)
	// RecordVote appends a voter record and increments the matching tally
	// slot as one atomic update, conditioned on the user not having voted.
	// Returns domain.ErrAlreadyVoted when the condition fails and the
	// updated poll otherwise.
	RecordVote(ctx context.Context, pollID, userID uuid.UUID, choice int) (*domain.Poll, error)
}

type CreatePollInput struct {
	Question  string
	Options   []string
	CreatedBy uuid.UUID
}

type VoteInput struct {
	PollID uuid.UUID
	UserID uuid.UUID
	Choice int
}

type PollService interface {
	Create(ctx context.Context, input CreatePollInput) (*domain.Poll, error)
	Get(ctx context.Context, id string) (*domain.Poll, error)
	List(ctx context.Context) ([]*domain.Poll, error)
	Vote(ctx context.Context, input VoteInput) (*domain.Poll, error)
}
