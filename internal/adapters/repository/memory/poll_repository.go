// Package memory provides in-memory implementations of the repository
// ports, used to unit test the services without a database. RecordVote
// holds the store lock across the duplicate check and the mutation, which
// gives the same per-poll serialization the postgres transaction provides.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Mtar786/votingApp/internal/core/domain"
	"github.com/Mtar786/votingApp/internal/core/ports"
)

type PollRepository struct {
	mu    sync.Mutex
	polls map[uuid.UUID]*domain.Poll
}

func NewPollRepository() *PollRepository {
	return &PollRepository{
		polls: make(map[uuid.UUID]*domain.Poll),
	}
}

var _ ports.PollRepository = (*PollRepository)(nil)

func (r *PollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.polls[poll.ID] = clonePoll(poll)
	return nil
}

func (r *PollRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	poll, ok := r.polls[id]
	if !ok {
		return nil, domain.ErrPollNotFound
	}
	return clonePoll(poll), nil
}

func (r *PollRepository) GetAll(ctx context.Context) ([]*domain.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	polls := make([]*domain.Poll, 0, len(r.polls))
	for _, poll := range r.polls {
		summary := clonePoll(poll)
		summary.Voters = nil
		polls = append(polls, summary)
	}
	sort.Slice(polls, func(i, j int) bool {
		return polls[i].CreatedAt.After(polls[j].CreatedAt)
	})
	return polls, nil
}

func (r *PollRepository) RecordVote(ctx context.Context, pollID, userID uuid.UUID, choice int) (*domain.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	poll, ok := r.polls[pollID]
	if !ok {
		return nil, domain.ErrPollNotFound
	}
	if poll.HasVoted(userID) {
		return nil, domain.ErrAlreadyVoted
	}
	if choice < 0 || choice >= len(poll.Options) {
		return nil, domain.ErrInvalidChoice
	}

	now := time.Now()
	poll.Tally[choice]++
	poll.Voters = append(poll.Voters, domain.VoterRecord{
		UserID:    userID,
		Choice:    choice,
		CreatedAt: now,
	})
	poll.UpdatedAt = now

	return clonePoll(poll), nil
}

func clonePoll(poll *domain.Poll) *domain.Poll {
	clone := *poll
	clone.Options = append([]string(nil), poll.Options...)
	clone.Tally = append([]int(nil), poll.Tally...)
	if poll.Voters != nil {
		clone.Voters = append([]domain.VoterRecord{}, poll.Voters...)
	}
	return &clone
}
