package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Mtar786/votingApp/internal/core/domain"
	"github.com/Mtar786/votingApp/internal/core/ports"
)

type pollService struct {
	repo ports.PollRepository
}

func NewPollService(repo ports.PollRepository) ports.PollService {
	return &pollService{
		repo: repo,
	}
}

func (s *pollService) Create(ctx context.Context, input ports.CreatePollInput) (*domain.Poll, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, domain.ErrEmptyQuestion
	}

	var options []string
	for _, opt := range input.Options {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		options = append(options, opt)
	}
	if len(options) < 2 {
		return nil, domain.ErrInsufficientOptions
	}

	now := time.Now()
	poll := &domain.Poll{
		ID:        uuid.New(),
		Question:  question,
		Options:   options,
		Tally:     make([]int, len(options)),
		Voters:    []domain.VoterRecord{},
		CreatedBy: input.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Save(ctx, poll); err != nil {
		return nil, err
	}

	return poll, nil
}

func (s *pollService) Get(ctx context.Context, id string) (*domain.Poll, error) {
	pollID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidPollID
	}

	return s.repo.GetByID(ctx, pollID)
}

func (s *pollService) List(ctx context.Context) ([]*domain.Poll, error) {
	return s.repo.GetAll(ctx)
}

// Vote validates the choice against the poll and delegates the
// duplicate-check-and-increment to the repository, which performs it as a
// single atomic update per poll. Options are immutable after creation, so
// the bounds check cannot go stale between the read and the write.
func (s *pollService) Vote(ctx context.Context, input ports.VoteInput) (*domain.Poll, error) {
	poll, err := s.repo.GetByID(ctx, input.PollID)
	if err != nil {
		return nil, err
	}

	if input.Choice < 0 || input.Choice >= len(poll.Options) {
		return nil, domain.ErrInvalidChoice
	}

	return s.repo.RecordVote(ctx, input.PollID, input.UserID, input.Choice)
}
