package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Mtar786/votingApp/internal/core/domain"
	"github.com/Mtar786/votingApp/internal/core/ports"
)

type UserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

var _ ports.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}
