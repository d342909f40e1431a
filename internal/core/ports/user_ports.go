package ports

import (
	"context"

	"github.com/Mtar786/votingApp/internal/core/domain"
)

type UserRepository interface {
	// Create persists the user and fills in the assigned id and creation
	// time. Returns domain.ErrUsernameTaken on a username collision.
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
