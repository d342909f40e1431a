package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/Mtar786/votingApp/internal/core/domain"
)

// AuthService is the credential store: it owns user records, password
// verification and bearer tokens. Nothing outside it parses token internals.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, string, error) // returns token, username
	Verify(tokenString string) (uuid.UUID, error)
}
