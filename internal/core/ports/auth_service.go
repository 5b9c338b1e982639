package ports

import (
	"context"

	"github.com/cv360/marketplace/internal/core/domain"
)

// RegisterInput carries the fields required to create an account.
// The password arrives in plaintext and is hashed by the service.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
	FullName string
	Phone    string
	Location string
}

// AuthService covers account creation, credential checks and profile reads.
type AuthService interface {
	// Register creates the account and returns a signed token so the
	// caller is logged in immediately.
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	// Login accepts a username or an email as identifier.
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
