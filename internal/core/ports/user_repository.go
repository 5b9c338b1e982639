package ports

import (
	"context"

	"github.com/cv360/marketplace/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByIdentifier resolves a login identifier that may be either a
	// username or an email address.
	FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}
