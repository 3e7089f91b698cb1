package ports

import (
	"context"

	"github.com/charactervault/character-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user records.
//
// Create and the Update* methods must surface storage-level unique constraint
// violations as domain.ErrDuplicateUsername / domain.ErrDuplicateEmail; the
// unique indexes are the true backstop against check-then-write races.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	UpdateAccount(ctx context.Context, id, username, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateRole(ctx context.Context, id, role string) error
	UpdateEnabled(ctx context.Context, id string, enabled bool) error
}
