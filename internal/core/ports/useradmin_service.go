package ports

import (
	"context"

	"github.com/charactervault/character-api/internal/core/domain"
)

// UserAdminService exposes the ADMIN-only user management operations.
type UserAdminService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	SetRole(ctx context.Context, id, role string) error
	SetEnabled(ctx context.Context, id string, enabled bool) error
}
