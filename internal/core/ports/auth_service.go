package ports

import (
	"context"

	"github.com/charactervault/character-api/internal/core/domain"
)

// UpdateAccountResult carries the updated user plus a replacement token.
// Token is empty when the username did not change; the caller's existing
// token remains the valid one in that case.
type UpdateAccountResult struct {
	User  *domain.User
	Token string
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Register(ctx context.Context, username, email, password string) error
	ResetPassword(ctx context.Context, email, newPassword string) error
	UpdateAccount(ctx context.Context, currentUsername, newUsername, newEmail string) (*UpdateAccountResult, error)
}
