package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/charactervault/character-api/internal/core/domain"
	"github.com/charactervault/character-api/internal/core/ports"
)

// UserAdminService implements the ADMIN-only user management operations.
type UserAdminService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserAdminService(repo ports.UserRepository, logger zerolog.Logger) *UserAdminService {
	return &UserAdminService{repo: repo, logger: logger}
}

func (s *UserAdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

// SetRole changes a user's role. The new role takes effect on the user's next
// token issuance; tokens already in flight keep their old role until expiry.
func (s *UserAdminService) SetRole(ctx context.Context, id, role string) error {
	if !domain.ValidRole(role) {
		return domain.ErrInvalidRole
	}

	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Str("role", role).Msg("user role updated")
	return nil
}

func (s *UserAdminService) SetEnabled(ctx context.Context, id string, enabled bool) error {
	if err := s.repo.UpdateEnabled(ctx, id, enabled); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Bool("enabled", enabled).Msg("user status updated")
	return nil
}
