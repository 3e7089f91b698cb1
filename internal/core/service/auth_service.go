package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/charactervault/character-api/internal/core/domain"
	"github.com/charactervault/character-api/internal/core/ports"
)

// AuthService implements login, registration, password reset and account
// updates. The caller's identity is always an explicit parameter; there is no
// ambient "current user" state.
type AuthService struct {
	repo     ports.UserRepository
	tokens   ports.TokenService
	throttle ports.LoginThrottle
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, throttle: throttle, logger: logger}
}

// Login verifies the password and issues a token encoding the stored role.
// Unknown usernames and wrong passwords are indistinguishable to the caller:
// both fail with ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		ok, err := s.throttle.Allow(ctx, username)
		if err != nil {
			// fail open: a throttle backend outage must not lock everyone out
			s.logger.Warn().Err(err).Msg("login throttle unavailable")
		} else if !ok {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, username)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.Enabled {
		return "", nil, domain.ErrAccountDisabled
	}

	token, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("login succeeded")
	return token, user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle record failed")
	}
}

// Register creates a new account with role USER, enabled by default. Username
// and email are checked for uniqueness first; the storage layer's unique
// indexes backstop the check-then-insert race and surface the same errors.
func (s *AuthService) Register(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("username", username).Msg("user registered")
	return nil
}

// ResetPassword overwrites the password hash for the account owning the given
// email. The flow intentionally requires no re-authentication of the caller;
// that is the inherited contract, not an oversight.
func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if email == "" || newPassword == "" {
		return domain.ErrUserNotFound
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Str("username", user.Username).Msg("password reset")
	return nil
}

// UpdateAccount changes the caller's username and/or email. A username change
// invalidates the old token's subject, so a replacement token is minted; the
// result carries an empty token when the username is unchanged.
func (s *AuthService) UpdateAccount(ctx context.Context, currentUsername, newUsername, newEmail string) (*ports.UpdateAccountResult, error) {
	user, err := s.repo.FindByUsername(ctx, currentUsername)
	if err != nil {
		return nil, err
	}

	usernameChanged := newUsername != "" && newUsername != user.Username
	emailChanged := newEmail != "" && newEmail != user.Email

	if usernameChanged {
		if _, err := s.repo.FindByUsername(ctx, newUsername); err == nil {
			return nil, domain.ErrDuplicateUsername
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}
	if emailChanged {
		if _, err := s.repo.FindByEmail(ctx, newEmail); err == nil {
			return nil, domain.ErrDuplicateEmail
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	username := user.Username
	if usernameChanged {
		username = newUsername
	}
	email := user.Email
	if emailChanged {
		email = newEmail
	}

	updated := user
	if usernameChanged || emailChanged {
		updated, err = s.repo.UpdateAccount(ctx, user.ID, username, email)
		if err != nil {
			return nil, err
		}
	}

	result := &ports.UpdateAccountResult{User: updated}
	if usernameChanged {
		token, err := s.tokens.Issue(updated.Username, updated.Role)
		if err != nil {
			return nil, err
		}
		result.Token = token
		s.logger.Info().Str("old_username", currentUsername).Str("username", updated.Username).Msg("username changed, token rotated")
	}

	return result, nil
}
