package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/charactervault/character-api/internal/core/domain"
)

func seedUser(t *testing.T, repo *stubUserRepo, username string) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Username: username,
		Email:    username + "@x.com",
		Role:     domain.RoleUser,
		Enabled:  true,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestUserAdminService_SetRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserAdminService(repo, zerolog.Nop())
	user := seedUser(t, repo, "alice")

	if err := svc.SetRole(context.Background(), user.ID, domain.RoleEmployee); err != nil {
		t.Fatalf("SetRole returned error: %v", err)
	}

	got, _ := repo.FindByID(context.Background(), user.ID)
	if got.Role != domain.RoleEmployee {
		t.Fatalf("role not updated: %s", got.Role)
	}
}

func TestUserAdminService_SetRole_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserAdminService(repo, zerolog.Nop())
	user := seedUser(t, repo, "alice")

	if err := svc.SetRole(context.Background(), user.ID, "SUPERUSER"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserAdminService_SetRole_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserAdminService(repo, zerolog.Nop())

	if err := svc.SetRole(context.Background(), "missing", domain.RoleAdmin); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserAdminService_SetEnabled(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserAdminService(repo, zerolog.Nop())
	user := seedUser(t, repo, "alice")

	if err := svc.SetEnabled(context.Background(), user.ID, false); err != nil {
		t.Fatalf("SetEnabled returned error: %v", err)
	}

	got, _ := repo.FindByID(context.Background(), user.ID)
	if got.Enabled {
		t.Fatalf("expected account disabled")
	}
}

func TestUserAdminService_ListUsers(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserAdminService(repo, zerolog.Nop())
	seedUser(t, repo, "alice")
	seedUser(t, repo, "bob")

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
