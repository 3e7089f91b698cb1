package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/charactervault/character-api/internal/core/domain"
)

type stubAdminService struct {
	setRoleFn    func(ctx context.Context, id, role string) error
	setEnabledFn func(ctx context.Context, id string, enabled bool) error
}

func (s *stubAdminService) ListUsers(context.Context) ([]*domain.User, error) {
	return []*domain.User{{ID: "1", Username: "alice", PasswordHash: "hash", Role: domain.RoleUser}}, nil
}

func (s *stubAdminService) SetRole(ctx context.Context, id, role string) error {
	return s.setRoleFn(ctx, id, role)
}

func (s *stubAdminService) SetEnabled(ctx context.Context, id string, enabled bool) error {
	return s.setEnabledFn(ctx, id, enabled)
}

func TestAdminHandler_ListUsers_OmitsPasswordHash(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"username":"alice"`) {
		t.Fatalf("missing user in body: %s", body)
	}
	if strings.Contains(body, "hash") {
		t.Fatalf("password hash leaked: %s", body)
	}
}

func TestAdminHandler_UpdateRole(t *testing.T) {
	var gotID, gotRole string
	stub := &stubAdminService{
		setRoleFn: func(_ context.Context, id, role string) error {
			gotID, gotRole = id, role
			return nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/admin/users/42/role", `{"role":"EMPLOYEE"}`)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.UpdateRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "42" || gotRole != "EMPLOYEE" {
		t.Fatalf("unexpected args: %s %s", gotID, gotRole)
	}
}

func TestAdminHandler_UpdateRole_InvalidRolePropagates(t *testing.T) {
	stub := &stubAdminService{
		setRoleFn: func(_ context.Context, _, _ string) error {
			return domain.ErrInvalidRole
		},
	}
	h := NewAdminHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/api/admin/users/42/role", `{"role":"SUPERUSER"}`)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.UpdateRole(c); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAdminHandler_UpdateStatus(t *testing.T) {
	var gotEnabled bool
	stub := &stubAdminService{
		setEnabledFn: func(_ context.Context, _ string, enabled bool) error {
			gotEnabled = enabled
			return nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/admin/users/42/status", `{"enabled":false}`)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotEnabled {
		t.Fatalf("expected enabled=false to reach the service")
	}
}

func TestAdminHandler_UpdateStatus_MissingEnabled(t *testing.T) {
	stub := &stubAdminService{
		setEnabledFn: func(_ context.Context, _ string, _ bool) error {
			t.Fatalf("service should not be called")
			return nil
		},
	}
	h := NewAdminHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/api/admin/users/42/status", `{}`)
	err := h.UpdateStatus(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
