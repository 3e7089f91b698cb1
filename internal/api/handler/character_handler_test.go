package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/charactervault/character-api/internal/core/domain"
	"github.com/charactervault/character-api/internal/core/ports"
)

type stubCharacterService struct {
	listFn   func(ctx context.Context) ([]*domain.Character, error)
	getFn    func(ctx context.Context, id string) (*domain.Character, error)
	createFn func(ctx context.Context, fields ports.CharacterFields) (*domain.Character, error)
	updateFn func(ctx context.Context, id string, fields ports.CharacterFields) (*domain.Character, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubCharacterService) List(ctx context.Context) ([]*domain.Character, error) {
	return s.listFn(ctx)
}

func (s *stubCharacterService) GetByID(ctx context.Context, id string) (*domain.Character, error) {
	return s.getFn(ctx, id)
}

func (s *stubCharacterService) Create(ctx context.Context, fields ports.CharacterFields) (*domain.Character, error) {
	return s.createFn(ctx, fields)
}

func (s *stubCharacterService) Update(ctx context.Context, id string, fields ports.CharacterFields) (*domain.Character, error) {
	return s.updateFn(ctx, id, fields)
}

func (s *stubCharacterService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestCharacterHandler_Create_PreservesListsVerbatim(t *testing.T) {
	stub := &stubCharacterService{
		createFn: func(_ context.Context, fields ports.CharacterFields) (*domain.Character, error) {
			if fields.Name != "Elsa" {
				t.Fatalf("unexpected name: %s", fields.Name)
			}
			if len(fields.Films) != 2 || fields.Films[0] != "Frozen" || fields.Films[1] != "Frozen II" {
				t.Fatalf("films order not preserved: %v", fields.Films)
			}
			return &domain.Character{
				ID:    "abc",
				Name:  fields.Name,
				Films: fields.Films,
			}, nil
		},
	}
	h := NewCharacterHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/characters", `{"name":"Elsa","films":["Frozen","Frozen II"]}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "abc" || resp["name"] != "Elsa" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCharacterHandler_Create_MissingName(t *testing.T) {
	stub := &stubCharacterService{
		createFn: func(_ context.Context, _ ports.CharacterFields) (*domain.Character, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewCharacterHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/characters", `{"films":["Frozen"]}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if !strings.Contains(err.Error(), "name is required") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestCharacterHandler_Get_NotFoundPropagates(t *testing.T) {
	stub := &stubCharacterService{
		getFn: func(_ context.Context, id string) (*domain.Character, error) {
			return nil, domain.ErrCharacterNotFound
		},
	}
	h := NewCharacterHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/characters/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrCharacterNotFound) {
		t.Fatalf("expected ErrCharacterNotFound, got %v", err)
	}
}

func TestCharacterHandler_List(t *testing.T) {
	stub := &stubCharacterService{
		listFn: func(_ context.Context) ([]*domain.Character, error) {
			return []*domain.Character{
				{ID: "1", Name: "Elsa", Films: []string{"Frozen"}},
				{ID: "2", Name: "Mickey", Films: []string{}},
			}, nil
		},
	}
	h := NewCharacterHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/characters", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["name"] != "Elsa" || resp[1]["name"] != "Mickey" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCharacterHandler_Delete(t *testing.T) {
	deleted := ""
	stub := &stubCharacterService{
		deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewCharacterHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/characters/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "abc" {
		t.Fatalf("unexpected id: %s", deleted)
	}
}
