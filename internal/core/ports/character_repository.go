package ports

import (
	"context"

	"github.com/charactervault/character-api/internal/core/domain"
)

// CharacterRepository persists character documents as opaque JSON text.
// No method inspects or validates the document's shape.
type CharacterRepository interface {
	Insert(ctx context.Context, data string) (*domain.CharacterRecord, error)
	FindAll(ctx context.Context) ([]*domain.CharacterRecord, error)
	FindByID(ctx context.Context, id string) (*domain.CharacterRecord, error)
	Replace(ctx context.Context, id, data string) error
	// Delete is idempotent: deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}
