package ports

import (
	"context"

	"github.com/charactervault/character-api/internal/core/domain"
)

// CharacterFields is the structured input for create/update. The service
// serializes it verbatim into the stored JSON document: list order is
// preserved and absent optional fields stay absent.
type CharacterFields struct {
	Name            string
	URL             string
	Image           string
	Films           []string
	ShortFilms      []string
	TVShows         []string
	VideoGames      []string
	ParkAttractions []string
	Allies          []string
	Enemies         []string
}

type CharacterService interface {
	List(ctx context.Context) ([]*domain.Character, error)
	GetByID(ctx context.Context, id string) (*domain.Character, error)
	Create(ctx context.Context, fields CharacterFields) (*domain.Character, error)
	Update(ctx context.Context, id string, fields CharacterFields) (*domain.Character, error)
	Delete(ctx context.Context, id string) error
}
