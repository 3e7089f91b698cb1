package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/charactervault/character-api/internal/core/domain"
	"github.com/charactervault/character-api/internal/core/ports"
)

// characterDocument is the on-disk JSON shape of one character. The storage
// layer treats it as opaque text; this is the only place the schema exists.
type characterDocument struct {
	Name            string   `json:"name"`
	URL             string   `json:"url,omitempty"`
	Image           string   `json:"image,omitempty"`
	Films           []string `json:"films"`
	ShortFilms      []string `json:"shortFilms"`
	TVShows         []string `json:"tvShows"`
	VideoGames      []string `json:"videoGames"`
	ParkAttractions []string `json:"parkAttractions"`
	Allies          []string `json:"allies"`
	Enemies         []string `json:"enemies"`
}

// CharacterService maps structured character fields to and from the opaque
// JSON documents held by the repository.
type CharacterService struct {
	repo   ports.CharacterRepository
	logger zerolog.Logger
}

func NewCharacterService(repo ports.CharacterRepository, logger zerolog.Logger) *CharacterService {
	return &CharacterService{repo: repo, logger: logger}
}

// List decodes every stored record. Records whose document fails to decode are
// skipped with a warning rather than failing the whole listing; one rotten row
// must not take the public list down.
func (s *CharacterService) List(ctx context.Context) ([]*domain.Character, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	characters := make([]*domain.Character, 0, len(records))
	for _, rec := range records {
		ch, err := decodeRecord(rec)
		if err != nil {
			s.logger.Warn().Err(err).Str("id", rec.ID).Msg("skipping malformed character record")
			continue
		}
		characters = append(characters, ch)
	}
	return characters, nil
}

// GetByID returns one character. A malformed stored document is reported as
// not-found: the single-record path has nothing usable to return.
func (s *CharacterService) GetByID(ctx context.Context, id string) (*domain.Character, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ch, err := decodeRecord(rec)
	if err != nil {
		s.logger.Warn().Err(err).Str("id", id).Msg("malformed character record")
		return nil, domain.ErrCharacterNotFound
	}
	return ch, nil
}

// Create serializes the fields verbatim into a new document.
func (s *CharacterService) Create(ctx context.Context, fields ports.CharacterFields) (*domain.Character, error) {
	data, err := encodeFields(fields)
	if err != nil {
		return nil, err
	}

	rec, err := s.repo.Insert(ctx, data)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", rec.ID).Str("name", fields.Name).Msg("character created")
	return decodeRecord(rec)
}

// Update fully replaces the stored document from the given fields; this is
// never a partial merge.
func (s *CharacterService) Update(ctx context.Context, id string, fields ports.CharacterFields) (*domain.Character, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	data, err := encodeFields(fields)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Replace(ctx, id, data); err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", id).Str("name", fields.Name).Msg("character updated")
	return decodeRecord(&domain.CharacterRecord{ID: id, Data: data})
}

// Delete removes a character. Deleting an unknown id succeeds.
func (s *CharacterService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("id", id).Msg("character deleted")
	return nil
}

func encodeFields(fields ports.CharacterFields) (string, error) {
	doc := characterDocument{
		Name:            fields.Name,
		URL:             fields.URL,
		Image:           fields.Image,
		Films:           fields.Films,
		ShortFilms:      fields.ShortFilms,
		TVShows:         fields.TVShows,
		VideoGames:      fields.VideoGames,
		ParkAttractions: fields.ParkAttractions,
		Allies:          fields.Allies,
		Enemies:         fields.Enemies,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode character document: %w", err)
	}
	return string(data), nil
}

func decodeRecord(rec *domain.CharacterRecord) (*domain.Character, error) {
	var doc characterDocument
	if err := json.Unmarshal([]byte(rec.Data), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("%w: missing name", domain.ErrMalformedDocument)
	}

	return &domain.Character{
		ID:              rec.ID,
		Name:            doc.Name,
		URL:             doc.URL,
		Image:           doc.Image,
		Films:           emptyIfNil(doc.Films),
		ShortFilms:      emptyIfNil(doc.ShortFilms),
		TVShows:         emptyIfNil(doc.TVShows),
		VideoGames:      emptyIfNil(doc.VideoGames),
		ParkAttractions: emptyIfNil(doc.ParkAttractions),
		Allies:          emptyIfNil(doc.Allies),
		Enemies:         emptyIfNil(doc.Enemies),
	}, nil
}

// emptyIfNil keeps absent lists rendering as [] rather than null on read-back.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
