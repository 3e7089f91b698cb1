package domain

import "errors"

var ErrCharacterNotFound = errors.New("character not found")
var ErrMalformedDocument = errors.New("malformed character document")

// Character is the structured view of one character record. The persisted form
// is a single opaque JSON document; the storage layer never inspects it.
//
// Name is the only mandatory field. Every list keeps its input order: elements
// are never sorted or deduplicated.
type Character struct {
	ID              string   `json:"id"`
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

// CharacterRecord is the raw persisted shape: an id plus the JSON document text.
type CharacterRecord struct {
	ID   string
	Data string
}
