package handler

import (
	"github.com/charactervault/character-api/internal/core/domain"
	"github.com/charactervault/character-api/internal/core/ports"
)

// --- Request → Service input ---

func toCharacterFields(req characterRequest) ports.CharacterFields {
	return ports.CharacterFields{
		Name:            req.Name,
		URL:             req.URL,
		Image:           req.Image,
		Films:           req.Films,
		ShortFilms:      req.ShortFilms,
		TVShows:         req.TVShows,
		VideoGames:      req.VideoGames,
		ParkAttractions: req.ParkAttractions,
		Allies:          req.Allies,
		Enemies:         req.Enemies,
	}
}

// --- Service result → HTTP response ---

func toCharacterResponse(ch *domain.Character) characterResponse {
	return characterResponse{
		ID:              ch.ID,
		Name:            ch.Name,
		URL:             ch.URL,
		Image:           ch.Image,
		Films:           ch.Films,
		ShortFilms:      ch.ShortFilms,
		TVShows:         ch.TVShows,
		VideoGames:      ch.VideoGames,
		ParkAttractions: ch.ParkAttractions,
		Allies:          ch.Allies,
		Enemies:         ch.Enemies,
	}
}
