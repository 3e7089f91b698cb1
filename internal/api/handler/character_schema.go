package handler

// --- Request / Response types ---

// characterRequest is the write payload for create and update. Only name is
// mandatory; list fields keep their input order end to end.
type characterRequest struct {
	Name            string   `json:"name" validate:"required"`
	URL             string   `json:"url"`
	Image           string   `json:"image"`
	Films           []string `json:"films"`
	ShortFilms      []string `json:"shortFilms"`
	TVShows         []string `json:"tvShows"`
	VideoGames      []string `json:"videoGames"`
	ParkAttractions []string `json:"parkAttractions"`
	Allies          []string `json:"allies"`
	Enemies         []string `json:"enemies"`
}

// characterResponse is the read payload. Kept separate from the domain type so
// the JSON contract is not coupled to internal changes.
type characterResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	URL             string   `json:"url"`
	Image           string   `json:"image"`
	Films           []string `json:"films"`
	ShortFilms      []string `json:"shortFilms"`
	TVShows         []string `json:"tvShows"`
	VideoGames      []string `json:"videoGames"`
	ParkAttractions []string `json:"parkAttractions"`
	Allies          []string `json:"allies"`
	Enemies         []string `json:"enemies"`
}
