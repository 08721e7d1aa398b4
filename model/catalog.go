package model

import "strings"

// Release classification as reported by the catalog backend.
const (
	ReleaseTypeSingle = "single"
	ReleaseTypeEP     = "ep"
	ReleaseTypeAlbum  = "album"
)

// Track is one playable unit. It is a value type shared between the catalog
// engine (display data) and the playback session (playback input); it is
// never mutated after construction.
type Track struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Album       string `json:"album"`
	CoverURL    string `json:"cover_url,omitempty"`
	AudioURL    string `json:"audio_url"`
	Genre       string `json:"genre,omitempty"`
	ReleaseYear string `json:"release_year,omitempty"`
}

// CatalogTrack is a track as delivered by the catalog read endpoint.
type CatalogTrack struct {
	ID             string `json:"id"`
	ISRC           string `json:"isrc"`
	Genre          string `json:"genre"`
	Title          string `json:"title"`
	ClipURL        string `json:"clip_url"`
	Duration       int    `json:"duration"` // seconds
	AudioURL       string `json:"audio_url"`
	ArtistName     string `json:"artist_name"`
	ExplicitLyrics bool   `json:"explicit_lyrics"`
}

// CatalogRelease aggregates the tracks published under one UPC.
type CatalogRelease struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	ArtistName  string         `json:"artist_name"`
	CoverURL    string         `json:"cover_url"`
	Genre       string         `json:"genre"`
	ReleaseType string         `json:"release_type"` // single, ep, album
	ReleaseDate string         `json:"release_date"` // ISO date string
	UPC         string         `json:"upc"`
	Tracks      []CatalogTrack `json:"tracks"`
}

// CatalogResponse is the envelope returned by the catalog read endpoint.
type CatalogResponse struct {
	Success    bool             `json:"success"`
	Data       []CatalogRelease `json:"data"`
	Pagination *struct {
		Total   int  `json:"total"`
		Page    int  `json:"page"`
		Limit   int  `json:"limit"`
		HasMore bool `json:"hasMore"`
	} `json:"pagination,omitempty"`
}

// Year returns the 4-digit year prefix of the release date, or "" when the
// date is missing or malformed.
func (r *CatalogRelease) Year() string {
	year, _, _ := strings.Cut(r.ReleaseDate, "-")
	return year
}

// IsMultiTrack reports whether the UI should render this release as a
// multi-track work. Classification by release_type is independent of the
// track count.
func (r *CatalogRelease) IsMultiTrack() bool {
	return len(r.Tracks) > 1
}

// PlayerTracks converts the release's tracks to playback inputs.
func (r *CatalogRelease) PlayerTracks() []Track {
	tracks := make([]Track, 0, len(r.Tracks))
	for _, t := range r.Tracks {
		genre := t.Genre
		if genre == "" {
			genre = r.Genre
		}
		tracks = append(tracks, Track{
			ID:          t.ID,
			Title:       t.Title,
			Artist:      t.ArtistName,
			Album:       r.Title,
			CoverURL:    r.CoverURL,
			AudioURL:    t.AudioURL,
			Genre:       genre,
			ReleaseYear: r.Year(),
		})
	}
	return tracks
}
