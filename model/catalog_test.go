package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelease_Year(t *testing.T) {
	r := CatalogRelease{ReleaseDate: "2024-03-01"}
	assert.Equal(t, "2024", r.Year())

	r = CatalogRelease{ReleaseDate: ""}
	assert.Equal(t, "", r.Year())

	// A bare year still parses as itself.
	r = CatalogRelease{ReleaseDate: "2023"}
	assert.Equal(t, "2023", r.Year())
}

func TestRelease_IsMultiTrack(t *testing.T) {
	r := CatalogRelease{
		ReleaseType: ReleaseTypeAlbum,
		Tracks:      []CatalogTrack{{ID: "t1"}},
	}
	// Classification is independent of track count.
	assert.False(t, r.IsMultiTrack())

	r.Tracks = append(r.Tracks, CatalogTrack{ID: "t2"})
	assert.True(t, r.IsMultiTrack())
}

func TestRelease_PlayerTracks(t *testing.T) {
	r := CatalogRelease{
		ID:          "r1",
		Title:       "Stone Cold",
		CoverURL:    "https://cdn/cover.jpg",
		Genre:       "Rock",
		ReleaseDate: "2023-05-20",
		Tracks: []CatalogTrack{
			{ID: "t1", Title: "Stone Cold", ArtistName: "The Boulders", AudioURL: "https://cdn/t1.mp3"},
			{ID: "t2", Title: "Gravel Road", ArtistName: "The Boulders", AudioURL: "https://cdn/t2.mp3", Genre: "Hard Rock"},
		},
	}

	tracks := r.PlayerTracks()
	require.Len(t, tracks, 2)

	assert.Equal(t, "t1", tracks[0].ID)
	assert.Equal(t, "Stone Cold", tracks[0].Album)
	assert.Equal(t, "https://cdn/cover.jpg", tracks[0].CoverURL)
	assert.Equal(t, "2023", tracks[0].ReleaseYear)
	// Track genre falls back to the release genre when missing.
	assert.Equal(t, "Rock", tracks[0].Genre)
	assert.Equal(t, "Hard Rock", tracks[1].Genre)
}
