package catalog

import (
	"fmt"
	"testing"

	"distrohub/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRelease(id, title, artist, genre, releaseType, releaseDate string, trackTitles ...string) model.CatalogRelease {
	r := model.CatalogRelease{
		ID:          id,
		Title:       title,
		ArtistName:  artist,
		Genre:       genre,
		ReleaseType: releaseType,
		ReleaseDate: releaseDate,
	}
	for i, t := range trackTitles {
		r.Tracks = append(r.Tracks, model.CatalogTrack{
			ID:    fmt.Sprintf("%s-t%d", id, i),
			Title: t,
		})
	}
	return r
}

func testReleases() []model.CatalogRelease {
	return []model.CatalogRelease{
		makeRelease("r1", "Rock Anthem", "The Boulders", "Rock", "single", "2024-03-01", "Rock Anthem"),
		makeRelease("r2", "Quiet Nights", "Mellow Trio", "Pop", "ep", "2023-11-15", "Quiet Nights", "Softer Still"),
		makeRelease("r3", "Stone Cold", "The Boulders", "Rock", "album", "2023-05-20", "Stone Cold", "Gravel Road"),
		makeRelease("r4", "Dance Floor", "Nite Owls", "Pop", "single", "2024-01-09", "Dance Floor"),
	}
}

func TestEngine_Facets(t *testing.T) {
	e := NewEngine(12)
	e.SetReleases(testReleases())

	assert.Equal(t, []string{"Pop", "Rock"}, e.Genres())
	assert.Equal(t, []string{"2024", "2023"}, e.Years())
	// Release types keep source order, not sorted.
	assert.Equal(t, []string{"single", "ep", "album"}, e.ReleaseTypes())
}

func TestEngine_Facets_SkipEmptyGenre(t *testing.T) {
	releases := testReleases()
	releases = append(releases, makeRelease("r5", "No Genre", "Unknown", "", "single", "2022-01-01"))

	e := NewEngine(12)
	e.SetReleases(releases)

	assert.Equal(t, []string{"Pop", "Rock"}, e.Genres())
	assert.Contains(t, e.Years(), "2022")
}

func TestEngine_FilterGenreAndYear(t *testing.T) {
	e := NewEngine(12)
	e.SetReleases(testReleases())

	e.SetQuery(Query{Genre: "Rock", Year: "2024"})

	filtered := e.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "r1", filtered[0].ID)
}

func TestEngine_SearchCaseInsensitive(t *testing.T) {
	e := NewEngine(12)
	e.SetReleases(testReleases())

	e.SetQuery(Query{Search: "ROCK"})

	filtered := e.Filtered()
	require.Len(t, filtered, 2)
	assert.Equal(t, "r1", filtered[0].ID)
	assert.Equal(t, "r3", filtered[1].ID)
}

func TestEngine_SearchMatchesArtistAndTrackTitle(t *testing.T) {
	e := NewEngine(12)
	e.SetReleases(testReleases())

	e.SetQuery(Query{Search: "owls"})
	require.Len(t, e.Filtered(), 1)

	// "Gravel Road" only appears as a track title inside r3.
	e.SetQuery(Query{Search: "gravel"})
	filtered := e.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "r3", filtered[0].ID)
}

func TestEngine_NeutralValuesMatchAll(t *testing.T) {
	e := NewEngine(12)
	e.SetReleases(testReleases())

	e.SetQuery(Query{Search: "", Genre: "all", Year: "all", ReleaseType: "all"})
	assert.Len(t, e.Filtered(), 4)

	// Empty strings normalize to the neutral value.
	e.SetQuery(Query{})
	assert.Len(t, e.Filtered(), 4)
}

func TestEngine_FiltersCombineWithAnd(t *testing.T) {
	e := NewEngine(12)
	e.SetReleases(testReleases())

	e.SetQuery(Query{Search: "boulders", Genre: "Rock", Year: "2023", ReleaseType: "album"})

	filtered := e.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "r3", filtered[0].ID)
}

func manyReleases(n int) []model.CatalogRelease {
	releases := make([]model.CatalogRelease, 0, n)
	for i := 0; i < n; i++ {
		releases = append(releases, makeRelease(
			fmt.Sprintf("r%d", i),
			fmt.Sprintf("Release %d", i),
			"Artist", "Rock", "single", "2024-01-01",
			fmt.Sprintf("Track %d", i)))
	}
	return releases
}

func TestEngine_Pagination(t *testing.T) {
	e := NewEngine(12)
	e.SetReleases(manyReleases(30))

	assert.Len(t, e.Releases(), 12)
	assert.Equal(t, 30, e.TotalCount())
	assert.True(t, e.HasMore())

	e.LoadMore()
	assert.Len(t, e.Releases(), 24)
	assert.True(t, e.HasMore())

	e.LoadMore()
	assert.Len(t, e.Releases(), 30)
	assert.False(t, e.HasMore())

	// Past the cap LoadMore changes no state.
	e.LoadMore()
	assert.Len(t, e.Releases(), 30)
	assert.False(t, e.HasMore())
}

func TestEngine_FilterChangeResetsPaging(t *testing.T) {
	e := NewEngine(12)
	e.SetReleases(manyReleases(30))

	e.LoadMore()
	require.Len(t, e.Releases(), 24)

	e.SetQuery(Query{Search: "release"})
	assert.Len(t, e.Releases(), 12)
	assert.True(t, e.HasMore())
}

func TestEngine_SameQueryKeepsPaging(t *testing.T) {
	e := NewEngine(12)
	e.SetReleases(manyReleases(30))

	e.SetQuery(Query{Genre: "Rock"})
	e.LoadMore()
	require.Len(t, e.Releases(), 24)

	// Re-applying the identical query must not rewind.
	e.SetQuery(Query{Genre: "Rock"})
	assert.Len(t, e.Releases(), 24)
}

func TestEngine_SetReleasesResetsPaging(t *testing.T) {
	e := NewEngine(12)
	e.SetReleases(manyReleases(30))
	e.LoadMore()
	require.Len(t, e.Releases(), 24)

	e.SetReleases(manyReleases(20))
	assert.Len(t, e.Releases(), 12)
	assert.Equal(t, 20, e.TotalCount())
}

func TestEngine_FewerResultsThanPage(t *testing.T) {
	e := NewEngine(12)
	e.SetReleases(manyReleases(5))

	assert.Len(t, e.Releases(), 5)
	assert.False(t, e.HasMore())

	e.LoadMore()
	assert.Len(t, e.Releases(), 5)
}
