package catalog

import (
	"sort"
	"strings"
	"sync"

	"distrohub/model"

	"github.com/samber/lo"
)

// FilterAll is the neutral value that matches every release for the genre,
// year and release-type filters. The search filter's neutral value is "".
const FilterAll = "all"

// DefaultPageSize is the number of releases revealed per page.
const DefaultPageSize = 12

// Query is the combined filter applied to the release list. All four
// predicates are ANDed together.
type Query struct {
	Search      string `json:"search"`
	Genre       string `json:"genre"`
	Year        string `json:"year"`
	ReleaseType string `json:"releaseType"`
}

func (q Query) normalized() Query {
	if q.Genre == "" {
		q.Genre = FilterAll
	}
	if q.Year == "" {
		q.Year = FilterAll
	}
	if q.ReleaseType == "" {
		q.ReleaseType = FilterAll
	}
	return q
}

// Engine derives filter facets and applies client-side filtering and paging
// over the fetched release list. The remote endpoint has no server-side
// filtering, so everything happens here.
//
// The engine owns the pagination state (displayCount); it is not shared with
// the playback session.
type Engine struct {
	mu           sync.RWMutex
	pageSize     int
	releases     []model.CatalogRelease
	query        Query
	displayCount int
}

// NewEngine creates an empty engine with the given page size.
func NewEngine(pageSize int) *Engine {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Engine{
		pageSize:     pageSize,
		query:        Query{}.normalized(),
		displayCount: pageSize,
	}
}

// SetReleases replaces the backing release list and rewinds paging to the
// first page.
func (e *Engine) SetReleases(releases []model.CatalogRelease) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.releases = releases
	e.displayCount = e.pageSize
}

// Query returns the currently applied filter.
func (e *Engine) Query() Query {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.query
}

// SetQuery applies a new filter. Changing any filter resets the display
// count to one page; re-applying the identical query leaves paging alone.
func (e *Engine) SetQuery(q Query) {
	q = q.normalized()
	e.mu.Lock()
	defer e.mu.Unlock()
	if q == e.query {
		return
	}
	e.query = q
	e.displayCount = e.pageSize
}

// Genres returns the sorted set of distinct non-empty release genres.
func (e *Engine) Genres() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	genres := lo.Uniq(lo.FilterMap(e.releases, func(r model.CatalogRelease, _ int) (string, bool) {
		return r.Genre, r.Genre != ""
	}))
	sort.Strings(genres)
	return genres
}

// Years returns the distinct release years, newest first.
func (e *Engine) Years() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	years := lo.Uniq(lo.FilterMap(e.releases, func(r model.CatalogRelease, _ int) (string, bool) {
		year := r.Year()
		return year, year != ""
	}))
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years
}

// ReleaseTypes returns the distinct release types in source order.
func (e *Engine) ReleaseTypes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return lo.Uniq(lo.FilterMap(e.releases, func(r model.CatalogRelease, _ int) (string, bool) {
		return r.ReleaseType, r.ReleaseType != ""
	}))
}

func (e *Engine) matches(r *model.CatalogRelease) bool {
	if e.query.Search != "" {
		needle := strings.ToLower(e.query.Search)
		found := strings.Contains(strings.ToLower(r.Title), needle) ||
			strings.Contains(strings.ToLower(r.ArtistName), needle)
		if !found {
			for _, t := range r.Tracks {
				if strings.Contains(strings.ToLower(t.Title), needle) {
					found = true
					break
				}
			}
		}
		if !found {
			return false
		}
	}
	if e.query.Genre != FilterAll && r.Genre != e.query.Genre {
		return false
	}
	if e.query.Year != FilterAll && !strings.HasPrefix(r.ReleaseDate, e.query.Year) {
		return false
	}
	if e.query.ReleaseType != FilterAll && r.ReleaseType != e.query.ReleaseType {
		return false
	}
	return true
}

func (e *Engine) filteredLocked() []model.CatalogRelease {
	filtered := make([]model.CatalogRelease, 0, len(e.releases))
	for i := range e.releases {
		if e.matches(&e.releases[i]) {
			filtered = append(filtered, e.releases[i])
		}
	}
	return filtered
}

// Filtered returns every release matching the current query.
func (e *Engine) Filtered() []model.CatalogRelease {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.filteredLocked()
}

// Releases returns the currently displayed page window of filtered releases.
func (e *Engine) Releases() []model.CatalogRelease {
	e.mu.RLock()
	defer e.mu.RUnlock()

	filtered := e.filteredLocked()
	if e.displayCount < len(filtered) {
		filtered = filtered[:e.displayCount]
	}
	return filtered
}

// TotalCount returns the number of releases matching the current query.
func (e *Engine) TotalCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.filteredLocked())
}

// HasMore reports whether LoadMore would reveal further releases.
func (e *Engine) HasMore() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.displayCount < len(e.filteredLocked())
}

// LoadMore reveals one more page, capped at the filtered result length.
// Calling it with nothing left to reveal changes no state.
func (e *Engine) LoadMore() {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := len(e.filteredLocked())
	if e.displayCount >= total {
		return
	}
	e.displayCount = min(e.displayCount+e.pageSize, total)
}
