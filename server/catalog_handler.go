package server

import (
	"net/http"

	"distrohub/catalog"
	"distrohub/logger"
)

// Message shown to users when the catalog cannot be loaded. The only
// recovery is a user-triggered re-fetch.
const catalogFetchErrMsg = "Failed to load the catalog. Please try again."

func (h *APIHandler) catalogPayload() map[string]interface{} {
	return map[string]interface{}{
		"success":      true,
		"data":         h.engine.Releases(),
		"totalCount":   h.engine.TotalCount(),
		"hasMore":      h.engine.HasMore(),
		"query":        h.engine.Query(),
		"genres":       h.engine.Genres(),
		"years":        h.engine.Years(),
		"releaseTypes": h.engine.ReleaseTypes(),
	}
}

// GetCatalogHandler applies the filters from the query string and returns
// the current page window plus the filter facets.
func (h *APIHandler) GetCatalogHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	h.engine.SetQuery(catalog.Query{
		Search:      params.Get("q"),
		Genre:       params.Get("genre"),
		Year:        params.Get("year"),
		ReleaseType: params.Get("type"),
	})

	respondJSON(w, http.StatusOK, h.catalogPayload())
}

// LoadMoreHandler reveals one more page of filtered releases.
func (h *APIHandler) LoadMoreHandler(w http.ResponseWriter, r *http.Request) {
	h.engine.LoadMore()
	respondJSON(w, http.StatusOK, h.catalogPayload())
}

// RefreshCatalogHandler re-fetches the complete release set from the remote
// endpoint. On failure the engine falls back to an empty list and the
// response carries a user-visible message.
func (h *APIHandler) RefreshCatalogHandler(w http.ResponseWriter, r *http.Request) {
	releases, err := h.client.Fetch(r.Context())
	if err != nil {
		logger.Error("catalog fetch failed", logger.ErrorField(err))
		h.engine.SetReleases(nil)
		respondError(w, http.StatusBadGateway, catalogFetchErrMsg)
		return
	}

	logger.Info("catalog fetched", logger.Int("releases", len(releases)))
	h.engine.SetReleases(releases)
	respondJSON(w, http.StatusOK, h.catalogPayload())
}
