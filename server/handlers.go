package server

import (
	"encoding/json"
	"net/http"

	"distrohub/catalog"
	"distrohub/config"
	"distrohub/core/player"
	"distrohub/repository"
)

// APIHandler holds the shared dependencies of all HTTP handlers.
type APIHandler struct {
	client      *catalog.Client
	engine      *catalog.Engine
	session     *player.Session
	hub         *player.Hub
	contentRepo repository.ContentRepository
	cfg         *config.Config
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(
	client *catalog.Client,
	engine *catalog.Engine,
	session *player.Session,
	hub *player.Hub,
	contentRepo repository.ContentRepository,
	cfg *config.Config,
) *APIHandler {
	return &APIHandler{
		client:      client,
		engine:      engine,
		session:     session,
		hub:         hub,
		contentRepo: contentRepo,
		cfg:         cfg,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
