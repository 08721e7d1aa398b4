package server

import (
	"net/http"

	"distrohub/model"
)

func (h *APIHandler) respondState(w http.ResponseWriter) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"state":   h.session.Snapshot(),
	})
}

// GetPlayerStateHandler returns a snapshot of the playback session.
func (h *APIHandler) GetPlayerStateHandler(w http.ResponseWriter, r *http.Request) {
	h.respondState(w)
}

// PlayTrackHandler loads the posted track and starts playback.
func (h *APIHandler) PlayTrackHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Track model.Track `json:"track"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Track.ID == "" || body.Track.AudioURL == "" {
		respondError(w, http.StatusBadRequest, "track id and audio_url are required")
		return
	}

	h.session.PlayTrack(body.Track)
	h.respondState(w)
}

// TogglePlayHandler pauses or resumes playback. No-op when nothing is loaded.
func (h *APIHandler) TogglePlayHandler(w http.ResponseWriter, r *http.Request) {
	h.session.TogglePlay()
	h.respondState(w)
}

// NextTrackHandler advances to the queue head, or stops at end of queue.
func (h *APIHandler) NextTrackHandler(w http.ResponseWriter, r *http.Request) {
	h.session.NextTrack()
	h.respondState(w)
}

// PrevTrackHandler restarts the current track from zero.
func (h *APIHandler) PrevTrackHandler(w http.ResponseWriter, r *http.Request) {
	h.session.PrevTrack()
	h.respondState(w)
}

// SeekHandler jumps to a position in seconds (clamped by the session).
func (h *APIHandler) SeekHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Seconds float64 `json:"seconds"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	h.session.SeekTo(body.Seconds)
	h.respondState(w)
}

// VolumeHandler sets the playback volume (clamped into [0,1]).
func (h *APIHandler) VolumeHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Volume float64 `json:"volume"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	h.session.SetVolume(body.Volume)
	h.respondState(w)
}

// QueueHandler appends a track to the queue (POST) or clears it (DELETE).
func (h *APIHandler) QueueHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var body struct {
			Track model.Track `json:"track"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		if body.Track.ID == "" {
			respondError(w, http.StatusBadRequest, "track id is required")
			return
		}
		h.session.AddToQueue(body.Track)
	case http.MethodDelete:
		h.session.ClearQueue()
	default:
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	h.respondState(w)
}

// ShufflePlayHandler plays a random permutation of the posted tracks:
// first element immediately, the rest as the queue.
func (h *APIHandler) ShufflePlayHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Tracks []model.Track `json:"tracks"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if len(body.Tracks) == 0 {
		respondError(w, http.StatusBadRequest, "tracks are required")
		return
	}

	h.session.ShufflePlay(body.Tracks)
	h.respondState(w)
}

// ToggleShuffleHandler flips shuffle mode.
func (h *APIHandler) ToggleShuffleHandler(w http.ResponseWriter, r *http.Request) {
	h.session.ToggleShuffle()
	h.respondState(w)
}

// ToggleExpandHandler flips the full-screen player view flag.
func (h *APIHandler) ToggleExpandHandler(w http.ResponseWriter, r *http.Request) {
	h.session.ToggleExpand()
	h.respondState(w)
}
