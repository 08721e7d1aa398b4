package server

import (
	"net/http"

	"distrohub/logger"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Pages are served cross-origin during development; the API is public
	// read-side anyway.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// PlayerWSHandler attaches a page to the playback session: the page
// receives transport commands and state snapshots, and reports its audio
// element events back. The handler blocks until the page disconnects.
func (h *APIHandler) PlayerWSHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("websocket upgrade failed", logger.ErrorField(err))
		return
	}

	h.hub.Register(conn, h.session.Snapshot())
}
