package player

import (
	"encoding/json"
	"sync"
	"time"

	"distrohub/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// MessageType identifies a websocket message between the session and the
// connected pages.
type MessageType string

const (
	// Server → page transport commands.
	MsgTypeSource MessageType = "source" // bind a new audio source
	MsgTypePlay   MessageType = "play"
	MsgTypePause  MessageType = "pause"
	MsgTypeSeek   MessageType = "seek"
	MsgTypeVolume MessageType = "volume"
	MsgTypeState  MessageType = "state" // full session snapshot push

	// Page → server output events.
	MsgTypeProgress MessageType = "progress" // timeupdate
	MsgTypeMetadata MessageType = "metadata" // loadedmetadata, carries duration
	MsgTypeEnded    MessageType = "ended"    // natural end of track
	MsgTypePlaying  MessageType = "playing"  // actual play/pause state of the element
)

// WSMessage is the wire envelope for player websocket traffic.
type WSMessage struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

// SourceData carries the audio source URL for a source command.
type SourceData struct {
	URL string `json:"url"`
}

// PositionData carries a position in seconds (seek command, progress event).
type PositionData struct {
	Seconds float64 `json:"seconds"`
}

// VolumeData carries a volume in [0,1].
type VolumeData struct {
	Volume float64 `json:"volume"`
}

// MetadataData carries the duration reported by the loaded source.
type MetadataData struct {
	Duration float64 `json:"duration"` // seconds
}

// PlayingData carries the actual playing state of the page's audio element.
type PlayingData struct {
	Playing bool `json:"playing"`
}

const clientSendBuffer = 32

type hubClient struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub bridges the playback session to the browser pages over websockets and
// implements Output: transport commands fan out to every connected page,
// while audio element events flow back in from the primary page.
//
// The oldest connected page is the primary output. Only its events are
// applied, so two open tabs cannot double-report an "ended" event and skip
// two queue entries at once. When the primary disconnects the next oldest
// page takes over.
type Hub struct {
	mu      sync.RWMutex
	clients []*hubClient // registration order, clients[0] is primary

	source string
	volume float64

	timeUpdate  func(float64)
	metadata    func(float64)
	ended       func()
	stateChange func(bool)
}

// NewHub creates an empty hub. Pages attach via Register.
func NewHub() *Hub {
	return &Hub{}
}

// Output implementation.

func (h *Hub) SetSource(url string) {
	h.mu.Lock()
	h.source = url
	h.mu.Unlock()
	h.broadcast(MsgTypeSource, SourceData{URL: url})
}

func (h *Hub) Play() error {
	h.mu.RLock()
	attached := len(h.clients) > 0
	h.mu.RUnlock()
	if !attached {
		return ErrNoOutput
	}
	h.broadcast(MsgTypePlay, nil)
	return nil
}

func (h *Hub) Pause() {
	h.broadcast(MsgTypePause, nil)
}

func (h *Hub) Seek(seconds float64) {
	h.broadcast(MsgTypeSeek, PositionData{Seconds: seconds})
}

func (h *Hub) SetVolume(volume float64) {
	h.mu.Lock()
	h.volume = volume
	h.mu.Unlock()
	h.broadcast(MsgTypeVolume, VolumeData{Volume: volume})
}

func (h *Hub) OnTimeUpdate(fn func(float64)) { h.timeUpdate = fn }
func (h *Hub) OnMetadata(fn func(float64))   { h.metadata = fn }
func (h *Hub) OnEnded(fn func())             { h.ended = fn }
func (h *Hub) OnStateChange(fn func(bool))   { h.stateChange = fn }

// Close disconnects every page.
func (h *Hub) Close() error {
	h.mu.Lock()
	clients := h.clients
	h.clients = nil
	h.mu.Unlock()

	for _, c := range clients {
		close(c.send)
		c.conn.Close()
	}
	return nil
}

// Verify Hub implements Output at compile time.
var _ Output = (*Hub)(nil)

// ClientCount returns the number of attached pages.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastState pushes a session snapshot to every page. Wired to the
// session's OnChange hook by the server.
func (h *Hub) BroadcastState(state State) {
	h.broadcast(MsgTypeState, state)
}

// Register attaches a page connection and serves it until it drops. Blocks
// for the lifetime of the connection; call from the websocket handler's
// goroutine.
func (h *Hub) Register(conn *websocket.Conn, initial State) {
	client := &hubClient{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, clientSendBuffer),
	}

	h.mu.Lock()
	h.clients = append(h.clients, client)
	source, volume := h.source, h.volume
	h.mu.Unlock()

	logger.Info("player page attached", logger.String("clientId", client.id))

	go client.writePump()

	// Late joiners need the current source and volume before the first
	// command arrives, plus a state snapshot to render from.
	if source != "" {
		client.enqueue(marshalMessage(MsgTypeSource, SourceData{URL: source}))
	}
	client.enqueue(marshalMessage(MsgTypeVolume, VolumeData{Volume: volume}))
	client.enqueue(marshalMessage(MsgTypeState, initial))

	h.readPump(client)
}

func (h *Hub) readPump(client *hubClient) {
	defer h.unregister(client)

	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("player page read error",
					logger.String("clientId", client.id),
					logger.ErrorField(err))
			}
			return
		}

		var msg WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			logger.Warn("invalid player message",
				logger.String("clientId", client.id),
				logger.ErrorField(err))
			continue
		}

		if !h.isPrimary(client) {
			// Secondary pages mirror state but do not drive the session.
			continue
		}
		h.dispatch(msg)
	}
}

func (h *Hub) dispatch(msg WSMessage) {
	switch msg.Type {
	case MsgTypeProgress:
		var data PositionData
		if json.Unmarshal(msg.Data, &data) == nil && h.timeUpdate != nil {
			h.timeUpdate(data.Seconds)
		}
	case MsgTypeMetadata:
		var data MetadataData
		if json.Unmarshal(msg.Data, &data) == nil && h.metadata != nil {
			h.metadata(data.Duration)
		}
	case MsgTypeEnded:
		if h.ended != nil {
			h.ended()
		}
	case MsgTypePlaying:
		var data PlayingData
		if json.Unmarshal(msg.Data, &data) == nil && h.stateChange != nil {
			h.stateChange(data.Playing)
		}
	default:
		logger.Debug("unhandled player message type", logger.String("type", string(msg.Type)))
	}
}

func (h *Hub) isPrimary(client *hubClient) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients) > 0 && h.clients[0] == client
}

func (h *Hub) unregister(client *hubClient) {
	h.mu.Lock()
	found := false
	for i, c := range h.clients {
		if c == client {
			h.clients = append(h.clients[:i], h.clients[i+1:]...)
			found = true
			break
		}
	}
	remaining := len(h.clients)
	h.mu.Unlock()

	if !found {
		// Already detached by Close.
		return
	}

	close(client.send)
	client.conn.Close()
	logger.Info("player page detached",
		logger.String("clientId", client.id),
		logger.Int("remaining", remaining))

	// No pages left means the output cannot actually be playing.
	if remaining == 0 && h.stateChange != nil {
		h.stateChange(false)
	}
}

func (h *Hub) broadcast(msgType MessageType, data interface{}) {
	payload := marshalMessage(msgType, data)

	h.mu.RLock()
	clients := append([]*hubClient(nil), h.clients...)
	h.mu.RUnlock()

	for _, c := range clients {
		c.enqueue(payload)
	}
}

func marshalMessage(msgType MessageType, data interface{}) []byte {
	msg := WSMessage{
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
	}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			logger.Error("failed to marshal player message", logger.ErrorField(err))
			return nil
		}
		msg.Data = raw
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		logger.Error("failed to marshal player envelope", logger.ErrorField(err))
		return nil
	}
	return payload
}

func (c *hubClient) enqueue(payload []byte) {
	if payload == nil {
		return
	}
	select {
	case c.send <- payload:
	default:
		// Slow page; drop rather than block the session.
	}
}

func (c *hubClient) writePump() {
	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}
