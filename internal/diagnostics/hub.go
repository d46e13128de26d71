// Package diagnostics implements the optional read-only websocket
// broadcaster tap: every command the translator emits is also fanned
// out to connected browser clients for a stick visualizer. It is
// additive and never gates or delays the primary sink.
//
// The hub/client/register/broadcast shape is adapted directly from the
// teacher's root hub.go, re-pointed at translator output instead of
// sensor readings; the backpressure policy (drop rather than block a
// slow client) is unchanged.
package diagnostics

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"hako/internal/command"
)

// Message is the JSON shape broadcast to every connected client.
type Message struct {
	Kind    string  `json:"kind"`
	Button  string  `json:"button,omitempty"`
	Stick   string  `json:"stick,omitempty"`
	X       int     `json:"x,omitempty"`
	Y       int     `json:"y,omitempty"`
	Trigger int     `json:"trigger,omitempty"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans out diagnostic messages to every connected client,
// dropping frames for any client whose send buffer is full rather than
// blocking the broadcaster (and, transitively, the translator loop).
type Hub struct {
	log *logrus.Entry

	mu      sync.Mutex
	clients map[*client]bool

	upgrader websocket.Upgrader
}

// NewHub constructs an empty Hub.
func NewHub(log *logrus.Entry) *Hub {
	return &Hub{
		log:      log,
		clients:  make(map[*client]bool),
		upgrader: websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024},
	}
}

// Handler returns the CORS-wrapped HTTP handler that upgrades incoming
// requests to websocket connections and registers them with the hub.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/diagnostics", h.serveWS)
	return cors.Default().Handler(mux)
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Warn("diagnostics: websocket upgrade failed")
		return
	}

	c := &client{conn: conn, send: make(chan []byte, 16)}
	h.register(c)

	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) writePump(c *client) {
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.unregister(c)
			c.conn.Close()
			return
		}
	}
	c.conn.Close()
}

// readPump discards inbound traffic (the feed is read-only) and only
// exists to notice the client disconnecting.
func (h *Hub) readPump(c *client) {
	defer h.unregister(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// broadcast fans data out to every connected client, dropping it for
// any client whose send buffer is currently full.
func (h *Hub) broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
		}
	}
}

// Publish encodes a translator Command into a Message and broadcasts
// it. Safe to call from the single event-loop goroutine on every
// emitted command; it never blocks on a slow client.
func (h *Hub) Publish(cmd command.Command) {
	msg := Message{}
	switch cmd.Kind {
	case command.KindPress:
		msg.Kind, msg.Button = "press", cmd.Button.String()
	case command.KindRelease:
		msg.Kind, msg.Button = "release", cmd.Button.String()
	case command.KindSetStick:
		msg.Kind = "set_stick"
		if cmd.Stick == command.C {
			msg.Stick = "c"
		} else {
			msg.Stick = "main"
		}
		msg.X, msg.Y = cmd.Coord.X.Int(), cmd.Coord.Y.Int()
	case command.KindSetTrigger:
		msg.Kind = "set_trigger"
		msg.Trigger = cmd.Trigger.Int()
	}

	data, err := json.Marshal(msg)
	if err != nil {
		h.log.WithError(err).Warn("diagnostics: marshal message")
		return
	}
	h.broadcast(data)
}
