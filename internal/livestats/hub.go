package livestats

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeTimeout = 5 * time.Second
	sendBuffer   = 8
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type client struct {
	conn *websocket.Conn
	send chan *Stats
}

// Hub pushes stats snapshots to connected websocket clients.
type Hub struct {
	s Store

	mu      sync.Mutex
	clients map[*client]struct{}
}

// NewHub creates new instance of Hub. s is used to send the first snapshot to new clients.
func NewHub(s Store) *Hub {
	return &Hub{
		s:       s,
		clients: map[*client]struct{}{},
	}
}

// Broadcast sends snapshot to every client. Slow clients are disconnected.
func (h *Hub) Broadcast(s *Stats) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- s:
		default:
			log.Warn("dropping slow websocket client")
			h.remove(c)
		}
	}
}

// Clients returns number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// Ping implements health.Pinger.
func (h *Hub) Ping(context.Context) (interface{}, error) {
	return map[string]int{"clients": h.Clients()}, nil
}

// Name implements health.Pinger.
func (h *Hub) Name() string {
	return "livestats"
}

// ServeHTTP upgrades connection and streams snapshots until client goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Debug("failed to upgrade connection")
		return
	}

	c := &client{conn: conn, send: make(chan *Stats, sendBuffer)}

	s, err := h.s.Get(r.Context())
	if err != nil {
		log.WithError(err).Error("failed to get stats")
		conn.Close() // nolint
		return
	}
	c.send <- s

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go h.write(c)
	h.read(c)
}

// remove must be called with mu held.
func (h *Hub) remove(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// read drains incoming frames, clients are not expected to send anything.
func (h *Hub) read(c *client) {
	defer func() {
		h.mu.Lock()
		h.remove(c)
		h.mu.Unlock()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) write(c *client) {
	defer c.conn.Close() // nolint

	for s := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)) // nolint
		if err := c.conn.WriteJSON(s); err != nil {
			log.WithError(err).Debug("failed to write stats")
			return
		}
	}

	c.conn.WriteMessage(websocket.CloseMessage, // nolint
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
