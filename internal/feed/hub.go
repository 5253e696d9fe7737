// Package feed keeps trip-list clients live: booking events published at
// checkout come back in through a queue consumer and are fanned out to
// every connected websocket. Clients respond by re-running their trip list
// load; no incremental state is pushed.
package feed

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks the websocket connections subscribed to booking events.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
}

// Broadcast sends msg to every subscriber. Connections that fail to write
// are closed and dropped; the next event goes only to live ones.
func (h *Hub) Broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}
