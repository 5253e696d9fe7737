package handler

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"tripplanner/internal/feed"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The feed is read-only broadcast data, so any origin may subscribe.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type FeedHandler struct {
	hub *feed.Hub
}

func NewFeedHandler(hub *feed.Hub) *FeedHandler {
	return &FeedHandler{hub: hub}
}

func (h *FeedHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/feed/bookings", h.Subscribe)
}

// Subscribe upgrades the connection and registers it with the hub. Clients
// never send application data; the read loop exists only to detect
// disconnects and service control frames.
func (h *FeedHandler) Subscribe(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("[Feed] upgrade failed: %v", err)
		return err
	}

	h.hub.Add(conn)
	defer func() {
		h.hub.Remove(conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}
