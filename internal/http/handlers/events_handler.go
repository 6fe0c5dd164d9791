package handlers

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"studenthub/internal/broadcast"
)

type EventsHandler struct {
	Hub *broadcast.Hub
}

type eventFrame struct {
	Event string          `json:"event"`
	Data  broadcast.Event `json:"data"`
}

// Upgrade rejects plain HTTP requests on the events route before the
// websocket handshake.
func Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return jsonError(c, fiber.StatusUpgradeRequired, "Websocket connection required.")
	}
	return c.Next()
}

// Serve pushes feesPaid frames to one observer until it disconnects. The
// channel is server-to-client only; inbound frames are read solely to detect
// the close.
func (h *EventsHandler) Serve(c *websocket.Conn) {
	sub := h.Hub.Subscribe()
	defer sub.Close()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev := <-sub.Events():
			if err := c.WriteJSON(eventFrame{Event: "feesPaid", Data: ev}); err != nil {
				return
			}
		case <-closed:
			return
		case <-sub.Done():
			return
		}
	}
}
