package handlers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/FORIFOR/fanscout-app/internal/realtime"
)

// WSHandler exposes the notification push channel. A connection starts
// unsubscribed, becomes subscribed on its first valid subscribe frame
// and is removed from the hub when the transport closes.
type WSHandler struct {
	hub *realtime.Hub
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(hub *realtime.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// RegisterRoutes registers the websocket endpoint on the app root.
func (h *WSHandler) RegisterRoutes(app *fiber.App) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(h.handleConnection))
}

func (h *WSHandler) handleConnection(c *websocket.Conn) {
	defer c.Close()

	var (
		userID     uint
		subID      string
		subscribed bool
	)

	for {
		_, payload, err := c.ReadMessage()
		if err != nil {
			break // transport closed
		}

		var msg realtime.SubscribeMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			// Unrecognized frames are ignored, not errored.
			continue
		}
		if msg.Type != "subscribe" || msg.UserID == 0 || subscribed {
			continue
		}

		// The subscribe frame is trusted as-is; any connection may
		// subscribe as any user until an authorization layer lands in
		// front of this endpoint.
		userID = msg.UserID
		subID = h.hub.Subscribe(userID, c)
		subscribed = true
		log.Printf("Notification subscription opened for user %d", userID)
	}

	if subscribed {
		h.hub.Unsubscribe(userID, subID)
		log.Printf("Notification subscription closed for user %d", userID)
	}
}
