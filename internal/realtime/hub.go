// Package realtime delivers newly created notifications to live
// WebSocket connections subscribed per user.
package realtime

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/FORIFOR/fanscout-app/internal/models"
)

// Conn is the minimal connection surface the hub needs. The websocket
// handler passes the live connection; tests pass fakes.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// SubscribeMessage is the only client-to-server frame the gateway
// understands. Frames with any other type are ignored.
type SubscribeMessage struct {
	Type   string `json:"type"`
	UserID uint   `json:"userId"`
}

// Event is the server-to-client push envelope.
type Event struct {
	Type         string               `json:"type"`
	Notification *models.Notification `json:"notification"`
}

type client struct {
	conn Conn
	mu   sync.Mutex // serializes writes to the underlying connection
}

// Hub is the subscription registry. A connection enters the registry on
// its subscribe frame and leaves it on transport close or write failure.
// No delivery acknowledgement, no retry: a push to a dead connection is
// dropped and the connection is unregistered.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uint]map[string]*client // userID -> connection id -> client
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[uint]map[string]*client),
	}
}

// Subscribe registers a connection for the given user and returns the
// registry key used to unsubscribe later. The user id is taken from the
// subscribe frame as-is; there is no ownership check on subscriptions.
func (h *Hub) Subscribe(userID uint, conn Conn) string {
	id := uuid.New().String()

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[string]*client)
	}
	h.subscribers[userID][id] = &client{conn: conn}
	return id
}

// Unsubscribe removes a connection from the registry. Unknown ids are a
// no-op, so close paths can call it unconditionally.
func (h *Hub) Unsubscribe(userID uint, id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.subscribers[userID]
	if !ok {
		return
	}
	delete(conns, id)
	if len(conns) == 0 {
		delete(h.subscribers, userID)
	}
}

// Publish pushes a notification to every connection subscribed as its
// recipient. Zero subscribers is not an error; the notification stays
// queryable over HTTP. Connections whose write fails are dropped.
func (h *Hub) Publish(notification models.Notification) {
	h.mu.RLock()
	conns := make(map[string]*client, len(h.subscribers[notification.UserID]))
	for id, cl := range h.subscribers[notification.UserID] {
		conns[id] = cl
	}
	h.mu.RUnlock()

	event := Event{Type: "notification", Notification: &notification}
	for id, cl := range conns {
		cl.mu.Lock()
		err := cl.conn.WriteJSON(event)
		cl.mu.Unlock()
		if err != nil {
			log.Printf("Dropping notification subscriber for user %d: %v", notification.UserID, err)
			h.Unsubscribe(notification.UserID, id)
			cl.conn.Close()
		}
	}
}

// SubscriberCount reports how many live connections are subscribed for
// the user.
func (h *Hub) SubscriberCount(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[userID])
}
