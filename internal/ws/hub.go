// Package ws pushes notifications to connected admin-portal browsers.
package ws

import (
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Message is the wire envelope sent to portal clients.
type Message struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// Hub maintains the set of connected clients and broadcasts messages to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	mu  sync.RWMutex
	log *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log.With(zap.String("component", "ws_hub")),
	}
}

// Run is the hub's event loop. Call in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Debug("WebSocket client connected", zap.Int("total", total))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Debug("WebSocket client disconnected", zap.Int("total", total))

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Client send buffer full, drop the connection
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast marshals and queues a message for all connected clients.
func (h *Hub) Broadcast(msgType string, payload any) {
	raw, err := json.Marshal(Message{
		Type:      msgType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
	if err != nil {
		h.log.Error("Failed to marshal broadcast message", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- raw:
	default:
		h.log.Warn("Broadcast channel full, dropping message", zap.String("type", msgType))
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
