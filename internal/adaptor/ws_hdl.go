package adaptor

import (
	"net/http"

	"photodesk/internal/ws"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type WSHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func NewWSHandler(hub *ws.Hub, log *zap.Logger) *WSHandler {
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Auth happens at the session layer; the socket only pushes
			// notifications, so any origin may connect.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

// Serve handles GET /api/ws (protected): upgrades the connection and attaches
// it to the notification hub.
func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}

	client := ws.NewClient(h.hub, conn)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
