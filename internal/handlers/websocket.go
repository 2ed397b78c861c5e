package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/skillbarter/backend/internal/middleware"
	ws "github.com/skillbarter/backend/internal/websocket"
)

type WebSocketHandler struct {
	hub      *ws.Hub
	relay    *RelayHandler
	upgrader websocket.Upgrader
}

func NewWebSocketHandler(hub *ws.Hub, relay *RelayHandler) *WebSocketHandler {
	return &WebSocketHandler{
		hub:   hub,
		relay: relay,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// TODO: restrict origin once the frontend domain is fixed
				return true
			},
		},
	}
}

// HandleWebSocket upgrades the connection and starts the client pumps.
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := ws.NewClient(h.hub, conn, userID.(uuid.UUID))

	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump(h.relay)
}
