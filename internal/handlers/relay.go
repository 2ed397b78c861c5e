package handlers

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skillbarter/backend/internal/database"
	"github.com/skillbarter/backend/internal/handlers/dto"
	ws "github.com/skillbarter/backend/internal/websocket"
)

// RelayHandler is the websocket message dispatcher: it persists each
// send_message event and fans the stored record out to the target room.
//
// Delivery is at-most-once and best-effort. Invalid or unpersistable events
// are logged and dropped without notifying the sender; the sender's UI
// renders its own messages optimistically and filters the echo client-side.
type RelayHandler struct {
	db  *database.Database
	hub *ws.Hub
}

func NewRelayHandler(db *database.Database, hub *ws.Hub) *RelayHandler {
	return &RelayHandler{db: db, hub: hub}
}

func (h *RelayHandler) HandleMessage(client *ws.Client, msg *ws.Message) error {
	switch msg.Type {
	case ws.TypeSendMessage:
		return h.handleSend(client, msg)

	default:
		log.Printf("Unknown message type: %s", msg.Type)
		return nil
	}
}

func (h *RelayHandler) handleSend(client *ws.Client, msg *ws.Message) error {
	if msg.RoomID == nil || *msg.RoomID == "" {
		log.Printf("send_message from %s without room id, dropped", client.UserID)
		return nil
	}
	roomID := *msg.RoomID

	var payload dto.SendMessagePayload
	if err := json.Unmarshal(msg.Data, &payload); err != nil {
		log.Printf("send_message with malformed payload, dropped: %v", err)
		return nil
	}

	if payload.SenderID == "" || payload.ReceiverID == "" || strings.TrimSpace(payload.Text) == "" {
		log.Printf("send_message with missing fields, dropped")
		return nil
	}

	senderID, err := uuid.Parse(payload.SenderID)
	if err != nil {
		log.Printf("send_message with bad sender id %q, dropped", payload.SenderID)
		return nil
	}
	receiverID, err := uuid.Parse(payload.ReceiverID)
	if err != nil {
		log.Printf("send_message with bad receiver id %q, dropped", payload.ReceiverID)
		return nil
	}

	// The payload sender is trusted, matching current product behavior; the
	// connection is authenticated, so at least note a mismatch.
	if senderID != client.UserID {
		log.Printf("send_message sender %s does not match connection user %s", senderID, client.UserID)
	}

	// Persist first: no member may see a message that is not durable yet.
	message, err := h.db.AppendMessage(senderID, receiverID, payload.Text)
	if err != nil {
		log.Printf("Failed to save message: %v", err)
		return nil
	}

	envelope := ws.Message{
		Type:      ws.TypeReceiveMessage,
		RoomID:    &roomID,
		UserID:    senderID,
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(dto.NewMessageResponse(message))
	if err != nil {
		log.Printf("Failed to marshal message %s: %v", message.ID, err)
		return nil
	}
	envelope.Data = data

	frame, err := json.Marshal(envelope)
	if err != nil {
		log.Printf("Failed to marshal envelope for message %s: %v", message.ID, err)
		return nil
	}

	h.hub.SendToRoom(roomID, frame)

	return nil
}
