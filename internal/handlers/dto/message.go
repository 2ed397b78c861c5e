package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/skillbarter/backend/internal/models"
)

// SendMessagePayload is the data of an inbound send_message frame. The room
// identifier travels in the envelope.
type SendMessagePayload struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Text       string `json:"text"`
}

// MessageResponse is the fully-materialized record broadcast to room
// members and returned by the history endpoint.
type MessageResponse struct {
	ID         uuid.UUID `json:"id"`
	SenderID   uuid.UUID `json:"senderId"`
	ReceiverID uuid.UUID `json:"receiverId"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewMessageResponse(message *models.Message) MessageResponse {
	return MessageResponse{
		ID:         message.ID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Text:       message.Text,
		CreatedAt:  message.CreatedAt,
	}
}
