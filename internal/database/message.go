package database

import (
	"strings"

	"github.com/google/uuid"

	"github.com/skillbarter/backend/internal/models"
)

// AppendMessage persists a new chat message. Sender, receiver and trimmed
// text must all be non-empty, otherwise ErrValidation is returned and
// nothing is written. The store assigns the ID and timestamp.
func (d *Database) AppendMessage(senderID, receiverID uuid.UUID, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if senderID == uuid.Nil || receiverID == uuid.Nil || text == "" {
		return nil, ErrValidation
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
	}

	if err := d.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// History returns every message exchanged between the two users, in either
// direction, oldest first. Messages created within the same timestamp tick
// keep insertion order via the seq tie-break.
func (d *Database) History(userA, userB uuid.UUID) ([]models.Message, error) {
	var messages []models.Message

	err := d.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC, seq ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	return messages, nil
}
