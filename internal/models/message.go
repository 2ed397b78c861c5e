package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is immutable once created: there is no update or delete path
// anywhere in the codebase.
//
// Seq is the auto-increment primary key and exists only as an ordering
// tie-break: two messages created within the same timestamp tick must still
// come back from history in insertion order. The UUID is what clients see.
type Message struct {
	Seq        int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	ID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	SenderID   uuid.UUID `gorm:"not null;index:idx_messages_sender_receiver"`
	ReceiverID uuid.UUID `gorm:"not null;index:idx_messages_sender_receiver"`
	Text       string    `gorm:"not null"`
	CreatedAt  time.Time
}

func (m *Message) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
