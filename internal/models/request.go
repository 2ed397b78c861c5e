package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Barter request statuses
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
)

type BarterRequest struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	SenderID             uuid.UUID `gorm:"not null;index"`
	ReceiverID           uuid.UUID `gorm:"not null;index"`
	SkillRequested       string    `gorm:"not null"`
	SkillOfferedInReturn string    `gorm:"not null"`
	Status               string    `gorm:"not null;default:'pending';check:status IN ('pending','accepted','declined')"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Sender   User `gorm:"foreignKey:SenderID"`
	Receiver User `gorm:"foreignKey:ReceiverID"`
}

func (r *BarterRequest) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
