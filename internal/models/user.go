package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"not null"`
	Email         string    `gorm:"uniqueIndex;not null"`
	PasswordHash  string    `gorm:"not null"`
	SkillsOffered []string  `gorm:"serializer:json"`
	SkillsWanted  []string  `gorm:"serializer:json"`
	Bio           string
	CreatedAt     time.Time
}

// BeforeCreate assigns the ID application-side so the same model works
// against Postgres and the sqlite test driver.
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
