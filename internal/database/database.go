package database

import (
	"errors"

	"gorm.io/gorm"
)

// ErrValidation is returned by write paths when a required field is missing
// or empty. Nothing is persisted when it is returned.
var ErrValidation = errors.New("missing required field")

type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}
