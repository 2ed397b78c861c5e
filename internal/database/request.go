package database

import (
	"github.com/google/uuid"

	"github.com/skillbarter/backend/internal/models"
)

func (d *Database) CreateRequest(request *models.BarterRequest) error {
	return d.db.Create(request).Error
}

func (d *Database) GetRequest(id uuid.UUID) (*models.BarterRequest, error) {
	var request models.BarterRequest
	if err := d.db.First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (d *Database) UpdateRequest(request *models.BarterRequest) error {
	return d.db.Save(request).Error
}

// IncomingRequests returns requests addressed to the user, newest first,
// with the sender preloaded for display.
func (d *Database) IncomingRequests(receiverID uuid.UUID) ([]models.BarterRequest, error) {
	var requests []models.BarterRequest
	err := d.db.
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Preload("Sender").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// AcceptedBarters returns accepted requests the user is party to, in either
// role, most recently updated first.
func (d *Database) AcceptedBarters(userID uuid.UUID) ([]models.BarterRequest, error) {
	var requests []models.BarterRequest
	err := d.db.
		Where("status = ? AND (sender_id = ? OR receiver_id = ?)",
			models.StatusAccepted, userID, userID).
		Order("updated_at DESC").
		Preload("Sender").
		Preload("Receiver").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
