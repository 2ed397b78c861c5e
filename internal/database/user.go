package database

import (
	"github.com/google/uuid"

	"github.com/skillbarter/backend/internal/models"
)

func (d *Database) SaveUser(user *models.User) error {
	return d.db.Create(user).Error
}

func (d *Database) GetUser(id uuid.UUID) (*models.User, error) {
	user := models.User{}
	if err := d.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) FindUserByEmail(email string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsersExcept returns every registered user except the given one,
// newest first. Backs the browse page.
func (d *Database) ListUsersExcept(id uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := d.db.
		Where("id != ?", id).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
