package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/skillbarter/backend/internal/models"
)

type RegisterRequest struct {
	Name          string   `json:"name" binding:"required,min=2,max=50"`
	Email         string   `json:"email" binding:"required,email"`
	Password      string   `json:"password" binding:"required,min=8,max=72"`
	SkillsOffered []string `json:"skillsOffered"`
	SkillsWanted  []string `json:"skillsWanted"`
	Bio           string   `json:"bio"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public shape of a user. The password hash never
// leaves the server.
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	SkillsOffered []string  `json:"skillsOffered"`
	SkillsWanted  []string  `json:"skillsWanted"`
	Bio           string    `json:"bio"`
	CreatedAt     time.Time `json:"createdAt"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func NewUserResponse(user *models.User) UserResponse {
	skillsOffered := user.SkillsOffered
	if skillsOffered == nil {
		skillsOffered = []string{}
	}
	skillsWanted := user.SkillsWanted
	if skillsWanted == nil {
		skillsWanted = []string{}
	}

	return UserResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		SkillsOffered: skillsOffered,
		SkillsWanted:  skillsWanted,
		Bio:           user.Bio,
		CreatedAt:     user.CreatedAt,
	}
}
