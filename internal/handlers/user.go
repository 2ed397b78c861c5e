package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillbarter/backend/internal/database"
	"github.com/skillbarter/backend/internal/handlers/dto"
	"github.com/skillbarter/backend/internal/middleware"
)

type UserHandler struct {
	db *database.Database
}

func NewUserHandler(db *database.Database) *UserHandler {
	return &UserHandler{db: db}
}

// ListUsers returns everyone except the caller, for the browse page.
func (h *UserHandler) ListUsers(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	users, err := h.db.ListUsersExcept(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
		return
	}

	result := make([]dto.UserResponse, len(users))
	for i := range users {
		result[i] = dto.NewUserResponse(&users[i])
	}

	c.JSON(http.StatusOK, result)
}

// GetMe returns the caller's own profile.
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	user, err := h.db.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
