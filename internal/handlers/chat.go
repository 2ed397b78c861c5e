package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillbarter/backend/internal/database"
	"github.com/skillbarter/backend/internal/handlers/dto"
	"github.com/skillbarter/backend/internal/middleware"
)

type ChatHandler struct {
	db *database.Database
}

func NewChatHandler(db *database.Database) *ChatHandler {
	return &ChatHandler{db: db}
}

// GetChatHistory returns every message between the caller and the peer,
// oldest first. Called once when a chat view opens; live messages arrive
// over the websocket instead.
func (h *ChatHandler) GetChatHistory(c *gin.Context) {
	rawUserID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authorized"})
		return
	}
	userID := rawUserID.(uuid.UUID)

	receiverID, err := uuid.Parse(c.Param("receiverId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "receiverId is required"})
		return
	}

	messages, err := h.db.History(userID, receiverID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch chat history"})
		return
	}

	result := make([]dto.MessageResponse, len(messages))
	for i := range messages {
		result[i] = dto.NewMessageResponse(&messages[i])
	}

	c.JSON(http.StatusOK, result)
}
