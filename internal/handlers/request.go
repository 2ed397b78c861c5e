package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillbarter/backend/internal/database"
	"github.com/skillbarter/backend/internal/handlers/dto"
	"github.com/skillbarter/backend/internal/middleware"
	"github.com/skillbarter/backend/internal/models"
)

type RequestHandler struct {
	db *database.Database
}

func NewRequestHandler(db *database.Database) *RequestHandler {
	return &RequestHandler{db: db}
}

// SendRequest creates a new pending barter request addressed to another user.
func (h *RequestHandler) SendRequest(c *gin.Context) {
	senderID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.SendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid receiver id"})
		return
	}

	if receiverID == senderID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "you cannot send a request to yourself"})
		return
	}

	if _, err := h.db.GetUser(receiverID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "receiver not found"})
		return
	}

	request := &models.BarterRequest{
		SenderID:             senderID,
		ReceiverID:           receiverID,
		SkillRequested:       req.SkillRequested,
		SkillOfferedInReturn: req.SkillOfferedInReturn,
		Status:               models.StatusPending,
	}

	if err := h.db.CreateRequest(request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create request"})
		return
	}

	c.JSON(http.StatusCreated, dto.NewBarterRequestResponse(request))
}

// GetIncomingRequests lists requests addressed to the caller, newest first.
func (h *RequestHandler) GetIncomingRequests(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	requests, err := h.db.IncomingRequests(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch requests"})
		return
	}

	result := make([]dto.BarterRequestResponse, len(requests))
	for i := range requests {
		result[i] = dto.NewBarterRequestResponse(&requests[i])
	}

	c.JSON(http.StatusOK, result)
}

// GetAcceptedBarters lists accepted barters the caller is party to. An
// accepted barter is what unlocks the chat between the two users.
func (h *RequestHandler) GetAcceptedBarters(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	requests, err := h.db.AcceptedBarters(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch barters"})
		return
	}

	result := make([]dto.BarterRequestResponse, len(requests))
	for i := range requests {
		result[i] = dto.NewBarterRequestResponse(&requests[i])
	}

	c.JSON(http.StatusOK, result)
}

// UpdateRequestStatus accepts or declines a request. Only the receiver may
// decide.
func (h *RequestHandler) UpdateRequestStatus(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	var req dto.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be accepted or declined"})
		return
	}

	request, err := h.db.GetRequest(requestID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}

	if request.ReceiverID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "you can only update requests sent to you"})
		return
	}

	request.Status = req.Status
	if err := h.db.UpdateRequest(request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update request"})
		return
	}

	c.JSON(http.StatusOK, dto.NewBarterRequestResponse(request))
}
