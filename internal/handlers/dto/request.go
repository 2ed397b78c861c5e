package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/skillbarter/backend/internal/models"
)

type SendRequestRequest struct {
	ReceiverID           string `json:"receiverId" binding:"required"`
	SkillRequested       string `json:"skillRequested" binding:"required"`
	SkillOfferedInReturn string `json:"skillOfferedInReturn" binding:"required"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted declined"`
}

type BarterRequestResponse struct {
	ID                   uuid.UUID     `json:"id"`
	SenderID             uuid.UUID     `json:"senderId"`
	ReceiverID           uuid.UUID     `json:"receiverId"`
	SkillRequested       string        `json:"skillRequested"`
	SkillOfferedInReturn string        `json:"skillOfferedInReturn"`
	Status               string        `json:"status"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
	Sender               *UserResponse `json:"sender,omitempty"`
	Receiver             *UserResponse `json:"receiver,omitempty"`
}

func NewBarterRequestResponse(request *models.BarterRequest) BarterRequestResponse {
	resp := BarterRequestResponse{
		ID:                   request.ID,
		SenderID:             request.SenderID,
		ReceiverID:           request.ReceiverID,
		SkillRequested:       request.SkillRequested,
		SkillOfferedInReturn: request.SkillOfferedInReturn,
		Status:               request.Status,
		CreatedAt:            request.CreatedAt,
		UpdatedAt:            request.UpdatedAt,
	}

	if request.Sender.ID != uuid.Nil {
		sender := NewUserResponse(&request.Sender)
		resp.Sender = &sender
	}
	if request.Receiver.ID != uuid.Nil {
		receiver := NewUserResponse(&request.Receiver)
		resp.Receiver = &receiver
	}

	return resp
}
