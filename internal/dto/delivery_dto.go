package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDeliveryAgentRequest struct {
	FullName    string `json:"full_name" validate:"required"`
	Phone       string `json:"phone" validate:"required,min=6,max=32"`
	VehicleType string `json:"vehicle_type"`
}

type DeliveryAgentResponse struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	Phone       string    `json:"phone"`
	VehicleType string    `json:"vehicle_type,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type AssignDeliveryRequest struct {
	OrderID uuid.UUID `json:"order_id" validate:"required"`
	AgentID uuid.UUID `json:"agent_id" validate:"required"`
}

type DeliveryAssignmentResponse struct {
	ID          uuid.UUID  `json:"id"`
	OrderID     uuid.UUID  `json:"order_id"`
	AgentID     uuid.UUID  `json:"agent_id"`
	AgentName   string     `json:"agent_name,omitempty"`
	Status      string     `json:"status"`
	AssignedAt  time.Time  `json:"assigned_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
