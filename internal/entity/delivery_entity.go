package entity

import (
	"time"

	"github.com/google/uuid"
)

type DeliveryAgent struct {
	ID          uuid.UUID
	FullName    string
	Phone       string
	VehicleType string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type AssignmentStatus string

const (
	AssignmentStatusAssigned  AssignmentStatus = "assigned"
	AssignmentStatusDelivered AssignmentStatus = "delivered"
	AssignmentStatusFailed    AssignmentStatus = "failed"
)

// DeliveryAssignment links a shipped order to the agent carrying it.
type DeliveryAssignment struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	AgentID     uuid.UUID
	Status      AssignmentStatus
	AssignedAt  time.Time
	CompletedAt *time.Time

	Agent *DeliveryAgent
}
