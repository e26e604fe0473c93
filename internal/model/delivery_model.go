package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryAgent struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName    string    `gorm:"type:varchar(255);not null"`
	Phone       string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	VehicleType string    `gorm:"type:varchar(64)"`
	IsActive    bool      `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (DeliveryAgent) TableName() string {
	return "delivery_agents"
}

type DeliveryAssignment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	AgentID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Status      string    `gorm:"type:varchar(20);not null;default:'assigned'"`
	AssignedAt  time.Time `gorm:"not null"`
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relations
	Agent DeliveryAgent `gorm:"foreignKey:AgentID"`
}

func (DeliveryAssignment) TableName() string {
	return "delivery_assignments"
}
