package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReturnRequest struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	CustomerID    *uuid.UUID `gorm:"type:uuid;index"` // nil for guest orders
	Status        string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Reason        string     `gorm:"type:text;not null"`
	SubmittedAt   time.Time  `gorm:"not null"`
	DecisionAt    *time.Time
	DecisionNotes string     `gorm:"type:text"`
	DecidedBy     *uuid.UUID `gorm:"type:uuid"`
	RefundedAt    *time.Time
	RefundKey     string `gorm:"type:varchar(128)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	// Relations
	Items  []ReturnItem  `gorm:"foreignKey:ReturnRequestID;constraint:OnDelete:CASCADE"`
	Appeal *ReturnAppeal `gorm:"foreignKey:ReturnRequestID"`
}

func (ReturnRequest) TableName() string {
	return "return_requests"
}

type ReturnItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReturnRequestID uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderItemID     uuid.UUID `gorm:"type:uuid;not null"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null"`
	ProductName     string    `gorm:"type:varchar(255);not null"`
	SKU             string    `gorm:"type:varchar(64);not null"`
	ReturnQuantity  int       `gorm:"not null"`
	MaxQuantity     int       `gorm:"not null"`
	UnitPrice       float64   `gorm:"type:decimal(10,2);not null"`
	TotalPrice      float64   `gorm:"type:decimal(10,2);not null"`
}

func (ReturnItem) TableName() string {
	return "return_items"
}

type ReturnAppeal struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReturnRequestID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"` // one appeal per request
	Reason          string    `gorm:"type:text;not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	SubmittedAt     time.Time `gorm:"not null"`
	DecisionAt      *time.Time
	DecisionNotes   string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (ReturnAppeal) TableName() string {
	return "return_appeals"
}
