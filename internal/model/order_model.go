package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNumber    string     `gorm:"type:varchar(32);uniqueIndex;not null"`
	CustomerID     *uuid.UUID `gorm:"type:uuid;index"`
	CustomerEmail  string     `gorm:"type:varchar(255);not null"`
	Status         string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Subtotal       float64    `gorm:"type:decimal(10,2);not null"`
	DiscountAmount float64    `gorm:"type:decimal(10,2);default:0"`
	DiscountCode   string     `gorm:"type:varchar(64)"`
	TotalAmount    float64    `gorm:"type:decimal(10,2);not null"`
	PlacedAt       time.Time  `gorm:"not null"`
	DeliveredAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`

	// Relations
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	SKU         string    `gorm:"type:varchar(64);not null"`
	Quantity    int       `gorm:"not null"`
	UnitPrice   float64   `gorm:"type:decimal(10,2);not null"`
	TotalPrice  float64   `gorm:"type:decimal(10,2);not null"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
