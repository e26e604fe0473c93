package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus follows the fulfillment pipeline. Transitions only move
// forward; CANCELLED is reachable until the order ships.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	SKU         string
	Quantity    int
	UnitPrice   float64
	TotalPrice  float64
}

type Order struct {
	ID             uuid.UUID
	OrderNumber    string
	CustomerID     *uuid.UUID
	CustomerEmail  string
	Status         OrderStatus
	Subtotal       float64
	DiscountAmount float64
	DiscountCode   string
	TotalAmount    float64
	PlacedAt       time.Time
	DeliveredAt    *time.Time
	Items          []OrderItem
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ItemQuantity is the total unit count across all lines, the quantity
// input of the purchase points calculation.
func (o *Order) ItemQuantity() int {
	total := 0
	for _, it := range o.Items {
		total += it.Quantity
	}
	return total
}
