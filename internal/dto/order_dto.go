package dto

import (
	"time"

	"github.com/google/uuid"
)

type OrderItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	SKU         string    `json:"sku"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalPrice  float64   `json:"total_price"`
}

type OrderResponse struct {
	ID             uuid.UUID           `json:"id"`
	OrderNumber    string              `json:"order_number"`
	CustomerID     *uuid.UUID          `json:"customer_id,omitempty"`
	CustomerEmail  string              `json:"customer_email"`
	Status         string              `json:"status"`
	Subtotal       float64             `json:"subtotal"`
	DiscountAmount float64             `json:"discount_amount"`
	DiscountCode   string              `json:"discount_code,omitempty"`
	TotalAmount    float64             `json:"total_amount"`
	PlacedAt       time.Time           `json:"placed_at"`
	DeliveredAt    *time.Time          `json:"delivered_at,omitempty"`
	Items          []OrderItemResponse `json:"items"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
	Total  int64           `json:"total"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PROCESSING SHIPPED DELIVERED CANCELLED"`
}

// OrderDeliveredMessage is the internal bus payload that triggers
// purchase-points accrual once an order reaches DELIVERED.
type OrderDeliveredMessage struct {
	OrderID uuid.UUID `json:"order_id"`
}
