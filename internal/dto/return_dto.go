package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitReturnItemRequest struct {
	OrderItemID    uuid.UUID `json:"order_item_id" validate:"required"`
	ReturnQuantity int       `json:"return_quantity" validate:"required,gt=0"`
}

type SubmitReturnRequest struct {
	OrderID uuid.UUID                 `json:"order_id" validate:"required"`
	Reason  string                    `json:"reason" validate:"required,min=10"`
	Items   []SubmitReturnItemRequest `json:"items" validate:"required,min=1,dive"`
}

type ReviewReturnRequest struct {
	Decision string `json:"decision" validate:"required,oneof=APPROVED DENIED"`
	Notes    string `json:"notes,omitempty"`
}

type SubmitAppealRequest struct {
	Reason string `json:"reason" validate:"required,min=10"`
}

type ReviewAppealRequest struct {
	Decision string `json:"decision" validate:"required,oneof=APPROVED DENIED"`
	Notes    string `json:"notes,omitempty"`
}

type ReturnItemResponse struct {
	ID             uuid.UUID `json:"id"`
	OrderItemID    uuid.UUID `json:"order_item_id"`
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	SKU            string    `json:"sku"`
	ReturnQuantity int       `json:"return_quantity"`
	MaxQuantity    int       `json:"max_quantity"`
	UnitPrice      float64   `json:"unit_price"`
	TotalPrice     float64   `json:"total_price"`
}

type ReturnAppealResponse struct {
	ID            uuid.UUID  `json:"id"`
	Reason        string     `json:"reason"`
	Status        string     `json:"status"`
	SubmittedAt   time.Time  `json:"submitted_at"`
	DecisionAt    *time.Time `json:"decision_at,omitempty"`
	DecisionNotes string     `json:"decision_notes,omitempty"`
}

type ReturnRequestResponse struct {
	ID                uuid.UUID             `json:"id"`
	OrderID           uuid.UUID             `json:"order_id"`
	CustomerID        *uuid.UUID            `json:"customer_id,omitempty"`
	Status            string                `json:"status"`
	Reason            string                `json:"reason"`
	SubmittedAt       time.Time             `json:"submitted_at"`
	DecisionAt        *time.Time            `json:"decision_at,omitempty"`
	DecisionNotes     string                `json:"decision_notes,omitempty"`
	TotalRefundAmount float64               `json:"total_refund_amount"`
	RefundedAt        *time.Time            `json:"refunded_at,omitempty"`
	CanBeAppealed     bool                  `json:"can_be_appealed"`
	Items             []ReturnItemResponse  `json:"items"`
	Appeal            *ReturnAppealResponse `json:"appeal,omitempty"`
}

type ReturnListResponse struct {
	Returns []ReturnRequestResponse `json:"returns"`
	Page    int                     `json:"page"`
	Limit   int                     `json:"limit"`
	Total   int64                   `json:"total"`
}
