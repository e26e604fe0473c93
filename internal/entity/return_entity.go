package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReturnStatus represents the lifecycle state of a return request.
type ReturnStatus string

const (
	ReturnStatusPending   ReturnStatus = "PENDING"
	ReturnStatusApproved  ReturnStatus = "APPROVED"
	ReturnStatusDenied    ReturnStatus = "DENIED"
	ReturnStatusCompleted ReturnStatus = "COMPLETED"
)

// AppealStatus represents the state of a return appeal.
type AppealStatus string

const (
	AppealStatusPending  AppealStatus = "PENDING"
	AppealStatusApproved AppealStatus = "APPROVED"
	AppealStatusDenied   AppealStatus = "DENIED"
)

// ReturnItem is one line of a return request. MaxQuantity is the quantity
// originally purchased; ReturnQuantity must not exceed it, and TotalPrice
// must reconcile with UnitPrice * ReturnQuantity.
type ReturnItem struct {
	ID              uuid.UUID
	ReturnRequestID uuid.UUID
	OrderItemID     uuid.UUID
	ProductID       uuid.UUID
	ProductName     string
	SKU             string
	ReturnQuantity  int
	MaxQuantity     int
	UnitPrice       float64
	TotalPrice      float64
}

// ReturnAppeal is the single allowed escalation of a denied return decision.
type ReturnAppeal struct {
	ID              uuid.UUID
	ReturnRequestID uuid.UUID
	Reason          string
	Status          AppealStatus
	SubmittedAt     time.Time
	DecisionAt      *time.Time
	DecisionNotes   string
}

// ReturnRequest is a customer-initiated request to reverse part or all of
// an order. DecisionAt/DecisionNotes are set iff the request has been decided.
// RefundedAt/RefundKey are set once the payment gateway has issued the refund,
// so completion never refunds twice. CustomerID is nil for guest orders.
type ReturnRequest struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	CustomerID    *uuid.UUID
	Status        ReturnStatus
	Reason        string
	SubmittedAt   time.Time
	DecisionAt    *time.Time
	DecisionNotes string
	DecidedBy     *uuid.UUID
	RefundedAt    *time.Time
	RefundKey     string
	Items         []ReturnItem
	Appeal        *ReturnAppeal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
