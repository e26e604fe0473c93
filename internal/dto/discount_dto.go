package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDiscountRequest struct {
	Code           string     `json:"code" validate:"required,min=3,max=64"`
	Description    string     `json:"description"`
	Type           string     `json:"type" validate:"required,oneof=percent fixed"`
	Value          float64    `json:"value" validate:"required,gt=0"`
	MinOrderAmount float64    `json:"min_order_amount" validate:"gte=0"`
	UsageLimit     int        `json:"usage_limit" validate:"gte=0"`
	StartsAt       time.Time  `json:"starts_at" validate:"required"`
	EndsAt         *time.Time `json:"ends_at"`
}

type DiscountResponse struct {
	ID             uuid.UUID  `json:"id"`
	Code           string     `json:"code"`
	Description    string     `json:"description,omitempty"`
	Type           string     `json:"type"`
	Value          float64    `json:"value"`
	MinOrderAmount float64    `json:"min_order_amount"`
	UsageLimit     int        `json:"usage_limit"`
	UsageCount     int        `json:"usage_count"`
	StartsAt       time.Time  `json:"starts_at"`
	EndsAt         *time.Time `json:"ends_at,omitempty"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
}

type RedeemDiscountRequest struct {
	Code        string  `json:"code" validate:"required"`
	OrderAmount float64 `json:"order_amount" validate:"required,gt=0"`
}

type RedeemDiscountResponse struct {
	Code           string  `json:"code"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalAmount    float64 `json:"final_amount"`
}
