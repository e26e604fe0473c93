package entity

import (
	"time"

	"github.com/google/uuid"
)

type DiscountType string

const (
	DiscountTypePercent DiscountType = "percent"
	DiscountTypeFixed   DiscountType = "fixed"
)

type Discount struct {
	ID             uuid.UUID
	Code           string
	Description    string
	Type           DiscountType
	Value          float64
	MinOrderAmount float64
	UsageLimit     int // 0 = unlimited
	UsageCount     int
	StartsAt       time.Time
	EndsAt         *time.Time
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
