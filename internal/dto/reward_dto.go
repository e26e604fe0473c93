package dto

import (
	"time"

	"github.com/google/uuid"
)

type RewardRangeRequest struct {
	RangeType   string   `json:"range_type" validate:"required,oneof=QUANTITY AMOUNT"`
	MinValue    float64  `json:"min_value" validate:"gte=0"`
	MaxValue    *float64 `json:"max_value"` // null = unbounded
	Points      int      `json:"points" validate:"required,gt=0"`
	Description string   `json:"description"`
}

type SaveRewardConfigRequest struct {
	PointValue               float64              `json:"point_value" validate:"required,gt=0"`
	IsSystemEnabled          bool                 `json:"is_system_enabled"`
	IsReviewPointsEnabled    bool                 `json:"is_review_points_enabled"`
	ReviewPointsAmount       int                  `json:"review_points_amount" validate:"gte=0"`
	IsSignupPointsEnabled    bool                 `json:"is_signup_points_enabled"`
	SignupPointsAmount       int                  `json:"signup_points_amount" validate:"gte=0"`
	IsPurchasePointsEnabled  bool                 `json:"is_purchase_points_enabled"`
	IsQuantityBasedEnabled   bool                 `json:"is_quantity_based_enabled"`
	IsAmountBasedEnabled     bool                 `json:"is_amount_based_enabled"`
	IsPercentageBasedEnabled bool                 `json:"is_percentage_based_enabled"`
	PercentageRate           float64              `json:"percentage_rate"`
	Activate                 bool                 `json:"activate"`
	RewardRanges             []RewardRangeRequest `json:"reward_ranges" validate:"dive"`
}

type RewardRangeResponse struct {
	ID          uuid.UUID `json:"id"`
	RangeType   string    `json:"range_type"`
	MinValue    float64   `json:"min_value"`
	MaxValue    *float64  `json:"max_value,omitempty"`
	Points      int       `json:"points"`
	Description string    `json:"description,omitempty"`
}

type RewardConfigResponse struct {
	ID                       uuid.UUID             `json:"id"`
	PointValue               float64               `json:"point_value"`
	IsSystemEnabled          bool                  `json:"is_system_enabled"`
	IsReviewPointsEnabled    bool                  `json:"is_review_points_enabled"`
	ReviewPointsAmount       int                   `json:"review_points_amount"`
	IsSignupPointsEnabled    bool                  `json:"is_signup_points_enabled"`
	SignupPointsAmount       int                   `json:"signup_points_amount"`
	IsPurchasePointsEnabled  bool                  `json:"is_purchase_points_enabled"`
	IsQuantityBasedEnabled   bool                  `json:"is_quantity_based_enabled"`
	IsAmountBasedEnabled     bool                  `json:"is_amount_based_enabled"`
	IsPercentageBasedEnabled bool                  `json:"is_percentage_based_enabled"`
	PercentageRate           float64               `json:"percentage_rate"`
	IsActive                 bool                  `json:"is_active"`
	RewardRanges             []RewardRangeResponse `json:"reward_ranges"`
	UpdatedAt                time.Time             `json:"updated_at"`
}

type PointsPreviewRequest struct {
	ItemQuantity int     `json:"item_quantity" validate:"gte=0"`
	OrderAmount  float64 `json:"order_amount" validate:"gte=0"`
}

type PointsPreviewResponse struct {
	Points        int     `json:"points"`
	CurrencyValue float64 `json:"currency_value"`
}

type RedeemPointsRequest struct {
	CustomerID uuid.UUID `json:"customer_id" validate:"required"`
	Amount     float64   `json:"amount" validate:"required,gt=0"`
}

type RedeemPointsResponse struct {
	PointsDebited int     `json:"points_debited"`
	Amount        float64 `json:"amount"`
	NewBalance    int     `json:"new_balance"`
}

type PointsLedgerEntryResponse struct {
	ID          uuid.UUID  `json:"id"`
	CustomerID  uuid.UUID  `json:"customer_id"`
	OrderID     *uuid.UUID `json:"order_id,omitempty"`
	Type        string     `json:"type"`
	Points      int        `json:"points"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type PointsBalanceResponse struct {
	CustomerID uuid.UUID                   `json:"customer_id"`
	Balance    int                         `json:"balance"`
	Entries    []PointsLedgerEntryResponse `json:"entries"`
}
