package entity

import (
	"time"

	"github.com/google/uuid"
)

// RangeType discriminates what a reward range is matched against.
type RangeType string

const (
	RangeTypeQuantity RangeType = "QUANTITY"
	RangeTypeAmount   RangeType = "AMOUNT"
)

// RewardRange is a tier mapping an interval of quantity or order amount
// to a fixed point award. A nil MaxValue means the range is unbounded above.
// Ranges only exist as part of their owning config's RewardRanges set.
type RewardRange struct {
	ID          uuid.UUID
	ConfigID    uuid.UUID
	RangeType   RangeType
	MinValue    float64
	MaxValue    *float64
	Points      int
	Description string
}

// RewardSystemConfig is the reward-system configuration. At most one record
// is active at a time; the repository enforces exclusive activation.
type RewardSystemConfig struct {
	ID                       uuid.UUID
	PointValue               float64
	IsSystemEnabled          bool
	IsReviewPointsEnabled    bool
	ReviewPointsAmount       int
	IsSignupPointsEnabled    bool
	SignupPointsAmount       int
	IsPurchasePointsEnabled  bool
	IsQuantityBasedEnabled   bool
	IsAmountBasedEnabled     bool
	IsPercentageBasedEnabled bool
	PercentageRate           float64
	IsActive                 bool
	RewardRanges             []RewardRange
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// QuantityRanges returns the config's quantity-typed ranges.
func (c *RewardSystemConfig) QuantityRanges() []RewardRange {
	return c.rangesOfType(RangeTypeQuantity)
}

// AmountRanges returns the config's amount-typed ranges.
func (c *RewardSystemConfig) AmountRanges() []RewardRange {
	return c.rangesOfType(RangeTypeAmount)
}

func (c *RewardSystemConfig) rangesOfType(t RangeType) []RewardRange {
	var out []RewardRange
	for _, r := range c.RewardRanges {
		if r.RangeType == t {
			out = append(out, r)
		}
	}
	return out
}

// PointsTransactionType classifies ledger entries.
type PointsTransactionType string

const (
	PointsEarnPurchase PointsTransactionType = "earn_purchase"
	PointsEarnReview   PointsTransactionType = "earn_review"
	PointsEarnSignup   PointsTransactionType = "earn_signup"
	PointsRedeem       PointsTransactionType = "redeem"
	PointsAdjustment   PointsTransactionType = "adjustment"
)

// PointsLedgerEntry records a single points credit or debit for a customer.
// Points is signed: positive for earn, negative for redeem.
type PointsLedgerEntry struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	OrderID     *uuid.UUID
	Type        PointsTransactionType
	Points      int
	Description string
	CreatedAt   time.Time
}
