// Package rewards implements the points calculation engine over a reward
// system configuration snapshot. All functions are pure and safe to call
// from any goroutine; a nil or disabled config always yields zero points
// rather than an error, because reward accrual is auxiliary to checkout.
package rewards

import (
	"math"

	"shopsphere-admin-be/internal/entity"
)

// CalculatePurchasePoints computes the points a purchase earns. Each enabled
// sub-mode (quantity tiers, amount tiers, percentage of order amount)
// contributes independently and the contributions are summed.
func CalculatePurchasePoints(cfg *entity.RewardSystemConfig, itemQuantity int, orderAmount float64) int {
	if cfg == nil || !cfg.IsSystemEnabled || !cfg.IsPurchasePointsEnabled {
		return 0
	}

	total := 0

	if cfg.IsQuantityBasedEnabled {
		total += matchRange(cfg.RewardRanges, entity.RangeTypeQuantity, float64(itemQuantity))
	}

	if cfg.IsAmountBasedEnabled {
		total += matchRange(cfg.RewardRanges, entity.RangeTypeAmount, orderAmount)
	}

	if cfg.IsPercentageBasedEnabled && cfg.PercentageRate > 0 && orderAmount > 0 {
		total += int(math.Floor(orderAmount * cfg.PercentageRate / 100))
	}

	if total < 0 {
		return 0
	}
	return total
}

// matchRange finds the range of the given type whose inclusive interval
// contains value and returns its points. A nil MaxValue means "or above".
// When ranges overlap, the one with the highest MinValue wins.
func matchRange(ranges []entity.RewardRange, rangeType entity.RangeType, value float64) int {
	matched := false
	bestMin := 0.0
	bestPoints := 0

	for _, r := range ranges {
		if r.RangeType != rangeType {
			continue
		}
		if value < r.MinValue {
			continue
		}
		if r.MaxValue != nil && value > *r.MaxValue {
			continue
		}
		if !matched || r.MinValue > bestMin {
			matched = true
			bestMin = r.MinValue
			bestPoints = r.Points
		}
	}

	return bestPoints
}

// CalculateReviewPoints returns the fixed award for writing a product review.
func CalculateReviewPoints(cfg *entity.RewardSystemConfig) int {
	if cfg == nil || !cfg.IsSystemEnabled || !cfg.IsReviewPointsEnabled {
		return 0
	}
	return cfg.ReviewPointsAmount
}

// CalculateSignupPoints returns the fixed award for account signup.
func CalculateSignupPoints(cfg *entity.RewardSystemConfig) int {
	if cfg == nil || !cfg.IsSystemEnabled || !cfg.IsSignupPointsEnabled {
		return 0
	}
	return cfg.SignupPointsAmount
}

// PointsToCurrency converts a points balance into its currency value.
func PointsToCurrency(cfg *entity.RewardSystemConfig, points int) float64 {
	if cfg == nil || cfg.PointValue <= 0 || points <= 0 {
		return 0
	}
	return float64(points) * cfg.PointValue
}

// conversionEpsilon absorbs binary-float division error before ceiling,
// so exact point-value multiples convert back to the same point count.
const conversionEpsilon = 1e-9

// CurrencyToPoints returns the minimum number of points whose redemption
// value covers amount. Rounds up so a redemption never under-covers a price.
func CurrencyToPoints(cfg *entity.RewardSystemConfig, amount float64) int {
	if cfg == nil || cfg.PointValue <= 0 || amount <= 0 {
		return 0
	}
	points := int(math.Ceil(amount/cfg.PointValue - conversionEpsilon))
	if points < 1 {
		return 1
	}
	return points
}
