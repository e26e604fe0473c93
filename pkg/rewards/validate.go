package rewards

import (
	"fmt"
	"strings"

	"shopsphere-admin-be/internal/entity"
)

// ValidationError carries the full list of field-level problems found in a
// proposed config. A config is saved in full or rejected in full.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid reward config: " + strings.Join(e.Errors, "; ")
}

// Validate checks a proposed RewardSystemConfig before it is persisted.
// Overlapping ranges are allowed; overlap is resolved at calculation time
// by the highest-MinValue tie-break, not rejected here.
func Validate(cfg *entity.RewardSystemConfig) error {
	var errs []string

	if cfg == nil {
		return &ValidationError{Errors: []string{"config is required"}}
	}

	if cfg.PointValue <= 0 {
		errs = append(errs, "point value must be positive")
	}
	if cfg.ReviewPointsAmount < 0 {
		errs = append(errs, "review points amount must not be negative")
	}
	if cfg.SignupPointsAmount < 0 {
		errs = append(errs, "signup points amount must not be negative")
	}
	if cfg.IsPercentageBasedEnabled && cfg.PercentageRate <= 0 {
		errs = append(errs, "percentage rate must be positive when percentage mode is enabled")
	}

	for i, r := range cfg.RewardRanges {
		if r.RangeType != entity.RangeTypeQuantity && r.RangeType != entity.RangeTypeAmount {
			errs = append(errs, fmt.Sprintf("range %d: unknown range type %q", i, r.RangeType))
		}
		if r.MinValue < 0 {
			errs = append(errs, fmt.Sprintf("range %d: min value must not be negative", i))
		}
		if r.MaxValue != nil && *r.MaxValue < r.MinValue {
			errs = append(errs, fmt.Sprintf("range %d: max value must be greater than or equal to min value", i))
		}
		if r.Points <= 0 {
			errs = append(errs, fmt.Sprintf("range %d: points must be positive", i))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
