package rewards

import (
	"errors"
	"testing"

	"shopsphere-admin-be/internal/entity"
)

func validConfig() *entity.RewardSystemConfig {
	return &entity.RewardSystemConfig{
		PointValue:               0.05,
		IsSystemEnabled:          true,
		IsPurchasePointsEnabled:  true,
		IsPercentageBasedEnabled: true,
		PercentageRate:           2,
		RewardRanges: []entity.RewardRange{
			{RangeType: entity.RangeTypeQuantity, MinValue: 0, MaxValue: f(9), Points: 10},
			{RangeType: entity.RangeTypeQuantity, MinValue: 10, Points: 25},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*entity.RewardSystemConfig)
		wantErrors int
	}{
		{
			name:       "valid config passes",
			mutate:     func(c *entity.RewardSystemConfig) {},
			wantErrors: 0,
		},
		{
			name:       "zero point value rejected",
			mutate:     func(c *entity.RewardSystemConfig) { c.PointValue = 0 },
			wantErrors: 1,
		},
		{
			name: "negative min value rejected",
			mutate: func(c *entity.RewardSystemConfig) {
				c.RewardRanges[0].MinValue = -1
			},
			wantErrors: 1,
		},
		{
			name: "max below min rejected",
			mutate: func(c *entity.RewardSystemConfig) {
				c.RewardRanges[1].MaxValue = f(5)
			},
			wantErrors: 1,
		},
		{
			name: "non positive points rejected",
			mutate: func(c *entity.RewardSystemConfig) {
				c.RewardRanges[0].Points = 0
			},
			wantErrors: 1,
		},
		{
			name: "percentage mode requires positive rate",
			mutate: func(c *entity.RewardSystemConfig) {
				c.PercentageRate = 0
			},
			wantErrors: 1,
		},
		{
			name: "zero rate fine when percentage mode disabled",
			mutate: func(c *entity.RewardSystemConfig) {
				c.IsPercentageBasedEnabled = false
				c.PercentageRate = 0
			},
			wantErrors: 0,
		},
		{
			name: "overlapping ranges are allowed",
			mutate: func(c *entity.RewardSystemConfig) {
				c.RewardRanges = append(c.RewardRanges, entity.RewardRange{
					RangeType: entity.RangeTypeQuantity, MinValue: 5, MaxValue: f(15), Points: 40,
				})
			},
			wantErrors: 0,
		},
		{
			name: "multiple problems are all reported",
			mutate: func(c *entity.RewardSystemConfig) {
				c.PointValue = -1
				c.RewardRanges[0].Points = -5
			},
			wantErrors: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErrors == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if len(verr.Errors) != tt.wantErrors {
				t.Errorf("got %d errors %v, want %d", len(verr.Errors), verr.Errors, tt.wantErrors)
			}
		})
	}
}

func TestValidateNilConfig(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Fatal("Validate(nil) = nil, want error")
	}
}
