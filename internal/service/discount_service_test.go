package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"shopsphere-admin-be/internal/dto"
	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeDiscount() *entity.Discount {
	return &entity.Discount{
		ID:             uuid.New(),
		Code:           "SUMMER20",
		Type:           entity.DiscountTypePercent,
		Value:          20,
		MinOrderAmount: 50,
		UsageLimit:     100,
		UsageCount:     10,
		StartsAt:       time.Now().Add(-24 * time.Hour),
		IsActive:       true,
	}
}

func TestRedeemDiscount(t *testing.T) {
	past := time.Now().Add(-time.Hour)

	tests := []struct {
		name        string
		mutate      func(*entity.Discount)
		orderAmount float64
		wantErr     error
		wantAmount  float64
	}{
		{
			name:        "percent discount applied",
			mutate:      func(d *entity.Discount) {},
			orderAmount: 200,
			wantAmount:  40,
		},
		{
			name: "fixed discount applied",
			mutate: func(d *entity.Discount) {
				d.Type = entity.DiscountTypeFixed
				d.Value = 30
			},
			orderAmount: 200,
			wantAmount:  30,
		},
		{
			name: "fixed discount capped at order amount",
			mutate: func(d *entity.Discount) {
				d.Type = entity.DiscountTypeFixed
				d.Value = 500
				d.MinOrderAmount = 0
			},
			orderAmount: 80,
			wantAmount:  80,
		},
		{
			name:        "inactive discount rejected",
			mutate:      func(d *entity.Discount) { d.IsActive = false },
			orderAmount: 200,
			wantErr:     serverutils.ErrConflict,
		},
		{
			name:        "not yet started rejected",
			mutate:      func(d *entity.Discount) { d.StartsAt = time.Now().Add(time.Hour) },
			orderAmount: 200,
			wantErr:     serverutils.ErrConflict,
		},
		{
			name:        "expired discount rejected",
			mutate:      func(d *entity.Discount) { d.EndsAt = &past },
			orderAmount: 200,
			wantErr:     serverutils.ErrConflict,
		},
		{
			name:        "usage limit exhausted",
			mutate:      func(d *entity.Discount) { d.UsageCount = d.UsageLimit },
			orderAmount: 200,
			wantErr:     serverutils.ErrConflict,
		},
		{
			name:        "below minimum order amount",
			mutate:      func(d *entity.Discount) {},
			orderAmount: 40,
			wantErr:     serverutils.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount := activeDiscount()
			tt.mutate(discount)

			repo := &stubDiscountRepo{
				findByCode: func(ctx context.Context, code string) (*entity.Discount, error) {
					return discount, nil
				},
			}
			svc := NewDiscountService(&stubFactory{uow: &stubUow{discounts: repo}})

			res, err := svc.Redeem(context.Background(), &dto.RedeemDiscountRequest{
				Code:        discount.Code,
				OrderAmount: tt.orderAmount,
			})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Empty(t, repo.incrementedIDs, "rejected redemption must not bump usage")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, res.DiscountAmount)
			assert.Equal(t, tt.orderAmount-tt.wantAmount, res.FinalAmount)
			assert.Equal(t, []uuid.UUID{discount.ID}, repo.incrementedIDs)
		})
	}
}

func TestRedeemUnknownCode(t *testing.T) {
	repo := &stubDiscountRepo{
		findByCode: func(ctx context.Context, code string) (*entity.Discount, error) {
			return nil, nil
		},
	}
	svc := NewDiscountService(&stubFactory{uow: &stubUow{discounts: repo}})

	_, err := svc.Redeem(context.Background(), &dto.RedeemDiscountRequest{Code: "NOPE", OrderAmount: 100})
	assert.True(t, errors.Is(err, serverutils.ErrNotFound))
}
