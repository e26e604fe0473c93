package service

import (
	"context"
	"errors"
	"testing"

	"shopsphere-admin-be/internal/dto"
	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amountTierConfig() *entity.RewardSystemConfig {
	max := 99.99
	return &entity.RewardSystemConfig{
		ID:                      uuid.New(),
		PointValue:              0.10,
		IsSystemEnabled:         true,
		IsPurchasePointsEnabled: true,
		IsAmountBasedEnabled:    true,
		IsActive:                true,
		RewardRanges: []entity.RewardRange{
			{RangeType: entity.RangeTypeAmount, MinValue: 0, MaxValue: &max, Points: 5},
			{RangeType: entity.RangeTypeAmount, MinValue: 100, MaxValue: nil, Points: 50},
		},
	}
}

func newRewardServiceForTest(uow *stubUow) IRewardService {
	return NewRewardService(&stubFactory{uow: uow}, nil, nopLogger{}, &recordingEventPublisher{})
}

func TestPreviewPointsWithoutActiveConfig(t *testing.T) {
	uow := &stubUow{rewards: &stubRewardRepo{
		activeConfig: func(ctx context.Context) (*entity.RewardSystemConfig, error) { return nil, nil },
	}}
	svc := newRewardServiceForTest(uow)

	res, err := svc.PreviewPoints(context.Background(), &dto.PointsPreviewRequest{ItemQuantity: 5, OrderAmount: 500})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Points)
	assert.Equal(t, 0.0, res.CurrencyValue)
}

func TestPreviewPoints(t *testing.T) {
	cfg := amountTierConfig()
	uow := &stubUow{rewards: &stubRewardRepo{
		activeConfig: func(ctx context.Context) (*entity.RewardSystemConfig, error) { return cfg, nil },
	}}
	svc := newRewardServiceForTest(uow)

	res, err := svc.PreviewPoints(context.Background(), &dto.PointsPreviewRequest{ItemQuantity: 2, OrderAmount: 150})
	require.NoError(t, err)
	assert.Equal(t, 50, res.Points)
	assert.Equal(t, 5.0, res.CurrencyValue)
}

func TestRedeemPointsInsufficientBalance(t *testing.T) {
	cfg := amountTierConfig()
	ledger := &stubLedgerRepo{
		balance: func(ctx context.Context, customerID uuid.UUID) (int, error) { return 10, nil },
	}
	uow := &stubUow{
		rewards: &stubRewardRepo{
			activeConfig: func(ctx context.Context) (*entity.RewardSystemConfig, error) { return cfg, nil },
		},
		ledger: ledger,
	}
	svc := newRewardServiceForTest(uow)

	// 5.00 at 0.10 per point needs 50 points
	_, err := svc.RedeemPoints(context.Background(), &dto.RedeemPointsRequest{CustomerID: uuid.New(), Amount: 5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, serverutils.ErrConflict))
	assert.Empty(t, ledger.created)
	assert.True(t, uow.rolledBack)
}

func TestRedeemPointsDebitsLedger(t *testing.T) {
	cfg := amountTierConfig()
	ledger := &stubLedgerRepo{
		balance: func(ctx context.Context, customerID uuid.UUID) (int, error) { return 200, nil },
	}
	uow := &stubUow{
		rewards: &stubRewardRepo{
			activeConfig: func(ctx context.Context) (*entity.RewardSystemConfig, error) { return cfg, nil },
		},
		ledger: ledger,
	}
	svc := newRewardServiceForTest(uow)

	customerID := uuid.New()
	res, err := svc.RedeemPoints(context.Background(), &dto.RedeemPointsRequest{CustomerID: customerID, Amount: 5})
	require.NoError(t, err)
	assert.Equal(t, 50, res.PointsDebited)
	assert.Equal(t, 150, res.NewBalance)

	require.Len(t, ledger.created, 1)
	entry := ledger.created[0]
	assert.Equal(t, customerID, entry.CustomerID)
	assert.Equal(t, entity.PointsRedeem, entry.Type)
	assert.Equal(t, -50, entry.Points)
	assert.True(t, uow.committed)
}

func TestRedeemPointsWhenSystemDisabled(t *testing.T) {
	cfg := amountTierConfig()
	cfg.IsSystemEnabled = false
	uow := &stubUow{rewards: &stubRewardRepo{
		activeConfig: func(ctx context.Context) (*entity.RewardSystemConfig, error) { return cfg, nil },
	}}
	svc := newRewardServiceForTest(uow)

	_, err := svc.RedeemPoints(context.Background(), &dto.RedeemPointsRequest{CustomerID: uuid.New(), Amount: 5})
	assert.True(t, errors.Is(err, serverutils.ErrConflict))
}

func TestAccruePurchasePoints(t *testing.T) {
	t.Run("credits delivered order", func(t *testing.T) {
		order := testOrder(entity.OrderStatusDelivered)
		cfg := amountTierConfig()
		ledger := &stubLedgerRepo{
			existsForOrder: func(ctx context.Context, orderID uuid.UUID) (bool, error) { return false, nil },
		}
		uow := &stubUow{
			orders: &stubOrderRepo{
				findOne: func(ctx context.Context) (*entity.Order, error) { return order, nil },
			},
			rewards: &stubRewardRepo{
				activeConfig: func(ctx context.Context) (*entity.RewardSystemConfig, error) { return cfg, nil },
			},
			ledger: ledger,
		}
		events := &recordingEventPublisher{}
		svc := NewRewardService(&stubFactory{uow: uow}, nil, nopLogger{}, events)

		require.NoError(t, svc.AccruePurchasePoints(context.Background(), order.ID))

		require.Len(t, ledger.created, 1)
		entry := ledger.created[0]
		assert.Equal(t, *order.CustomerID, entry.CustomerID)
		assert.Equal(t, entity.PointsEarnPurchase, entry.Type)
		assert.Equal(t, 50, entry.Points) // 150.00 falls in the upper amount tier
		assert.Equal(t, []int{50}, events.pointsAccrued)
	})

	t.Run("guest orders earn nothing", func(t *testing.T) {
		order := testOrder(entity.OrderStatusDelivered)
		order.CustomerID = nil
		ledger := &stubLedgerRepo{}
		uow := &stubUow{
			orders: &stubOrderRepo{
				findOne: func(ctx context.Context) (*entity.Order, error) { return order, nil },
			},
			ledger: ledger,
		}
		svc := newRewardServiceForTest(uow)

		require.NoError(t, svc.AccruePurchasePoints(context.Background(), order.ID))
		assert.Empty(t, ledger.created)
	})

	t.Run("second accrual is a no-op", func(t *testing.T) {
		order := testOrder(entity.OrderStatusDelivered)
		ledger := &stubLedgerRepo{
			existsForOrder: func(ctx context.Context, orderID uuid.UUID) (bool, error) { return true, nil },
		}
		uow := &stubUow{
			orders: &stubOrderRepo{
				findOne: func(ctx context.Context) (*entity.Order, error) { return order, nil },
			},
			ledger: ledger,
		}
		svc := newRewardServiceForTest(uow)

		require.NoError(t, svc.AccruePurchasePoints(context.Background(), order.ID))
		assert.Empty(t, ledger.created)
	})

	t.Run("undelivered order is an error", func(t *testing.T) {
		order := testOrder(entity.OrderStatusShipped)
		uow := &stubUow{
			orders: &stubOrderRepo{
				findOne: func(ctx context.Context) (*entity.Order, error) { return order, nil },
			},
		}
		svc := newRewardServiceForTest(uow)

		assert.Error(t, svc.AccruePurchasePoints(context.Background(), order.ID))
	})
}

func TestSaveConfigActivates(t *testing.T) {
	repo := &stubRewardRepo{}
	uow := &stubUow{rewards: repo}
	svc := newRewardServiceForTest(uow)

	max := 99.99
	res, err := svc.SaveConfig(context.Background(), &dto.SaveRewardConfigRequest{
		PointValue:              0.05,
		IsSystemEnabled:         true,
		IsPurchasePointsEnabled: true,
		IsAmountBasedEnabled:    true,
		Activate:                true,
		RewardRanges: []dto.RewardRangeRequest{
			{RangeType: "AMOUNT", MinValue: 0, MaxValue: &max, Points: 5},
			{RangeType: "AMOUNT", MinValue: 100, Points: 50},
		},
	})
	require.NoError(t, err)
	assert.True(t, res.IsActive)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, []uuid.UUID{repo.saved[0].ID}, repo.activatedIDs)
	assert.True(t, uow.committed)
}

func TestSaveConfigRejectsInvalidRanges(t *testing.T) {
	repo := &stubRewardRepo{}
	svc := newRewardServiceForTest(&stubUow{rewards: repo})

	max := 10.0
	_, err := svc.SaveConfig(context.Background(), &dto.SaveRewardConfigRequest{
		PointValue:              0.05,
		IsSystemEnabled:         true,
		IsPurchasePointsEnabled: true,
		IsAmountBasedEnabled:    true,
		RewardRanges: []dto.RewardRangeRequest{
			// Inverted bounds
			{RangeType: "AMOUNT", MinValue: 100, MaxValue: &max, Points: 5},
		},
	})
	require.Error(t, err)
	assert.Empty(t, repo.saved)
}
