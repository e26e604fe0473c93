package contract

import (
	"context"

	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RewardRepository interface {
	// FindActiveConfig returns the single active config with its ranges,
	// or nil if the reward system has never been configured.
	FindActiveConfig(ctx context.Context) (*entity.RewardSystemConfig, error)
	FindOneConfig(ctx context.Context, specs ...specification.Specification) (*entity.RewardSystemConfig, error)
	FindAllConfigs(ctx context.Context, specs ...specification.Specification) ([]*entity.RewardSystemConfig, error)
	// SaveConfig inserts or rewrites a config and its full range set.
	SaveConfig(ctx context.Context, cfg *entity.RewardSystemConfig) error
	// Activate marks the given config active and deactivates all others.
	// Callers run it inside a unit-of-work transaction.
	Activate(ctx context.Context, id uuid.UUID) error
}

type PointsLedgerRepository interface {
	Create(ctx context.Context, entry *entity.PointsLedgerEntry) error
	FindAllByCustomer(ctx context.Context, customerID uuid.UUID, specs ...specification.Specification) ([]*entity.PointsLedgerEntry, error)
	// BalanceByCustomer sums the signed points column.
	BalanceByCustomer(ctx context.Context, customerID uuid.UUID) (int, error)
	// ExistsForOrder guards against double accrual for the same order.
	ExistsForOrder(ctx context.Context, orderID uuid.UUID, txType entity.PointsTransactionType) (bool, error)
}
