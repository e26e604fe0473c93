package unitofwork

import (
	"context"

	"shopsphere-admin-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProductRepository() contract.ProductRepository
	CategoryRepository() contract.CategoryRepository
	OrderRepository() contract.OrderRepository
	DiscountRepository() contract.DiscountRepository
	WarehouseRepository() contract.WarehouseRepository
	StockRepository() contract.StockRepository
	ReturnRepository() contract.ReturnRepository
	RewardRepository() contract.RewardRepository
	PointsLedgerRepository() contract.PointsLedgerRepository
	DeliveryRepository() contract.DeliveryRepository
}
