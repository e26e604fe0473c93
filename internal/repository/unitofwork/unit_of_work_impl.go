package unitofwork

import (
	"context"
	"fmt"

	"shopsphere-admin-be/internal/repository/contract"
	"shopsphere-admin-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProductRepository() contract.ProductRepository {
	return implementation.NewProductRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CategoryRepository() contract.CategoryRepository {
	return implementation.NewCategoryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) OrderRepository() contract.OrderRepository {
	return implementation.NewOrderRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DiscountRepository() contract.DiscountRepository {
	return implementation.NewDiscountRepository(u.getDB())
}

func (u *UnitOfWorkImpl) WarehouseRepository() contract.WarehouseRepository {
	return implementation.NewWarehouseRepository(u.getDB())
}

func (u *UnitOfWorkImpl) StockRepository() contract.StockRepository {
	return implementation.NewStockRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ReturnRepository() contract.ReturnRepository {
	return implementation.NewReturnRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RewardRepository() contract.RewardRepository {
	return implementation.NewRewardRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PointsLedgerRepository() contract.PointsLedgerRepository {
	return implementation.NewPointsLedgerRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DeliveryRepository() contract.DeliveryRepository {
	return implementation.NewDeliveryRepository(u.getDB())
}
