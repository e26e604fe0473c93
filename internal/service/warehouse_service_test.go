package service

import (
	"context"
	"testing"

	"shopsphere-admin-be/internal/dto"
	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferStockMovesQuantity(t *testing.T) {
	from := uuid.New()
	to := uuid.New()
	productID := uuid.New()

	stock := &stubStockRepo{
		levels: map[uuid.UUID]*entity.StockLevel{
			from: {ID: uuid.New(), WarehouseID: from, ProductID: productID, Quantity: 10},
			to:   {ID: uuid.New(), WarehouseID: to, ProductID: productID, Quantity: 2},
		},
	}
	uow := &stubUow{stock: stock}
	events := &recordingEventPublisher{}
	svc := NewWarehouseService(&stubFactory{uow: uow}, events)

	err := svc.TransferStock(context.Background(), &dto.TransferStockRequest{
		ProductID:       productID,
		FromWarehouseID: from,
		ToWarehouseID:   to,
		Quantity:        4,
	})
	require.NoError(t, err)

	assert.True(t, uow.committed)
	assert.Equal(t, 6, stock.levels[from].Quantity)
	assert.Equal(t, 6, stock.levels[to].Quantity)
	assert.Len(t, stock.upserted, 2)
}

func TestTransferStockRejectsInsufficientSource(t *testing.T) {
	from := uuid.New()
	to := uuid.New()
	productID := uuid.New()

	stock := &stubStockRepo{
		levels: map[uuid.UUID]*entity.StockLevel{
			from: {ID: uuid.New(), WarehouseID: from, ProductID: productID, Quantity: 3},
		},
	}
	uow := &stubUow{stock: stock}
	svc := NewWarehouseService(&stubFactory{uow: uow}, &recordingEventPublisher{})

	err := svc.TransferStock(context.Background(), &dto.TransferStockRequest{
		ProductID:       productID,
		FromWarehouseID: from,
		ToWarehouseID:   to,
		Quantity:        5,
	})
	assert.ErrorIs(t, err, serverutils.ErrConflict)
	assert.True(t, uow.rolledBack)
	assert.Empty(t, stock.upserted)
}

func TestTransferStockRejectsSameWarehouse(t *testing.T) {
	id := uuid.New()
	svc := NewWarehouseService(&stubFactory{uow: &stubUow{}}, &recordingEventPublisher{})

	err := svc.TransferStock(context.Background(), &dto.TransferStockRequest{
		ProductID:       uuid.New(),
		FromWarehouseID: id,
		ToWarehouseID:   id,
		Quantity:        1,
	})
	assert.ErrorIs(t, err, serverutils.ErrConflict)
}

func TestAdjustStockEmitsLowStockAlert(t *testing.T) {
	warehouseID := uuid.New()
	productID := uuid.New()

	warehouses := &stubWarehouseRepo{
		findOne: func(ctx context.Context) (*entity.Warehouse, error) {
			return &entity.Warehouse{ID: warehouseID, Name: "Central", IsActive: true}, nil
		},
	}
	stock := &stubStockRepo{
		levels: map[uuid.UUID]*entity.StockLevel{
			warehouseID: {ID: uuid.New(), WarehouseID: warehouseID, ProductID: productID, Quantity: 10, ReorderAt: 5},
		},
	}
	uow := &stubUow{warehouses: warehouses, stock: stock}
	events := &recordingEventPublisher{}
	svc := NewWarehouseService(&stubFactory{uow: uow}, events)

	res, err := svc.AdjustStock(context.Background(), warehouseID, &dto.AdjustStockRequest{
		ProductID: productID,
		Delta:     -7,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Quantity)
	assert.Equal(t, 1, events.stockLowAlerts)
}

func TestAdjustStockRejectsNegativeResult(t *testing.T) {
	warehouseID := uuid.New()

	warehouses := &stubWarehouseRepo{
		findOne: func(ctx context.Context) (*entity.Warehouse, error) {
			return &entity.Warehouse{ID: warehouseID, IsActive: true}, nil
		},
	}
	stock := &stubStockRepo{
		levels: map[uuid.UUID]*entity.StockLevel{
			warehouseID: {ID: uuid.New(), WarehouseID: warehouseID, Quantity: 2},
		},
	}
	uow := &stubUow{warehouses: warehouses, stock: stock}
	svc := NewWarehouseService(&stubFactory{uow: uow}, &recordingEventPublisher{})

	_, err := svc.AdjustStock(context.Background(), warehouseID, &dto.AdjustStockRequest{
		ProductID: uuid.New(),
		Delta:     -3,
	})
	assert.ErrorIs(t, err, serverutils.ErrConflict)
	assert.Empty(t, stock.upserted)
}

func TestDeleteWarehouseRefusesWhileStocked(t *testing.T) {
	warehouseID := uuid.New()

	warehouses := &stubWarehouseRepo{
		findOne: func(ctx context.Context) (*entity.Warehouse, error) {
			return &entity.Warehouse{ID: warehouseID, IsActive: true}, nil
		},
	}
	stock := &stubStockRepo{
		levels: map[uuid.UUID]*entity.StockLevel{
			warehouseID: {ID: uuid.New(), WarehouseID: warehouseID, Quantity: 4},
		},
	}
	uow := &stubUow{warehouses: warehouses, stock: stock}
	svc := NewWarehouseService(&stubFactory{uow: uow}, &recordingEventPublisher{})

	err := svc.DeleteWarehouse(context.Background(), warehouseID)
	assert.ErrorIs(t, err, serverutils.ErrConflict)
	assert.Empty(t, warehouses.deleted)
}

func TestDeleteWarehouseRemovesEmptyWarehouse(t *testing.T) {
	warehouseID := uuid.New()

	warehouses := &stubWarehouseRepo{
		findOne: func(ctx context.Context) (*entity.Warehouse, error) {
			return &entity.Warehouse{ID: warehouseID, IsActive: true}, nil
		},
	}
	stock := &stubStockRepo{
		levels: map[uuid.UUID]*entity.StockLevel{
			warehouseID: {ID: uuid.New(), WarehouseID: warehouseID, Quantity: 0},
		},
	}
	uow := &stubUow{warehouses: warehouses, stock: stock}
	svc := NewWarehouseService(&stubFactory{uow: uow}, &recordingEventPublisher{})

	err := svc.DeleteWarehouse(context.Background(), warehouseID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{warehouseID}, warehouses.deleted)
}

func TestUpdateWarehouseNotFound(t *testing.T) {
	warehouses := &stubWarehouseRepo{
		findOne: func(ctx context.Context) (*entity.Warehouse, error) { return nil, nil },
	}
	uow := &stubUow{warehouses: warehouses}
	svc := NewWarehouseService(&stubFactory{uow: uow}, &recordingEventPublisher{})

	name := "Renamed"
	_, err := svc.UpdateWarehouse(context.Background(), uuid.New(), &dto.UpdateWarehouseRequest{Name: &name})
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
	assert.Empty(t, warehouses.updated)
}
