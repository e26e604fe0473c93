package service

import (
	"context"
	"fmt"
	"time"

	"shopsphere-admin-be/internal/dto"
	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/pkg/serverutils"
	"shopsphere-admin-be/internal/repository/specification"
	"shopsphere-admin-be/internal/repository/unitofwork"
	adminEvents "shopsphere-admin-be/pkg/admin/events"

	"github.com/google/uuid"
)

type IWarehouseService interface {
	CreateWarehouse(ctx context.Context, req *dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error)
	GetWarehouses(ctx context.Context) ([]*dto.WarehouseResponse, error)
	UpdateWarehouse(ctx context.Context, id uuid.UUID, req *dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error)
	DeleteWarehouse(ctx context.Context, id uuid.UUID) error

	GetStockLevels(ctx context.Context, warehouseID uuid.UUID) ([]*dto.StockLevelResponse, error)
	GetLowStock(ctx context.Context) ([]*dto.StockLevelResponse, error)
	AdjustStock(ctx context.Context, warehouseID uuid.UUID, req *dto.AdjustStockRequest) (*dto.StockLevelResponse, error)
	TransferStock(ctx context.Context, req *dto.TransferStockRequest) error
}

type warehouseService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher adminEvents.Publisher
}

func NewWarehouseService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher adminEvents.Publisher,
) IWarehouseService {
	return &warehouseService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func toWarehouseResponse(warehouse *entity.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{
		ID:        warehouse.ID,
		Name:      warehouse.Name,
		Code:      warehouse.Code,
		Address:   warehouse.Address,
		City:      warehouse.City,
		IsActive:  warehouse.IsActive,
		CreatedAt: warehouse.CreatedAt,
	}
}

func toStockLevelResponse(level *entity.StockLevel) dto.StockLevelResponse {
	res := dto.StockLevelResponse{
		ID:          level.ID,
		WarehouseID: level.WarehouseID,
		ProductID:   level.ProductID,
		Quantity:    level.Quantity,
		ReorderAt:   level.ReorderAt,
		UpdatedAt:   level.UpdatedAt,
	}
	if level.Warehouse != nil {
		res.WarehouseName = level.Warehouse.Name
	}
	if level.Product != nil {
		res.ProductName = level.Product.Name
		res.SKU = level.Product.SKU
	}
	return res
}

func (s *warehouseService) CreateWarehouse(ctx context.Context, req *dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	warehouse := &entity.Warehouse{
		ID:        uuid.New(),
		Name:      req.Name,
		Code:      req.Code,
		Address:   req.Address,
		City:      req.City,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if err := uow.WarehouseRepository().Create(ctx, warehouse); err != nil {
		return nil, err
	}

	res := toWarehouseResponse(warehouse)
	return &res, nil
}

func (s *warehouseService) GetWarehouses(ctx context.Context) ([]*dto.WarehouseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	warehouses, err := uow.WarehouseRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.WarehouseResponse, 0, len(warehouses))
	for _, warehouse := range warehouses {
		res := toWarehouseResponse(warehouse)
		result = append(result, &res)
	}
	return result, nil
}

func (s *warehouseService) UpdateWarehouse(ctx context.Context, id uuid.UUID, req *dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	warehouse, err := uow.WarehouseRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, serverutils.ErrNotFound
	}

	if req.Name != nil {
		warehouse.Name = *req.Name
	}
	if req.Address != nil {
		warehouse.Address = *req.Address
	}
	if req.City != nil {
		warehouse.City = *req.City
	}
	if req.IsActive != nil {
		warehouse.IsActive = *req.IsActive
	}

	if err := uow.WarehouseRepository().Update(ctx, warehouse); err != nil {
		return nil, err
	}

	res := toWarehouseResponse(warehouse)
	return &res, nil
}

func (s *warehouseService) DeleteWarehouse(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	warehouse, err := uow.WarehouseRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if warehouse == nil {
		return serverutils.ErrNotFound
	}

	// Refuse to delete a warehouse that still holds stock
	levels, err := uow.StockRepository().FindLevelsWithDetails(ctx, specification.Filter("warehouse_id", id))
	if err != nil {
		return err
	}
	for _, level := range levels {
		if level.Quantity > 0 {
			return fmt.Errorf("%w: warehouse still holds stock", serverutils.ErrConflict)
		}
	}

	return uow.WarehouseRepository().Delete(ctx, id)
}

func (s *warehouseService) GetStockLevels(ctx context.Context, warehouseID uuid.UUID) ([]*dto.StockLevelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	levels, err := uow.StockRepository().FindLevelsWithDetails(ctx, specification.Filter("warehouse_id", warehouseID))
	if err != nil {
		return nil, err
	}

	result := make([]*dto.StockLevelResponse, 0, len(levels))
	for _, level := range levels {
		res := toStockLevelResponse(level)
		result = append(result, &res)
	}
	return result, nil
}

func (s *warehouseService) GetLowStock(ctx context.Context) ([]*dto.StockLevelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	levels, err := uow.StockRepository().FindBelowReorder(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.StockLevelResponse, 0, len(levels))
	for _, level := range levels {
		res := toStockLevelResponse(level)
		result = append(result, &res)
	}
	return result, nil
}

func (s *warehouseService) AdjustStock(ctx context.Context, warehouseID uuid.UUID, req *dto.AdjustStockRequest) (*dto.StockLevelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	warehouse, err := uow.WarehouseRepository().FindOne(ctx, specification.ByID{ID: warehouseID})
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, serverutils.ErrNotFound
	}

	level, err := uow.StockRepository().FindLevel(ctx, warehouseID, req.ProductID)
	if err != nil {
		return nil, err
	}
	if level == nil {
		level = &entity.StockLevel{
			ID:          uuid.New(),
			WarehouseID: warehouseID,
			ProductID:   req.ProductID,
		}
	}

	if level.Quantity+req.Delta < 0 {
		return nil, fmt.Errorf("%w: stock cannot go below zero", serverutils.ErrConflict)
	}
	level.Quantity += req.Delta
	if req.ReorderAt != nil {
		level.ReorderAt = *req.ReorderAt
	}

	if err := uow.StockRepository().Upsert(ctx, level); err != nil {
		return nil, err
	}

	if level.ReorderAt > 0 && level.Quantity <= level.ReorderAt {
		s.eventPublisher.PublishStockLow(ctx, level.WarehouseID, level.ProductID, level.Quantity, level.ReorderAt)
	}

	res := toStockLevelResponse(level)
	return &res, nil
}

// TransferStock moves quantity between warehouses atomically.
func (s *warehouseService) TransferStock(ctx context.Context, req *dto.TransferStockRequest) error {
	if req.FromWarehouseID == req.ToWarehouseID {
		return fmt.Errorf("%w: source and destination warehouses are the same", serverutils.ErrConflict)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	source, err := uow.StockRepository().FindLevel(ctx, req.FromWarehouseID, req.ProductID)
	if err != nil {
		return err
	}
	if source == nil || source.Quantity < req.Quantity {
		return fmt.Errorf("%w: insufficient stock at source warehouse", serverutils.ErrConflict)
	}

	dest, err := uow.StockRepository().FindLevel(ctx, req.ToWarehouseID, req.ProductID)
	if err != nil {
		return err
	}
	if dest == nil {
		dest = &entity.StockLevel{
			ID:          uuid.New(),
			WarehouseID: req.ToWarehouseID,
			ProductID:   req.ProductID,
		}
	}

	source.Quantity -= req.Quantity
	dest.Quantity += req.Quantity

	if err := uow.StockRepository().Upsert(ctx, source); err != nil {
		return err
	}
	if err := uow.StockRepository().Upsert(ctx, dest); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	if source.ReorderAt > 0 && source.Quantity <= source.ReorderAt {
		s.eventPublisher.PublishStockLow(ctx, source.WarehouseID, source.ProductID, source.Quantity, source.ReorderAt)
	}
	return nil
}
