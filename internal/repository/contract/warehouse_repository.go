package contract

import (
	"context"

	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/repository/specification"

	"github.com/google/uuid"
)

type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Warehouse, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Warehouse, error)
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StockRepository interface {
	// FindLevel returns the stock row for a warehouse/product pair, nil if absent.
	FindLevel(ctx context.Context, warehouseID, productID uuid.UUID) (*entity.StockLevel, error)
	// FindLevelsWithDetails preloads warehouse and product relations.
	FindLevelsWithDetails(ctx context.Context, specs ...specification.Specification) ([]*entity.StockLevel, error)
	// FindBelowReorder lists levels at or under their reorder threshold.
	FindBelowReorder(ctx context.Context) ([]*entity.StockLevel, error)
	// Upsert creates or updates the level row for its warehouse/product pair.
	Upsert(ctx context.Context, level *entity.StockLevel) error
}
