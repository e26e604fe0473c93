package implementation

import (
	"context"

	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/model"
	"shopsphere-admin-be/internal/repository/contract"
	"shopsphere-admin-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type warehouseRepositoryImpl struct {
	db *gorm.DB
}

func NewWarehouseRepository(db *gorm.DB) contract.WarehouseRepository {
	return &warehouseRepositoryImpl{db: db}
}

func (r *warehouseRepositoryImpl) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	return r.db.WithContext(ctx).Create(&model.Warehouse{
		ID:       warehouse.ID,
		Name:     warehouse.Name,
		Code:     warehouse.Code,
		Address:  warehouse.Address,
		City:     warehouse.City,
		IsActive: warehouse.IsActive,
	}).Error
}

func (r *warehouseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Warehouse, error) {
	var mw model.Warehouse
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.First(&mw).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&mw), nil
}

func (r *warehouseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Warehouse, error) {
	var models []*model.Warehouse
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	var warehouses []*entity.Warehouse
	for _, mw := range models {
		warehouses = append(warehouses, r.toEntity(mw))
	}
	return warehouses, nil
}

func (r *warehouseRepositoryImpl) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	return r.db.WithContext(ctx).Model(&model.Warehouse{}).
		Where("id = ?", warehouse.ID).
		Updates(map[string]interface{}{
			"name":      warehouse.Name,
			"address":   warehouse.Address,
			"city":      warehouse.City,
			"is_active": warehouse.IsActive,
		}).Error
}

func (r *warehouseRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Warehouse{}, id).Error
}

func (r *warehouseRepositoryImpl) toEntity(mw *model.Warehouse) *entity.Warehouse {
	return &entity.Warehouse{
		ID:        mw.ID,
		Name:      mw.Name,
		Code:      mw.Code,
		Address:   mw.Address,
		City:      mw.City,
		IsActive:  mw.IsActive,
		CreatedAt: mw.CreatedAt,
		UpdatedAt: mw.UpdatedAt,
	}
}

type stockRepositoryImpl struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) contract.StockRepository {
	return &stockRepositoryImpl{db: db}
}

func (r *stockRepositoryImpl) FindLevel(ctx context.Context, warehouseID, productID uuid.UUID) (*entity.StockLevel, error) {
	var ms model.StockLevel
	err := r.db.WithContext(ctx).
		Where("warehouse_id = ? AND product_id = ?", warehouseID, productID).
		First(&ms).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&ms), nil
}

func (r *stockRepositoryImpl) FindLevelsWithDetails(ctx context.Context, specs ...specification.Specification) ([]*entity.StockLevel, error) {
	var models []*model.StockLevel
	query := r.db.WithContext(ctx).
		Preload("Warehouse").
		Preload("Product")

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.toEntities(models), nil
}

func (r *stockRepositoryImpl) FindBelowReorder(ctx context.Context) ([]*entity.StockLevel, error) {
	var models []*model.StockLevel
	err := r.db.WithContext(ctx).
		Preload("Warehouse").
		Preload("Product").
		Where("quantity <= reorder_at").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(models), nil
}

func (r *stockRepositoryImpl) Upsert(ctx context.Context, level *entity.StockLevel) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "warehouse_id"}, {Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "reorder_at", "updated_at"}),
	}).Create(&model.StockLevel{
		ID:          level.ID,
		WarehouseID: level.WarehouseID,
		ProductID:   level.ProductID,
		Quantity:    level.Quantity,
		ReorderAt:   level.ReorderAt,
	}).Error
}

func (r *stockRepositoryImpl) toEntities(models []*model.StockLevel) []*entity.StockLevel {
	var levels []*entity.StockLevel
	for _, ms := range models {
		levels = append(levels, r.toEntity(ms))
	}
	return levels
}

func (r *stockRepositoryImpl) toEntity(ms *model.StockLevel) *entity.StockLevel {
	level := &entity.StockLevel{
		ID:          ms.ID,
		WarehouseID: ms.WarehouseID,
		ProductID:   ms.ProductID,
		Quantity:    ms.Quantity,
		ReorderAt:   ms.ReorderAt,
		UpdatedAt:   ms.UpdatedAt,
	}
	if ms.Warehouse.ID != uuid.Nil {
		level.Warehouse = &entity.Warehouse{
			ID:   ms.Warehouse.ID,
			Name: ms.Warehouse.Name,
			Code: ms.Warehouse.Code,
		}
	}
	if ms.Product.ID != uuid.Nil {
		level.Product = &entity.Product{
			ID:   ms.Product.ID,
			SKU:  ms.Product.SKU,
			Name: ms.Product.Name,
		}
	}
	return level
}
