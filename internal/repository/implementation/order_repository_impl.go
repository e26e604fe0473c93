package implementation

import (
	"context"

	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/model"
	"shopsphere-admin-be/internal/repository/contract"
	"shopsphere-admin-be/internal/repository/specification"

	"gorm.io/gorm"
)

type orderRepositoryImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) contract.OrderRepository {
	return &orderRepositoryImpl{db: db}
}

func (r *orderRepositoryImpl) Create(ctx context.Context, order *entity.Order) error {
	mo := r.toModel(order)
	return r.db.WithContext(ctx).Create(mo).Error
}

func (r *orderRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error) {
	return r.findOne(ctx, false, specs...)
}

func (r *orderRepositoryImpl) FindOneWithItems(ctx context.Context, specs ...specification.Specification) (*entity.Order, error) {
	return r.findOne(ctx, true, specs...)
}

func (r *orderRepositoryImpl) findOne(ctx context.Context, withItems bool, specs ...specification.Specification) (*entity.Order, error) {
	var mo model.Order
	query := r.db.WithContext(ctx)
	if withItems {
		query = query.Preload("Items")
	}

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.First(&mo).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&mo), nil
}

func (r *orderRepositoryImpl) FindAllWithItems(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error) {
	var models []*model.Order
	query := r.db.WithContext(ctx).Preload("Items")

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	var orders []*entity.Order
	for _, mo := range models {
		orders = append(orders, r.toEntity(mo))
	}
	return orders, nil
}

func (r *orderRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Order{})

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	err := query.Count(&count).Error
	return count, err
}

func (r *orderRepositoryImpl) UpdateStatus(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status":       string(order.Status),
			"delivered_at": order.DeliveredAt,
		}).Error
}

func (r *orderRepositoryImpl) toModel(o *entity.Order) *model.Order {
	mo := &model.Order{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		CustomerID:     o.CustomerID,
		CustomerEmail:  o.CustomerEmail,
		Status:         string(o.Status),
		Subtotal:       o.Subtotal,
		DiscountAmount: o.DiscountAmount,
		DiscountCode:   o.DiscountCode,
		TotalAmount:    o.TotalAmount,
		PlacedAt:       o.PlacedAt,
		DeliveredAt:    o.DeliveredAt,
	}
	for _, it := range o.Items {
		mo.Items = append(mo.Items, model.OrderItem{
			ID:          it.ID,
			OrderID:     it.OrderID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			SKU:         it.SKU,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return mo
}

func (r *orderRepositoryImpl) toEntity(mo *model.Order) *entity.Order {
	o := &entity.Order{
		ID:             mo.ID,
		OrderNumber:    mo.OrderNumber,
		CustomerID:     mo.CustomerID,
		CustomerEmail:  mo.CustomerEmail,
		Status:         entity.OrderStatus(mo.Status),
		Subtotal:       mo.Subtotal,
		DiscountAmount: mo.DiscountAmount,
		DiscountCode:   mo.DiscountCode,
		TotalAmount:    mo.TotalAmount,
		PlacedAt:       mo.PlacedAt,
		DeliveredAt:    mo.DeliveredAt,
		CreatedAt:      mo.CreatedAt,
		UpdatedAt:      mo.UpdatedAt,
	}
	for _, it := range mo.Items {
		o.Items = append(o.Items, entity.OrderItem{
			ID:          it.ID,
			OrderID:     it.OrderID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			SKU:         it.SKU,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return o
}
