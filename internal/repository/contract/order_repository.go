package contract

import (
	"context"

	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/repository/specification"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error)
	// FindOneWithItems preloads the order's line items.
	FindOneWithItems(ctx context.Context, specs ...specification.Specification) (*entity.Order, error)
	FindAllWithItems(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	UpdateStatus(ctx context.Context, order *entity.Order) error
}
