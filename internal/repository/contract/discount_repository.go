package contract

import (
	"context"

	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DiscountRepository interface {
	Create(ctx context.Context, discount *entity.Discount) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Discount, error)
	FindByCode(ctx context.Context, code string) (*entity.Discount, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Discount, error)
	Update(ctx context.Context, discount *entity.Discount) error
	// IncrementUsage bumps usage_count atomically.
	IncrementUsage(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
