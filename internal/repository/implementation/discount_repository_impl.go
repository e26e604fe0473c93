package implementation

import (
	"context"

	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/model"
	"shopsphere-admin-be/internal/repository/contract"
	"shopsphere-admin-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type discountRepositoryImpl struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) contract.DiscountRepository {
	return &discountRepositoryImpl{db: db}
}

func (r *discountRepositoryImpl) Create(ctx context.Context, discount *entity.Discount) error {
	return r.db.WithContext(ctx).Create(r.toModel(discount)).Error
}

func (r *discountRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Discount, error) {
	var md model.Discount
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.First(&md).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&md), nil
}

func (r *discountRepositoryImpl) FindByCode(ctx context.Context, code string) (*entity.Discount, error) {
	return r.FindOne(ctx, specification.Filter("code", code))
}

func (r *discountRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Discount, error) {
	var models []*model.Discount
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	var discounts []*entity.Discount
	for _, md := range models {
		discounts = append(discounts, r.toEntity(md))
	}
	return discounts, nil
}

func (r *discountRepositoryImpl) Update(ctx context.Context, discount *entity.Discount) error {
	return r.db.WithContext(ctx).Model(&model.Discount{}).
		Where("id = ?", discount.ID).
		Updates(map[string]interface{}{
			"description":      discount.Description,
			"type":             string(discount.Type),
			"value":            discount.Value,
			"min_order_amount": discount.MinOrderAmount,
			"usage_limit":      discount.UsageLimit,
			"starts_at":        discount.StartsAt,
			"ends_at":          discount.EndsAt,
			"is_active":        discount.IsActive,
		}).Error
}

func (r *discountRepositoryImpl) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Discount{}).
		Where("id = ?", id).
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1")).Error
}

func (r *discountRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Discount{}, id).Error
}

func (r *discountRepositoryImpl) toModel(d *entity.Discount) *model.Discount {
	return &model.Discount{
		ID:             d.ID,
		Code:           d.Code,
		Description:    d.Description,
		Type:           string(d.Type),
		Value:          d.Value,
		MinOrderAmount: d.MinOrderAmount,
		UsageLimit:     d.UsageLimit,
		UsageCount:     d.UsageCount,
		StartsAt:       d.StartsAt,
		EndsAt:         d.EndsAt,
		IsActive:       d.IsActive,
	}
}

func (r *discountRepositoryImpl) toEntity(md *model.Discount) *entity.Discount {
	return &entity.Discount{
		ID:             md.ID,
		Code:           md.Code,
		Description:    md.Description,
		Type:           entity.DiscountType(md.Type),
		Value:          md.Value,
		MinOrderAmount: md.MinOrderAmount,
		UsageLimit:     md.UsageLimit,
		UsageCount:     md.UsageCount,
		StartsAt:       md.StartsAt,
		EndsAt:         md.EndsAt,
		IsActive:       md.IsActive,
		CreatedAt:      md.CreatedAt,
		UpdatedAt:      md.UpdatedAt,
	}
}
