package service

import (
	"context"
	"time"

	"shopsphere-admin-be/internal/dto"
	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/pkg/serverutils"
	"shopsphere-admin-be/internal/repository/specification"
	"shopsphere-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IDiscountService interface {
	Create(ctx context.Context, req *dto.CreateDiscountRequest) (*dto.DiscountResponse, error)
	GetAll(ctx context.Context) ([]*dto.DiscountResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	Redeem(ctx context.Context, req *dto.RedeemDiscountRequest) (*dto.RedeemDiscountResponse, error)
}

type discountService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDiscountService(uowFactory unitofwork.RepositoryFactory) IDiscountService {
	return &discountService{
		uowFactory: uowFactory,
	}
}

func toDiscountResponse(discount *entity.Discount) dto.DiscountResponse {
	return dto.DiscountResponse{
		ID:             discount.ID,
		Code:           discount.Code,
		Description:    discount.Description,
		Type:           string(discount.Type),
		Value:          discount.Value,
		MinOrderAmount: discount.MinOrderAmount,
		UsageLimit:     discount.UsageLimit,
		UsageCount:     discount.UsageCount,
		StartsAt:       discount.StartsAt,
		EndsAt:         discount.EndsAt,
		IsActive:       discount.IsActive,
		CreatedAt:      discount.CreatedAt,
	}
}

func (s *discountService) Create(ctx context.Context, req *dto.CreateDiscountRequest) (*dto.DiscountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.DiscountRepository().FindByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.ErrConflict
	}

	discount := &entity.Discount{
		ID:             uuid.New(),
		Code:           req.Code,
		Description:    req.Description,
		Type:           entity.DiscountType(req.Type),
		Value:          req.Value,
		MinOrderAmount: req.MinOrderAmount,
		UsageLimit:     req.UsageLimit,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		IsActive:       true,
		CreatedAt:      time.Now(),
	}

	if err := uow.DiscountRepository().Create(ctx, discount); err != nil {
		return nil, err
	}

	res := toDiscountResponse(discount)
	return &res, nil
}

func (s *discountService) GetAll(ctx context.Context) ([]*dto.DiscountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	discounts, err := uow.DiscountRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DiscountResponse, 0, len(discounts))
	for _, discount := range discounts {
		res := toDiscountResponse(discount)
		result = append(result, &res)
	}
	return result, nil
}

func (s *discountService) Deactivate(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	discount, err := uow.DiscountRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if discount == nil {
		return serverutils.ErrNotFound
	}

	discount.IsActive = false
	return uow.DiscountRepository().Update(ctx, discount)
}

// Redeem validates a code against an order amount and reserves one use.
func (s *discountService) Redeem(ctx context.Context, req *dto.RedeemDiscountRequest) (*dto.RedeemDiscountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	discount, err := uow.DiscountRepository().FindByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, serverutils.ErrNotFound
	}

	now := time.Now()
	switch {
	case !discount.IsActive:
		return nil, serverutils.ErrConflict
	case now.Before(discount.StartsAt):
		return nil, serverutils.ErrConflict
	case discount.EndsAt != nil && now.After(*discount.EndsAt):
		return nil, serverutils.ErrConflict
	case discount.UsageLimit > 0 && discount.UsageCount >= discount.UsageLimit:
		return nil, serverutils.ErrConflict
	case req.OrderAmount < discount.MinOrderAmount:
		return nil, serverutils.ErrConflict
	}

	var amount float64
	if discount.Type == entity.DiscountTypePercent {
		amount = req.OrderAmount * discount.Value / 100
	} else {
		amount = discount.Value
	}
	if amount > req.OrderAmount {
		amount = req.OrderAmount
	}

	if err := uow.DiscountRepository().IncrementUsage(ctx, discount.ID); err != nil {
		return nil, err
	}

	return &dto.RedeemDiscountResponse{
		Code:           discount.Code,
		DiscountAmount: amount,
		FinalAmount:    req.OrderAmount - amount,
	}, nil
}
