package contract

import (
	"context"

	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/repository/specification"
)

type ReturnRepository interface {
	// Create persists a return request together with its items.
	Create(ctx context.Context, req *entity.ReturnRequest) error
	// FindOne preloads items and appeal.
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReturnRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReturnRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// UpdateDecision persists the decision fields of a decided request.
	UpdateDecision(ctx context.Context, req *entity.ReturnRequest) error
	CreateAppeal(ctx context.Context, appeal *entity.ReturnAppeal) error
	UpdateAppealDecision(ctx context.Context, appeal *entity.ReturnAppeal) error
}
