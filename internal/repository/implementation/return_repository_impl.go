package implementation

import (
	"context"

	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/model"
	"shopsphere-admin-be/internal/repository/contract"
	"shopsphere-admin-be/internal/repository/specification"

	"gorm.io/gorm"
)

type returnRepositoryImpl struct {
	db *gorm.DB
}

func NewReturnRepository(db *gorm.DB) contract.ReturnRepository {
	return &returnRepositoryImpl{db: db}
}

func (r *returnRepositoryImpl) Create(ctx context.Context, req *entity.ReturnRequest) error {
	return r.db.WithContext(ctx).Create(r.toModel(req)).Error
}

func (r *returnRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReturnRequest, error) {
	var mr model.ReturnRequest
	query := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Appeal")

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.First(&mr).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&mr), nil
}

func (r *returnRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReturnRequest, error) {
	var models []*model.ReturnRequest
	query := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Appeal")

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	var requests []*entity.ReturnRequest
	for _, mr := range models {
		requests = append(requests, r.toEntity(mr))
	}
	return requests, nil
}

func (r *returnRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.ReturnRequest{})

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	err := query.Count(&count).Error
	return count, err
}

func (r *returnRepositoryImpl) UpdateDecision(ctx context.Context, req *entity.ReturnRequest) error {
	return r.db.WithContext(ctx).Model(&model.ReturnRequest{}).
		Where("id = ?", req.ID).
		Updates(map[string]interface{}{
			"status":         string(req.Status),
			"decision_at":    req.DecisionAt,
			"decision_notes": req.DecisionNotes,
			"decided_by":     req.DecidedBy,
			"refunded_at":    req.RefundedAt,
			"refund_key":     req.RefundKey,
		}).Error
}

func (r *returnRepositoryImpl) CreateAppeal(ctx context.Context, appeal *entity.ReturnAppeal) error {
	return r.db.WithContext(ctx).Create(&model.ReturnAppeal{
		ID:              appeal.ID,
		ReturnRequestID: appeal.ReturnRequestID,
		Reason:          appeal.Reason,
		Status:          string(appeal.Status),
		SubmittedAt:     appeal.SubmittedAt,
	}).Error
}

func (r *returnRepositoryImpl) UpdateAppealDecision(ctx context.Context, appeal *entity.ReturnAppeal) error {
	return r.db.WithContext(ctx).Model(&model.ReturnAppeal{}).
		Where("id = ?", appeal.ID).
		Updates(map[string]interface{}{
			"status":         string(appeal.Status),
			"decision_at":    appeal.DecisionAt,
			"decision_notes": appeal.DecisionNotes,
		}).Error
}

func (r *returnRepositoryImpl) toModel(req *entity.ReturnRequest) *model.ReturnRequest {
	mr := &model.ReturnRequest{
		ID:            req.ID,
		OrderID:       req.OrderID,
		CustomerID:    req.CustomerID,
		Status:        string(req.Status),
		Reason:        req.Reason,
		SubmittedAt:   req.SubmittedAt,
		DecisionAt:    req.DecisionAt,
		DecisionNotes: req.DecisionNotes,
		DecidedBy:     req.DecidedBy,
		RefundedAt:    req.RefundedAt,
		RefundKey:     req.RefundKey,
	}
	for _, it := range req.Items {
		mr.Items = append(mr.Items, model.ReturnItem{
			ID:              it.ID,
			ReturnRequestID: it.ReturnRequestID,
			OrderItemID:     it.OrderItemID,
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			SKU:             it.SKU,
			ReturnQuantity:  it.ReturnQuantity,
			MaxQuantity:     it.MaxQuantity,
			UnitPrice:       it.UnitPrice,
			TotalPrice:      it.TotalPrice,
		})
	}
	return mr
}

func (r *returnRepositoryImpl) toEntity(mr *model.ReturnRequest) *entity.ReturnRequest {
	req := &entity.ReturnRequest{
		ID:            mr.ID,
		OrderID:       mr.OrderID,
		CustomerID:    mr.CustomerID,
		Status:        entity.ReturnStatus(mr.Status),
		Reason:        mr.Reason,
		SubmittedAt:   mr.SubmittedAt,
		DecisionAt:    mr.DecisionAt,
		DecisionNotes: mr.DecisionNotes,
		DecidedBy:     mr.DecidedBy,
		RefundedAt:    mr.RefundedAt,
		RefundKey:     mr.RefundKey,
		CreatedAt:     mr.CreatedAt,
		UpdatedAt:     mr.UpdatedAt,
	}
	for _, it := range mr.Items {
		req.Items = append(req.Items, entity.ReturnItem{
			ID:              it.ID,
			ReturnRequestID: it.ReturnRequestID,
			OrderItemID:     it.OrderItemID,
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			SKU:             it.SKU,
			ReturnQuantity:  it.ReturnQuantity,
			MaxQuantity:     it.MaxQuantity,
			UnitPrice:       it.UnitPrice,
			TotalPrice:      it.TotalPrice,
		})
	}
	if mr.Appeal != nil {
		req.Appeal = &entity.ReturnAppeal{
			ID:              mr.Appeal.ID,
			ReturnRequestID: mr.Appeal.ReturnRequestID,
			Reason:          mr.Appeal.Reason,
			Status:          entity.AppealStatus(mr.Appeal.Status),
			SubmittedAt:     mr.Appeal.SubmittedAt,
			DecisionAt:      mr.Appeal.DecisionAt,
			DecisionNotes:   mr.Appeal.DecisionNotes,
		}
	}
	return req
}
