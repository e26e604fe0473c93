package service

import (
	"context"
	"fmt"
	"time"

	"shopsphere-admin-be/internal/dto"
	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/pkg/logger"
	"shopsphere-admin-be/internal/pkg/mailer"
	"shopsphere-admin-be/internal/pkg/serverutils"
	"shopsphere-admin-be/internal/repository/specification"
	"shopsphere-admin-be/internal/repository/unitofwork"
	adminEvents "shopsphere-admin-be/pkg/admin/events"
	"shopsphere-admin-be/pkg/admin/refund"
	"shopsphere-admin-be/pkg/returns"

	"github.com/google/uuid"
)

type IReturnService interface {
	Submit(ctx context.Context, req *dto.SubmitReturnRequest) (*dto.ReturnRequestResponse, error)
	GetAll(ctx context.Context, page, limit int, status string) (*dto.ReturnListResponse, error)
	GetOne(ctx context.Context, id uuid.UUID) (*dto.ReturnRequestResponse, error)
	Review(ctx context.Context, id, reviewerID uuid.UUID, req *dto.ReviewReturnRequest) (*dto.ReturnRequestResponse, error)
	Complete(ctx context.Context, id uuid.UUID) (*dto.ReturnRequestResponse, error)
	SubmitAppeal(ctx context.Context, id uuid.UUID, req *dto.SubmitAppealRequest) (*dto.ReturnRequestResponse, error)
	ReviewAppeal(ctx context.Context, id uuid.UUID, req *dto.ReviewAppealRequest) (*dto.ReturnRequestResponse, error)
}

type returnService struct {
	uowFactory      unitofwork.RepositoryFactory
	refundProcessor *refund.Processor
	emailService    mailer.IEmailService
	eventPublisher  adminEvents.Publisher
	logger          logger.ILogger
}

func NewReturnService(
	uowFactory unitofwork.RepositoryFactory,
	refundProcessor *refund.Processor,
	emailService mailer.IEmailService,
	eventPublisher adminEvents.Publisher,
	logger logger.ILogger,
) IReturnService {
	return &returnService{
		uowFactory:      uowFactory,
		refundProcessor: refundProcessor,
		emailService:    emailService,
		eventPublisher:  eventPublisher,
		logger:          logger,
	}
}

func toReturnResponse(req *entity.ReturnRequest, now time.Time) dto.ReturnRequestResponse {
	res := dto.ReturnRequestResponse{
		ID:                req.ID,
		OrderID:           req.OrderID,
		CustomerID:        req.CustomerID,
		Status:            string(req.Status),
		Reason:            req.Reason,
		SubmittedAt:       req.SubmittedAt,
		DecisionAt:        req.DecisionAt,
		DecisionNotes:     req.DecisionNotes,
		TotalRefundAmount: returns.TotalRefundAmount(req),
		RefundedAt:        req.RefundedAt,
		CanBeAppealed:     returns.CanBeAppealed(req, now),
		Items:             make([]dto.ReturnItemResponse, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		res.Items = append(res.Items, dto.ReturnItemResponse{
			ID:             item.ID,
			OrderItemID:    item.OrderItemID,
			ProductID:      item.ProductID,
			ProductName:    item.ProductName,
			SKU:            item.SKU,
			ReturnQuantity: item.ReturnQuantity,
			MaxQuantity:    item.MaxQuantity,
			UnitPrice:      item.UnitPrice,
			TotalPrice:     item.TotalPrice,
		})
	}
	if req.Appeal != nil {
		res.Appeal = &dto.ReturnAppealResponse{
			ID:            req.Appeal.ID,
			Reason:        req.Appeal.Reason,
			Status:        string(req.Appeal.Status),
			SubmittedAt:   req.Appeal.SubmittedAt,
			DecisionAt:    req.Appeal.DecisionAt,
			DecisionNotes: req.Appeal.DecisionNotes,
		}
	}
	return res
}

func (s *returnService) Submit(ctx context.Context, req *dto.SubmitReturnRequest) (*dto.ReturnRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOneWithItems(ctx, specification.ByID{ID: req.OrderID})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, serverutils.ErrNotFound
	}
	if order.Status != entity.OrderStatusDelivered {
		return nil, fmt.Errorf("%w: only delivered orders can be returned", serverutils.ErrConflict)
	}

	// One open return per order
	openCount, err := uow.ReturnRepository().Count(ctx,
		specification.ByOrder{OrderID: req.OrderID},
		specification.ByStatus{Status: string(entity.ReturnStatusPending)},
	)
	if err != nil {
		return nil, err
	}
	if openCount > 0 {
		return nil, fmt.Errorf("%w: a pending return already exists for this order", serverutils.ErrConflict)
	}

	orderItems := make(map[uuid.UUID]*entity.OrderItem, len(order.Items))
	for i := range order.Items {
		orderItems[order.Items[i].ID] = &order.Items[i]
	}

	now := time.Now()
	ret := &entity.ReturnRequest{
		ID:          uuid.New(),
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		Status:      entity.ReturnStatusPending,
		Reason:      req.Reason,
		SubmittedAt: now,
		CreatedAt:   now,
	}
	for _, line := range req.Items {
		orderItem, ok := orderItems[line.OrderItemID]
		if !ok {
			return nil, fmt.Errorf("%w: order item %s does not belong to order", serverutils.ErrConflict, line.OrderItemID)
		}
		ret.Items = append(ret.Items, entity.ReturnItem{
			ID:              uuid.New(),
			ReturnRequestID: ret.ID,
			OrderItemID:     orderItem.ID,
			ProductID:       orderItem.ProductID,
			ProductName:     orderItem.ProductName,
			SKU:             orderItem.SKU,
			ReturnQuantity:  line.ReturnQuantity,
			MaxQuantity:     orderItem.Quantity,
			UnitPrice:       orderItem.UnitPrice,
			TotalPrice:      orderItem.UnitPrice * float64(line.ReturnQuantity),
		})
	}

	if problems := returns.ValidateItems(ret.Items); len(problems) > 0 {
		return nil, fmt.Errorf("%w: %v", serverutils.ErrConflict, problems)
	}

	if err := uow.ReturnRepository().Create(ctx, ret); err != nil {
		return nil, err
	}

	s.logger.Info("RETURNS", "Return request submitted", map[string]interface{}{
		"returnId": ret.ID.String(),
		"orderId":  order.ID.String(),
		"items":    len(ret.Items),
	})

	res := toReturnResponse(ret, now)
	return &res, nil
}

func (s *returnService) GetAll(ctx context.Context, page, limit int, status string) (*dto.ReturnListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var filters []specification.Specification
	if status != "" {
		filters = append(filters, specification.ByStatus{Status: status})
	}

	total, err := uow.ReturnRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	specs := append(filters,
		specification.OrderBy{Field: "submitted_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)

	requests, err := uow.ReturnRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := &dto.ReturnListResponse{
		Returns: make([]dto.ReturnRequestResponse, 0, len(requests)),
		Page:    page,
		Limit:   limit,
		Total:   total,
	}
	for _, ret := range requests {
		result.Returns = append(result.Returns, toReturnResponse(ret, now))
	}
	return result, nil
}

func (s *returnService) GetOne(ctx context.Context, id uuid.UUID) (*dto.ReturnRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ret, err := uow.ReturnRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, serverutils.ErrNotFound
	}

	res := toReturnResponse(ret, time.Now())
	return &res, nil
}

func (s *returnService) Review(ctx context.Context, id, reviewerID uuid.UUID, req *dto.ReviewReturnRequest) (*dto.ReturnRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ret, err := uow.ReturnRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, serverutils.ErrNotFound
	}

	now := time.Now()
	if err := returns.Decide(ret, entity.ReturnStatus(req.Decision), req.Notes, reviewerID, now); err != nil {
		return nil, err
	}

	if err := uow.ReturnRepository().UpdateDecision(ctx, ret); err != nil {
		return nil, err
	}

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: ret.OrderID})
	if err != nil {
		return nil, err
	}

	// An approved return is refunded immediately but stays APPROVED;
	// fulfillment closes it out through Complete once the goods are back.
	refundAmount := 0.0
	if ret.Status == entity.ReturnStatusApproved && order != nil {
		result, err := s.refundProcessor.Execute(ctx, ret, order)
		if err != nil {
			// The decision stands; the refund is retried via Complete
			s.logger.Error("RETURNS", "Refund failed after approval", map[string]interface{}{
				"returnId": ret.ID.String(),
				"error":    err.Error(),
			})
		} else {
			refundAmount = result.Amount
			ret.RefundedAt = &now
			ret.RefundKey = result.RefundKey
			if err := uow.ReturnRepository().UpdateDecision(ctx, ret); err != nil {
				return nil, err
			}
		}
	}

	s.eventPublisher.PublishReturnDecided(ctx, ret.ID, ret.OrderID, req.Decision, req.Notes, refundAmount)

	if order != nil && order.CustomerEmail != "" {
		if err := s.emailService.SendReturnDecision(order.CustomerEmail, ret.ID.String(), req.Decision, req.Notes); err != nil {
			s.logger.Warn("RETURNS", "Failed to send decision email", map[string]interface{}{
				"returnId": ret.ID.String(),
				"error":    err.Error(),
			})
		}
		if refundAmount > 0 {
			if err := s.emailService.SendRefundConfirmation(order.CustomerEmail, ret.ID.String(), refundAmount); err != nil {
				s.logger.Warn("RETURNS", "Failed to send refund email", map[string]interface{}{
					"returnId": ret.ID.String(),
					"error":    err.Error(),
				})
			}
		}
	}

	res := toReturnResponse(ret, now)
	return &res, nil
}

// Complete retries the refund for an approved return and closes it out.
func (s *returnService) Complete(ctx context.Context, id uuid.UUID) (*dto.ReturnRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ret, err := uow.ReturnRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, serverutils.ErrNotFound
	}

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: ret.OrderID})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, serverutils.ErrNotFound
	}

	// Refund only if the review-time refund did not go through
	if ret.RefundedAt == nil {
		result, err := s.refundProcessor.Execute(ctx, ret, order)
		if err != nil {
			return nil, err
		}
		now := time.Now()
		ret.RefundedAt = &now
		ret.RefundKey = result.RefundKey
	}

	if err := returns.Complete(ret); err != nil {
		return nil, err
	}
	if err := uow.ReturnRepository().UpdateDecision(ctx, ret); err != nil {
		return nil, err
	}

	res := toReturnResponse(ret, time.Now())
	return &res, nil
}

func (s *returnService) SubmitAppeal(ctx context.Context, id uuid.UUID, req *dto.SubmitAppealRequest) (*dto.ReturnRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ret, err := uow.ReturnRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, serverutils.ErrNotFound
	}

	now := time.Now()
	appeal, err := returns.SubmitAppeal(ret, req.Reason, now)
	if err != nil {
		return nil, err
	}

	if err := uow.ReturnRepository().CreateAppeal(ctx, appeal); err != nil {
		return nil, err
	}

	s.logger.Info("RETURNS", "Appeal submitted", map[string]interface{}{
		"returnId": ret.ID.String(),
		"appealId": appeal.ID.String(),
	})

	res := toReturnResponse(ret, now)
	return &res, nil
}

func (s *returnService) ReviewAppeal(ctx context.Context, id uuid.UUID, req *dto.ReviewAppealRequest) (*dto.ReturnRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ret, err := uow.ReturnRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if ret == nil || ret.Appeal == nil {
		return nil, serverutils.ErrNotFound
	}

	now := time.Now()
	if err := returns.DecideAppeal(ret, entity.AppealStatus(req.Decision), req.Notes, now); err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ReturnRepository().UpdateAppealDecision(ctx, ret.Appeal); err != nil {
		return nil, err
	}
	// An approved appeal flips the parent decision too
	if err := uow.ReturnRepository().UpdateDecision(ctx, ret); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: ret.OrderID})
	if err != nil {
		return nil, err
	}

	// An approved appeal flips the return to APPROVED and triggers the
	// refund; Complete still closes it out separately.
	if ret.Appeal.Status == entity.AppealStatusApproved && order != nil {
		if result, err := s.refundProcessor.Execute(ctx, ret, order); err != nil {
			s.logger.Error("RETURNS", "Refund failed after appeal approval", map[string]interface{}{
				"returnId": ret.ID.String(),
				"error":    err.Error(),
			})
		} else {
			ret.RefundedAt = &now
			ret.RefundKey = result.RefundKey
			if err := uow.ReturnRepository().UpdateDecision(ctx, ret); err != nil {
				return nil, err
			}
		}
	}

	s.eventPublisher.PublishAppealDecided(ctx, ret.Appeal.ID, ret.ID, req.Decision, req.Notes)

	if order != nil && order.CustomerEmail != "" {
		if err := s.emailService.SendAppealDecision(order.CustomerEmail, ret.ID.String(), req.Decision, req.Notes); err != nil {
			s.logger.Warn("RETURNS", "Failed to send appeal email", map[string]interface{}{
				"returnId": ret.ID.String(),
				"error":    err.Error(),
			})
		}
	}

	res := toReturnResponse(ret, now)
	return &res, nil
}
