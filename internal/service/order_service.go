package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shopsphere-admin-be/internal/dto"
	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/pkg/serverutils"
	"shopsphere-admin-be/internal/repository/specification"
	"shopsphere-admin-be/internal/repository/unitofwork"
	adminEvents "shopsphere-admin-be/pkg/admin/events"

	"github.com/google/uuid"
)

type IOrderService interface {
	GetAll(ctx context.Context, page, limit int, status string) (*dto.OrderListResponse, error)
	GetOne(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error)
}

type orderService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   adminEvents.Publisher
}

func NewOrderService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher adminEvents.Publisher,
) IOrderService {
	return &orderService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

// validStatusTransitions encodes the forward-only fulfillment pipeline.
// CANCELLED is reachable until the order ships.
var validStatusTransitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderStatusPending:    {entity.OrderStatusProcessing, entity.OrderStatusCancelled},
	entity.OrderStatusProcessing: {entity.OrderStatusShipped, entity.OrderStatusCancelled},
	entity.OrderStatusShipped:    {entity.OrderStatusDelivered},
}

func canTransition(from, to entity.OrderStatus) bool {
	for _, next := range validStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func toOrderResponse(order *entity.Order) dto.OrderResponse {
	res := dto.OrderResponse{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		CustomerID:     order.CustomerID,
		CustomerEmail:  order.CustomerEmail,
		Status:         string(order.Status),
		Subtotal:       order.Subtotal,
		DiscountAmount: order.DiscountAmount,
		DiscountCode:   order.DiscountCode,
		TotalAmount:    order.TotalAmount,
		PlacedAt:       order.PlacedAt,
		DeliveredAt:    order.DeliveredAt,
		Items:          make([]dto.OrderItemResponse, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		res.Items = append(res.Items, dto.OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			SKU:         item.SKU,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}
	return res
}

func (s *orderService) GetAll(ctx context.Context, page, limit int, status string) (*dto.OrderListResponse, error) {
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

	total, err := uow.OrderRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	specs := append(filters,
		specification.OrderBy{Field: "placed_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)

	orders, err := uow.OrderRepository().FindAllWithItems(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := &dto.OrderListResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
		Page:   page,
		Limit:  limit,
		Total:  total,
	}
	for _, order := range orders {
		result.Orders = append(result.Orders, toOrderResponse(order))
	}
	return result, nil
}

func (s *orderService) GetOne(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOneWithItems(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, serverutils.ErrNotFound
	}

	res := toOrderResponse(order)
	return &res, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOneWithItems(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, serverutils.ErrNotFound
	}

	newStatus := entity.OrderStatus(req.Status)
	if !canTransition(order.Status, newStatus) {
		return nil, fmt.Errorf("%w: cannot move order from %s to %s", serverutils.ErrConflict, order.Status, newStatus)
	}

	oldStatus := order.Status
	order.Status = newStatus
	if newStatus == entity.OrderStatusDelivered {
		now := time.Now()
		order.DeliveredAt = &now
	}

	if err := uow.OrderRepository().UpdateStatus(ctx, order); err != nil {
		return nil, err
	}

	s.eventPublisher.PublishOrderStatusChanged(ctx, order.ID, order.OrderNumber, string(oldStatus), string(newStatus))

	// Delivery completes the purchase, so queue points accrual
	if newStatus == entity.OrderStatusDelivered {
		msg := dto.OrderDeliveredMessage{OrderID: order.ID}
		msgJson, _ := json.Marshal(msg)
		if err := s.publisherService.Publish(ctx, msgJson); err != nil {
			return nil, err
		}
	}

	res := toOrderResponse(order)
	return &res, nil
}
