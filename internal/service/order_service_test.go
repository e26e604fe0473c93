package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"shopsphere-admin-be/internal/dto"
	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from entity.OrderStatus
		to   entity.OrderStatus
		want bool
	}{
		{entity.OrderStatusPending, entity.OrderStatusProcessing, true},
		{entity.OrderStatusPending, entity.OrderStatusCancelled, true},
		{entity.OrderStatusPending, entity.OrderStatusShipped, false},
		{entity.OrderStatusPending, entity.OrderStatusDelivered, false},
		{entity.OrderStatusProcessing, entity.OrderStatusShipped, true},
		{entity.OrderStatusProcessing, entity.OrderStatusCancelled, true},
		{entity.OrderStatusProcessing, entity.OrderStatusDelivered, false},
		{entity.OrderStatusShipped, entity.OrderStatusDelivered, true},
		{entity.OrderStatusShipped, entity.OrderStatusCancelled, false},
		{entity.OrderStatusDelivered, entity.OrderStatusPending, false},
		{entity.OrderStatusCancelled, entity.OrderStatusProcessing, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, canTransition(tt.from, tt.to))
		})
	}
}

func testOrder(status entity.OrderStatus) *entity.Order {
	customerID := uuid.New()
	return &entity.Order{
		ID:            uuid.New(),
		OrderNumber:   "ORD-1001",
		CustomerID:    &customerID,
		CustomerEmail: "customer@example.com",
		Status:        status,
		TotalAmount:   150.00,
		Items: []entity.OrderItem{
			{ID: uuid.New(), ProductID: uuid.New(), ProductName: "Widget", SKU: "WID-1", Quantity: 3, UnitPrice: 50, TotalPrice: 150},
		},
	}
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	order := testOrder(entity.OrderStatusPending)
	uow := &stubUow{orders: &stubOrderRepo{
		findOne: func(ctx context.Context) (*entity.Order, error) { return order, nil },
	}}

	svc := NewOrderService(&stubFactory{uow: uow}, &recordingPublisher{}, &recordingEventPublisher{})

	_, err := svc.UpdateStatus(context.Background(), order.ID, &dto.UpdateOrderStatusRequest{Status: "DELIVERED"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, serverutils.ErrConflict))
}

func TestUpdateStatusNotFound(t *testing.T) {
	uow := &stubUow{orders: &stubOrderRepo{
		findOne: func(ctx context.Context) (*entity.Order, error) { return nil, nil },
	}}

	svc := NewOrderService(&stubFactory{uow: uow}, &recordingPublisher{}, &recordingEventPublisher{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), &dto.UpdateOrderStatusRequest{Status: "PROCESSING"})
	assert.True(t, errors.Is(err, serverutils.ErrNotFound))
}

func TestUpdateStatusDeliveredQueuesPointsAccrual(t *testing.T) {
	order := testOrder(entity.OrderStatusShipped)
	uow := &stubUow{orders: &stubOrderRepo{
		findOne: func(ctx context.Context) (*entity.Order, error) { return order, nil },
	}}
	publisher := &recordingPublisher{}
	events := &recordingEventPublisher{}

	svc := NewOrderService(&stubFactory{uow: uow}, publisher, events)

	res, err := svc.UpdateStatus(context.Background(), order.ID, &dto.UpdateOrderStatusRequest{Status: "DELIVERED"})
	require.NoError(t, err)
	assert.Equal(t, "DELIVERED", res.Status)
	require.NotNil(t, res.DeliveredAt)

	require.Len(t, publisher.published, 1)
	var msg dto.OrderDeliveredMessage
	require.NoError(t, json.Unmarshal(publisher.published[0], &msg))
	assert.Equal(t, order.ID, msg.OrderID)

	assert.Equal(t, []string{"SHIPPED->DELIVERED"}, events.orderStatusChanges)
}

func TestUpdateStatusNonDeliveryDoesNotQueueAccrual(t *testing.T) {
	order := testOrder(entity.OrderStatusPending)
	uow := &stubUow{orders: &stubOrderRepo{
		findOne: func(ctx context.Context) (*entity.Order, error) { return order, nil },
	}}
	publisher := &recordingPublisher{}

	svc := NewOrderService(&stubFactory{uow: uow}, publisher, &recordingEventPublisher{})

	res, err := svc.UpdateStatus(context.Background(), order.ID, &dto.UpdateOrderStatusRequest{Status: "PROCESSING"})
	require.NoError(t, err)
	assert.Equal(t, "PROCESSING", res.Status)
	assert.Nil(t, res.DeliveredAt)
	assert.Empty(t, publisher.published)
}
