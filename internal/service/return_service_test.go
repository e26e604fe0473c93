package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"shopsphere-admin-be/internal/dto"
	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/pkg/serverutils"
	"shopsphere-admin-be/pkg/admin/refund"
	"shopsphere-admin-be/pkg/returns"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReturnServiceForTest(uow *stubUow, gateway *stubGateway, mail *recordingMailer, events *recordingEventPublisher) IReturnService {
	return NewReturnService(
		&stubFactory{uow: uow},
		refund.NewProcessor(gateway, nopLogger{}),
		mail,
		events,
		nopLogger{},
	)
}

func pendingReturn(orderID uuid.UUID) *entity.ReturnRequest {
	ret := &entity.ReturnRequest{
		ID:          uuid.New(),
		OrderID:     orderID,
		Status:      entity.ReturnStatusPending,
		Reason:      "Arrived with a cracked casing",
		SubmittedAt: time.Now().Add(-time.Hour),
	}
	ret.Items = []entity.ReturnItem{
		{
			ID:              uuid.New(),
			ReturnRequestID: ret.ID,
			OrderItemID:     uuid.New(),
			ProductID:       uuid.New(),
			ProductName:     "Widget",
			SKU:             "WID-1",
			ReturnQuantity:  2,
			MaxQuantity:     3,
			UnitPrice:       50,
			TotalPrice:      100,
		},
	}
	return ret
}

func TestSubmitRequiresDeliveredOrder(t *testing.T) {
	order := testOrder(entity.OrderStatusShipped)
	uow := &stubUow{
		orders: &stubOrderRepo{
			findOne: func(ctx context.Context) (*entity.Order, error) { return order, nil },
		},
	}
	svc := newReturnServiceForTest(uow, &stubGateway{}, &recordingMailer{}, &recordingEventPublisher{})

	_, err := svc.Submit(context.Background(), &dto.SubmitReturnRequest{
		OrderID: order.ID,
		Reason:  "Arrived with a cracked casing",
		Items:   []dto.SubmitReturnItemRequest{{OrderItemID: order.Items[0].ID, ReturnQuantity: 1}},
	})
	assert.True(t, errors.Is(err, serverutils.ErrConflict))
}

func TestSubmitRejectsSecondPendingReturn(t *testing.T) {
	order := testOrder(entity.OrderStatusDelivered)
	uow := &stubUow{
		orders: &stubOrderRepo{
			findOne: func(ctx context.Context) (*entity.Order, error) { return order, nil },
		},
		returns: &stubReturnRepo{
			count: func(ctx context.Context) (int64, error) { return 1, nil },
		},
	}
	svc := newReturnServiceForTest(uow, &stubGateway{}, &recordingMailer{}, &recordingEventPublisher{})

	_, err := svc.Submit(context.Background(), &dto.SubmitReturnRequest{
		OrderID: order.ID,
		Reason:  "Arrived with a cracked casing",
		Items:   []dto.SubmitReturnItemRequest{{OrderItemID: order.Items[0].ID, ReturnQuantity: 1}},
	})
	assert.True(t, errors.Is(err, serverutils.ErrConflict))
}

func TestSubmitBuildsItemsFromOrderLines(t *testing.T) {
	order := testOrder(entity.OrderStatusDelivered)
	repo := &stubReturnRepo{
		count: func(ctx context.Context) (int64, error) { return 0, nil },
	}
	uow := &stubUow{
		orders: &stubOrderRepo{
			findOne: func(ctx context.Context) (*entity.Order, error) { return order, nil },
		},
		returns: repo,
	}
	svc := newReturnServiceForTest(uow, &stubGateway{}, &recordingMailer{}, &recordingEventPublisher{})

	res, err := svc.Submit(context.Background(), &dto.SubmitReturnRequest{
		OrderID: order.ID,
		Reason:  "Arrived with a cracked casing",
		Items:   []dto.SubmitReturnItemRequest{{OrderItemID: order.Items[0].ID, ReturnQuantity: 2}},
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	item := repo.created[0].Items[0]
	assert.Equal(t, order.Items[0].ProductID, item.ProductID)
	assert.Equal(t, order.Items[0].Quantity, item.MaxQuantity)
	assert.Equal(t, 100.0, item.TotalPrice) // 2 x 50.00
	assert.Equal(t, "PENDING", res.Status)
	assert.Equal(t, 100.0, res.TotalRefundAmount)
}

func TestSubmitRejectsOverReturn(t *testing.T) {
	order := testOrder(entity.OrderStatusDelivered)
	uow := &stubUow{
		orders: &stubOrderRepo{
			findOne: func(ctx context.Context) (*entity.Order, error) { return order, nil },
		},
		returns: &stubReturnRepo{
			count: func(ctx context.Context) (int64, error) { return 0, nil },
		},
	}
	svc := newReturnServiceForTest(uow, &stubGateway{}, &recordingMailer{}, &recordingEventPublisher{})

	// More units than the order line carried
	_, err := svc.Submit(context.Background(), &dto.SubmitReturnRequest{
		OrderID: order.ID,
		Reason:  "Arrived with a cracked casing",
		Items:   []dto.SubmitReturnItemRequest{{OrderItemID: order.Items[0].ID, ReturnQuantity: 5}},
	})
	assert.True(t, errors.Is(err, serverutils.ErrConflict))
}

func TestReviewApprovalRefundsAndStaysApproved(t *testing.T) {
	order := testOrder(entity.OrderStatusDelivered)
	ret := pendingReturn(order.ID)
	repo := &stubReturnRepo{
		findOne: func(ctx context.Context) (*entity.ReturnRequest, error) { return ret, nil },
	}
	uow := &stubUow{
		orders: &stubOrderRepo{
			findOne: func(ctx context.Context) (*entity.Order, error) { return order, nil },
		},
		returns: repo,
	}
	gateway := &stubGateway{}
	mail := &recordingMailer{}
	events := &recordingEventPublisher{}
	svc := newReturnServiceForTest(uow, gateway, mail, events)

	res, err := svc.Review(context.Background(), ret.ID, uuid.New(), &dto.ReviewReturnRequest{
		Decision: "APPROVED",
		Notes:    "Damage confirmed from photos",
	})
	require.NoError(t, err)

	// Review itself leaves the return APPROVED; Complete closes it out
	assert.Equal(t, "APPROVED", res.Status)
	assert.NotNil(t, res.RefundedAt)
	assert.Equal(t, []float64{100.0}, gateway.refunds)
	assert.Equal(t, []float64{100.0}, events.returnsDecided)
	assert.Equal(t, []string{"APPROVED"}, mail.decisions)
	assert.Equal(t, []float64{100.0}, mail.confirmations)
	// Decision persisted twice: once approved, once with the refund record
	assert.Len(t, repo.decisionsUpdated, 2)
}

func TestCompleteSkipsRefundWhenAlreadyRefunded(t *testing.T) {
	order := testOrder(entity.OrderStatusDelivered)
	ret := pendingReturn(order.ID)
	now := time.Now()
	decidedBy := uuid.New()
	ret.Status = entity.ReturnStatusApproved
	ret.DecisionAt = &now
	ret.DecidedBy = &decidedBy
	ret.RefundedAt = &now
	ret.RefundKey = "refund-key-test"
	repo := &stubReturnRepo{
		findOne: func(ctx context.Context) (*entity.ReturnRequest, error) { return ret, nil },
	}
	uow := &stubUow{
		orders: &stubOrderRepo{
			findOne: func(ctx context.Context) (*entity.Order, error) { return order, nil },
		},
		returns: repo,
	}
	gateway := &stubGateway{}
	svc := newReturnServiceForTest(uow, gateway, &recordingMailer{}, &recordingEventPublisher{})

	res, err := svc.Complete(context.Background(), ret.ID)
	require.NoError(t, err)

	assert.Equal(t, "COMPLETED", res.Status)
	assert.Empty(t, gateway.refunds)
	assert.Len(t, repo.decisionsUpdated, 1)
}

func TestCompleteRefundsWhenReviewRefundFailed(t *testing.T) {
	order := testOrder(entity.OrderStatusDelivered)
	ret := pendingReturn(order.ID)
	now := time.Now()
	decidedBy := uuid.New()
	ret.Status = entity.ReturnStatusApproved
	ret.DecisionAt = &now
	ret.DecidedBy = &decidedBy
	repo := &stubReturnRepo{
		findOne: func(ctx context.Context) (*entity.ReturnRequest, error) { return ret, nil },
	}
	uow := &stubUow{
		orders: &stubOrderRepo{
			findOne: func(ctx context.Context) (*entity.Order, error) { return order, nil },
		},
		returns: repo,
	}
	gateway := &stubGateway{}
	svc := newReturnServiceForTest(uow, gateway, &recordingMailer{}, &recordingEventPublisher{})

	res, err := svc.Complete(context.Background(), ret.ID)
	require.NoError(t, err)

	assert.Equal(t, "COMPLETED", res.Status)
	assert.NotNil(t, res.RefundedAt)
	assert.Equal(t, []float64{100.0}, gateway.refunds)
}

func TestReviewRefundFailureLeavesApproved(t *testing.T) {
	order := testOrder(entity.OrderStatusDelivered)
	ret := pendingReturn(order.ID)
	repo := &stubReturnRepo{
		findOne: func(ctx context.Context) (*entity.ReturnRequest, error) { return ret, nil },
	}
	uow := &stubUow{
		orders: &stubOrderRepo{
			findOne: func(ctx context.Context) (*entity.Order, error) { return order, nil },
		},
		returns: repo,
	}
	gateway := &stubGateway{err: errors.New("gateway unavailable")}
	mail := &recordingMailer{}
	svc := newReturnServiceForTest(uow, gateway, mail, &recordingEventPublisher{})

	res, err := svc.Review(context.Background(), ret.ID, uuid.New(), &dto.ReviewReturnRequest{
		Decision: "APPROVED",
	})
	require.NoError(t, err)

	// The approval stands; Complete retries the refund later
	assert.Equal(t, "APPROVED", res.Status)
	assert.Empty(t, mail.confirmations)
}

func TestReviewDenialSkipsRefund(t *testing.T) {
	order := testOrder(entity.OrderStatusDelivered)
	ret := pendingReturn(order.ID)
	repo := &stubReturnRepo{
		findOne: func(ctx context.Context) (*entity.ReturnRequest, error) { return ret, nil },
	}
	uow := &stubUow{
		orders: &stubOrderRepo{
			findOne: func(ctx context.Context) (*entity.Order, error) { return order, nil },
		},
		returns: repo,
	}
	gateway := &stubGateway{}
	mail := &recordingMailer{}
	svc := newReturnServiceForTest(uow, gateway, mail, &recordingEventPublisher{})

	res, err := svc.Review(context.Background(), ret.ID, uuid.New(), &dto.ReviewReturnRequest{
		Decision: "DENIED",
		Notes:    "Wear is consistent with normal use",
	})
	require.NoError(t, err)

	assert.Equal(t, "DENIED", res.Status)
	assert.True(t, res.CanBeAppealed)
	assert.Empty(t, gateway.refunds)
	assert.Equal(t, []string{"DENIED"}, mail.decisions)
}

func TestReviewRejectsDoubleDecision(t *testing.T) {
	order := testOrder(entity.OrderStatusDelivered)
	ret := pendingReturn(order.ID)
	ret.Status = entity.ReturnStatusDenied
	uow := &stubUow{
		orders: &stubOrderRepo{
			findOne: func(ctx context.Context) (*entity.Order, error) { return order, nil },
		},
		returns: &stubReturnRepo{
			findOne: func(ctx context.Context) (*entity.ReturnRequest, error) { return ret, nil },
		},
	}
	svc := newReturnServiceForTest(uow, &stubGateway{}, &recordingMailer{}, &recordingEventPublisher{})

	_, err := svc.Review(context.Background(), ret.ID, uuid.New(), &dto.ReviewReturnRequest{Decision: "APPROVED"})
	assert.True(t, errors.Is(err, returns.ErrInvalidStateTransition))
}

func TestReviewAppealApprovalOverridesDenial(t *testing.T) {
	order := testOrder(entity.OrderStatusDelivered)
	ret := pendingReturn(order.ID)
	now := time.Now()
	ret.Status = entity.ReturnStatusDenied
	ret.DecisionAt = &now
	ret.Appeal = &entity.ReturnAppeal{
		ID:              uuid.New(),
		ReturnRequestID: ret.ID,
		Reason:          "The photos clearly show shipping damage",
		Status:          entity.AppealStatusPending,
		SubmittedAt:     now,
	}

	repo := &stubReturnRepo{
		findOne: func(ctx context.Context) (*entity.ReturnRequest, error) { return ret, nil },
	}
	uow := &stubUow{
		orders: &stubOrderRepo{
			findOne: func(ctx context.Context) (*entity.Order, error) { return order, nil },
		},
		returns: repo,
	}
	gateway := &stubGateway{}
	mail := &recordingMailer{}
	events := &recordingEventPublisher{}
	svc := newReturnServiceForTest(uow, gateway, mail, events)

	res, err := svc.ReviewAppeal(context.Background(), ret.ID, &dto.ReviewAppealRequest{
		Decision: "APPROVED",
		Notes:    "Overturned on second look",
	})
	require.NoError(t, err)

	assert.Equal(t, "APPROVED", res.Status)
	assert.NotNil(t, res.RefundedAt)
	require.NotNil(t, res.Appeal)
	assert.Equal(t, "APPROVED", res.Appeal.Status)
	assert.Equal(t, []float64{100.0}, gateway.refunds)
	assert.Equal(t, []string{"APPROVED"}, events.appealsDecided)
	assert.Equal(t, []string{"APPROVED"}, mail.appeals)
	assert.True(t, uow.committed)
}
