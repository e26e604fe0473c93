package events

import (
	"context"
	"time"

	"shopsphere-admin-be/internal/pkg/logger"
	pkgEvents "shopsphere-admin-be/pkg/events"
	pktNats "shopsphere-admin-be/pkg/nats"

	"github.com/google/uuid"
)

// Publisher abstracts event publishing for back-office operations.
type Publisher interface {
	PublishOrderStatusChanged(ctx context.Context, orderId uuid.UUID, orderNumber, oldStatus, newStatus string)
	PublishReturnDecided(ctx context.Context, returnId, orderId uuid.UUID, status, notes string, refundAmount float64)
	PublishAppealDecided(ctx context.Context, appealId, returnId uuid.UUID, status, notes string)
	PublishPointsAccrued(ctx context.Context, customerId, orderId uuid.UUID, points int, txType string)
	PublishRewardConfigActivated(ctx context.Context, configId uuid.UUID)
	PublishStockLow(ctx context.Context, warehouseId, productId uuid.UUID, quantity, reorderAt int)
}

// NatsPublisher implements Publisher using NATS JetStream.
type NatsPublisher struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

func NewNatsPublisher(publisher *pktNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

func (p *NatsPublisher) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	// Publisher may be nil when NATS is unavailable; events are best-effort
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishOrderStatusChanged emits ORDER_STATUS_CHANGED when an order moves
// along the fulfillment pipeline.
func (p *NatsPublisher) PublishOrderStatusChanged(ctx context.Context, orderId uuid.UUID, orderNumber, oldStatus, newStatus string) {
	p.publish(ctx, "ORDER_STATUS_CHANGED", map[string]interface{}{
		"order_id":     orderId,
		"order_number": orderNumber,
		"old_status":   oldStatus,
		"new_status":   newStatus,
		"entity_type":  "order",
		"entity_id":    orderId.String(),
	})
}

// PublishReturnDecided emits RETURN_APPROVED or RETURN_DENIED.
func (p *NatsPublisher) PublishReturnDecided(ctx context.Context, returnId, orderId uuid.UUID, status, notes string, refundAmount float64) {
	p.publish(ctx, "RETURN_"+status, map[string]interface{}{
		"return_id":     returnId,
		"order_id":      orderId,
		"status":        status,
		"notes":         notes,
		"refund_amount": refundAmount,
		"entity_type":   "return_request",
		"entity_id":     returnId.String(),
	})
}

// PublishAppealDecided emits APPEAL_APPROVED or APPEAL_DENIED.
func (p *NatsPublisher) PublishAppealDecided(ctx context.Context, appealId, returnId uuid.UUID, status, notes string) {
	p.publish(ctx, "APPEAL_"+status, map[string]interface{}{
		"appeal_id":   appealId,
		"return_id":   returnId,
		"status":      status,
		"notes":       notes,
		"entity_type": "return_appeal",
		"entity_id":   appealId.String(),
	})
}

// PublishPointsAccrued emits POINTS_ACCRUED after a ledger credit.
func (p *NatsPublisher) PublishPointsAccrued(ctx context.Context, customerId, orderId uuid.UUID, points int, txType string) {
	p.publish(ctx, "POINTS_ACCRUED", map[string]interface{}{
		"customer_id": customerId,
		"order_id":    orderId,
		"points":      points,
		"tx_type":     txType,
		"entity_type": "points_ledger",
		"entity_id":   customerId.String(),
	})
}

// PublishRewardConfigActivated emits REWARD_CONFIG_ACTIVATED when a config
// becomes the active one.
func (p *NatsPublisher) PublishRewardConfigActivated(ctx context.Context, configId uuid.UUID) {
	p.publish(ctx, "REWARD_CONFIG_ACTIVATED", map[string]interface{}{
		"config_id":   configId,
		"entity_type": "reward_config",
		"entity_id":   configId.String(),
	})
}

// PublishStockLow emits STOCK_LOW when a stock level crosses its reorder threshold.
func (p *NatsPublisher) PublishStockLow(ctx context.Context, warehouseId, productId uuid.UUID, quantity, reorderAt int) {
	p.publish(ctx, "STOCK_LOW", map[string]interface{}{
		"warehouse_id": warehouseId,
		"product_id":   productId,
		"quantity":     quantity,
		"reorder_at":   reorderAt,
		"entity_type":  "stock_level",
		"entity_id":    productId.String(),
	})
}
