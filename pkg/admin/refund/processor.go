package refund

import (
	"context"
	"fmt"
	"time"

	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/pkg/logger"
	"shopsphere-admin-be/internal/pkg/payment"
	"shopsphere-admin-be/pkg/returns"

	"github.com/google/uuid"
)

// Result contains the outcome of a processed refund.
type Result struct {
	ReturnId    uuid.UUID
	RefundKey   string
	Amount      float64
	ProcessedAt time.Time
}

// Processor issues the payment-provider refund for an approved return.
type Processor struct {
	gateway payment.RefundGateway
	logger  logger.ILogger
}

func NewProcessor(gateway payment.RefundGateway, logger logger.ILogger) *Processor {
	return &Processor{
		gateway: gateway,
		logger:  logger,
	}
}

// Execute refunds the return's total amount against the original order.
// The return must already be approved; the state machine is not consulted here.
func (p *Processor) Execute(ctx context.Context, req *entity.ReturnRequest, order *entity.Order) (*Result, error) {
	if req.Status != entity.ReturnStatusApproved {
		return nil, fmt.Errorf("return %s is not approved", req.ID)
	}

	amount := returns.TotalRefundAmount(req)
	if amount <= 0 {
		return nil, fmt.Errorf("return %s has no refundable amount", req.ID)
	}

	refundKey, err := p.gateway.Refund(order.OrderNumber, amount, req.Reason)
	if err != nil {
		p.logger.Error("REFUND", "Refund gateway call failed", map[string]interface{}{
			"returnId": req.ID.String(),
			"orderRef": order.OrderNumber,
			"amount":   amount,
			"error":    err.Error(),
		})
		return nil, err
	}

	now := time.Now()
	p.logger.Info("REFUND", "Refund issued", map[string]interface{}{
		"returnId":  req.ID.String(),
		"orderRef":  order.OrderNumber,
		"amount":    amount,
		"refundKey": refundKey,
	})

	return &Result{
		ReturnId:    req.ID,
		RefundKey:   refundKey,
		Amount:      amount,
		ProcessedAt: now,
	}, nil
}
