package dashboard

import (
	"context"

	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/pkg/logger"
	"shopsphere-admin-be/internal/repository/specification"
	"shopsphere-admin-be/internal/repository/unitofwork"
)

// Summary is the headline view of the operations dashboard.
type Summary struct {
	OrdersByStatus map[string]int64
	PendingReturns int64
	TotalProducts  int64
	LowStockItems  int
}

// Aggregator assembles dashboard counts across the domain repositories.
type Aggregator struct {
	logger logger.ILogger
}

func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{logger: logger}
}

func (a *Aggregator) Summarize(ctx context.Context, uow unitofwork.UnitOfWork) (*Summary, error) {
	summary := &Summary{
		OrdersByStatus: make(map[string]int64),
	}

	statuses := []entity.OrderStatus{
		entity.OrderStatusPending,
		entity.OrderStatusProcessing,
		entity.OrderStatusShipped,
		entity.OrderStatusDelivered,
		entity.OrderStatusCancelled,
	}
	for _, status := range statuses {
		count, err := uow.OrderRepository().Count(ctx, specification.ByStatus{Status: string(status)})
		if err != nil {
			return nil, err
		}
		summary.OrdersByStatus[string(status)] = count
	}

	pendingReturns, err := uow.ReturnRepository().Count(ctx, specification.ByStatus{Status: string(entity.ReturnStatusPending)})
	if err != nil {
		return nil, err
	}
	summary.PendingReturns = pendingReturns

	totalProducts, err := uow.ProductRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	summary.TotalProducts = totalProducts

	lowStock, err := uow.StockRepository().FindBelowReorder(ctx)
	if err != nil {
		return nil, err
	}
	summary.LowStockItems = len(lowStock)

	a.logger.Debug("DASHBOARD", "Summary assembled", map[string]interface{}{
		"pendingReturns": summary.PendingReturns,
		"lowStockItems":  summary.LowStockItems,
	})

	return summary, nil
}
