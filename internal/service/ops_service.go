package service

import (
	"context"
	"errors"

	"shopsphere-admin-be/internal/dto"
	"shopsphere-admin-be/internal/pkg/logger"
	"shopsphere-admin-be/internal/pkg/serverutils"
	"shopsphere-admin-be/internal/repository/unitofwork"
	"shopsphere-admin-be/pkg/admin/dashboard"
)

type IOpsService interface {
	GetDashboard(ctx context.Context) (*dto.DashboardSummaryResponse, error)
	GetLogs(ctx context.Context, level string, limit, offset int) ([]*dto.LogEntryResponse, error)
	GetLog(ctx context.Context, id string) (*dto.LogEntryResponse, error)
}

type opsService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	aggregator *dashboard.Aggregator
}

func NewOpsService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
	aggregator *dashboard.Aggregator,
) IOpsService {
	return &opsService{
		uowFactory: uowFactory,
		logger:     logger,
		aggregator: aggregator,
	}
}

func (s *opsService) GetDashboard(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	summary, err := s.aggregator.Summarize(ctx, uow)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardSummaryResponse{
		OrdersByStatus: summary.OrdersByStatus,
		PendingReturns: summary.PendingReturns,
		TotalProducts:  summary.TotalProducts,
		LowStockItems:  summary.LowStockItems,
	}, nil
}

func toLogResponse(entry logger.LogEntry) *dto.LogEntryResponse {
	return &dto.LogEntryResponse{
		Id:        entry.Id,
		Timestamp: entry.Timestamp,
		Level:     entry.Level,
		Message:   entry.Message,
		Module:    entry.Module,
		Details:   entry.Details,
	}
}

func (s *opsService) GetLogs(ctx context.Context, level string, limit, offset int) ([]*dto.LogEntryResponse, error) {
	if limit < 1 {
		limit = 50
	}

	entries, err := s.logger.GetLogs(level, limit, offset)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.LogEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, toLogResponse(entry))
	}
	return result, nil
}

func (s *opsService) GetLog(ctx context.Context, id string) (*dto.LogEntryResponse, error) {
	entry, err := s.logger.GetLogById(id)
	if err != nil {
		if errors.Is(err, logger.ErrLogNotFound) {
			return nil, serverutils.ErrNotFound
		}
		return nil, err
	}
	return toLogResponse(*entry), nil
}
