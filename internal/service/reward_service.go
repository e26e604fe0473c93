package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shopsphere-admin-be/internal/dto"
	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/pkg/logger"
	"shopsphere-admin-be/internal/pkg/serverutils"
	"shopsphere-admin-be/internal/repository/specification"
	"shopsphere-admin-be/internal/repository/unitofwork"
	adminEvents "shopsphere-admin-be/pkg/admin/events"
	"shopsphere-admin-be/pkg/rewards"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	activeConfigCacheKey = "rewards:active_config"
	activeConfigCacheTTL = 5 * time.Minute
)

type IRewardService interface {
	GetActiveConfig(ctx context.Context) (*dto.RewardConfigResponse, error)
	SaveConfig(ctx context.Context, req *dto.SaveRewardConfigRequest) (*dto.RewardConfigResponse, error)
	PreviewPoints(ctx context.Context, req *dto.PointsPreviewRequest) (*dto.PointsPreviewResponse, error)
	RedeemPoints(ctx context.Context, req *dto.RedeemPointsRequest) (*dto.RedeemPointsResponse, error)
	GetBalance(ctx context.Context, customerID uuid.UUID) (*dto.PointsBalanceResponse, error)
	AccruePurchasePoints(ctx context.Context, orderID uuid.UUID) error
}

type rewardService struct {
	uowFactory     unitofwork.RepositoryFactory
	rdb            *redis.Client
	logger         logger.ILogger
	eventPublisher adminEvents.Publisher
}

func NewRewardService(
	uowFactory unitofwork.RepositoryFactory,
	rdb *redis.Client,
	logger logger.ILogger,
	eventPublisher adminEvents.Publisher,
) IRewardService {
	return &rewardService{
		uowFactory:     uowFactory,
		rdb:            rdb,
		logger:         logger,
		eventPublisher: eventPublisher,
	}
}

func toRewardConfigResponse(cfg *entity.RewardSystemConfig) dto.RewardConfigResponse {
	res := dto.RewardConfigResponse{
		ID:                       cfg.ID,
		PointValue:               cfg.PointValue,
		IsSystemEnabled:          cfg.IsSystemEnabled,
		IsReviewPointsEnabled:    cfg.IsReviewPointsEnabled,
		ReviewPointsAmount:       cfg.ReviewPointsAmount,
		IsSignupPointsEnabled:    cfg.IsSignupPointsEnabled,
		SignupPointsAmount:       cfg.SignupPointsAmount,
		IsPurchasePointsEnabled:  cfg.IsPurchasePointsEnabled,
		IsQuantityBasedEnabled:   cfg.IsQuantityBasedEnabled,
		IsAmountBasedEnabled:     cfg.IsAmountBasedEnabled,
		IsPercentageBasedEnabled: cfg.IsPercentageBasedEnabled,
		PercentageRate:           cfg.PercentageRate,
		IsActive:                 cfg.IsActive,
		RewardRanges:             make([]dto.RewardRangeResponse, 0, len(cfg.RewardRanges)),
		UpdatedAt:                cfg.UpdatedAt,
	}
	for _, r := range cfg.RewardRanges {
		res.RewardRanges = append(res.RewardRanges, dto.RewardRangeResponse{
			ID:          r.ID,
			RangeType:   string(r.RangeType),
			MinValue:    r.MinValue,
			MaxValue:    r.MaxValue,
			Points:      r.Points,
			Description: r.Description,
		})
	}
	return res
}

// loadActiveConfig is the cache-aside read of the active reward config.
// Cache misses and Redis failures both fall through to the database.
func (s *rewardService) loadActiveConfig(ctx context.Context) (*entity.RewardSystemConfig, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, activeConfigCacheKey).Bytes()
		if err == nil {
			var cfg entity.RewardSystemConfig
			if err := json.Unmarshal(cached, &cfg); err == nil {
				return &cfg, nil
			}
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	cfg, err := uow.RewardRepository().FindActiveConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, nil
	}

	if s.rdb != nil {
		if data, err := json.Marshal(cfg); err == nil {
			if err := s.rdb.Set(ctx, activeConfigCacheKey, data, activeConfigCacheTTL).Err(); err != nil {
				s.logger.Warn("REWARDS", "Failed to cache active config", map[string]interface{}{"error": err.Error()})
			}
		}
	}
	return cfg, nil
}

func (s *rewardService) invalidateConfigCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, activeConfigCacheKey).Err(); err != nil {
		s.logger.Warn("REWARDS", "Failed to invalidate config cache", map[string]interface{}{"error": err.Error()})
	}
}

func (s *rewardService) GetActiveConfig(ctx context.Context) (*dto.RewardConfigResponse, error) {
	cfg, err := s.loadActiveConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, serverutils.ErrNotFound
	}

	res := toRewardConfigResponse(cfg)
	return &res, nil
}

func (s *rewardService) SaveConfig(ctx context.Context, req *dto.SaveRewardConfigRequest) (*dto.RewardConfigResponse, error) {
	cfg := &entity.RewardSystemConfig{
		ID:                       uuid.New(),
		PointValue:               req.PointValue,
		IsSystemEnabled:          req.IsSystemEnabled,
		IsReviewPointsEnabled:    req.IsReviewPointsEnabled,
		ReviewPointsAmount:       req.ReviewPointsAmount,
		IsSignupPointsEnabled:    req.IsSignupPointsEnabled,
		SignupPointsAmount:       req.SignupPointsAmount,
		IsPurchasePointsEnabled:  req.IsPurchasePointsEnabled,
		IsQuantityBasedEnabled:   req.IsQuantityBasedEnabled,
		IsAmountBasedEnabled:     req.IsAmountBasedEnabled,
		IsPercentageBasedEnabled: req.IsPercentageBasedEnabled,
		PercentageRate:           req.PercentageRate,
		IsActive:                 false,
		CreatedAt:                time.Now(),
		UpdatedAt:                time.Now(),
	}
	for _, r := range req.RewardRanges {
		cfg.RewardRanges = append(cfg.RewardRanges, entity.RewardRange{
			ID:          uuid.New(),
			ConfigID:    cfg.ID,
			RangeType:   entity.RangeType(r.RangeType),
			MinValue:    r.MinValue,
			MaxValue:    r.MaxValue,
			Points:      r.Points,
			Description: r.Description,
		})
	}

	if err := rewards.Validate(cfg); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.RewardRepository().SaveConfig(ctx, cfg); err != nil {
		return nil, err
	}

	if req.Activate {
		if err := uow.RewardRepository().Activate(ctx, cfg.ID); err != nil {
			return nil, err
		}
		cfg.IsActive = true
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.invalidateConfigCache(ctx)

	if cfg.IsActive {
		s.eventPublisher.PublishRewardConfigActivated(ctx, cfg.ID)
	}

	s.logger.Info("REWARDS", "Reward config saved", map[string]interface{}{
		"configId": cfg.ID.String(),
		"active":   cfg.IsActive,
		"ranges":   len(cfg.RewardRanges),
	})

	res := toRewardConfigResponse(cfg)
	return &res, nil
}

func (s *rewardService) PreviewPoints(ctx context.Context, req *dto.PointsPreviewRequest) (*dto.PointsPreviewResponse, error) {
	cfg, err := s.loadActiveConfig(ctx)
	if err != nil {
		return nil, err
	}

	points := rewards.CalculatePurchasePoints(cfg, req.ItemQuantity, req.OrderAmount)

	return &dto.PointsPreviewResponse{
		Points:        points,
		CurrencyValue: rewards.PointsToCurrency(cfg, points),
	}, nil
}

func (s *rewardService) RedeemPoints(ctx context.Context, req *dto.RedeemPointsRequest) (*dto.RedeemPointsResponse, error) {
	cfg, err := s.loadActiveConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil || !cfg.IsSystemEnabled {
		return nil, fmt.Errorf("%w: reward system is disabled", serverutils.ErrConflict)
	}

	pointsNeeded := rewards.CurrencyToPoints(cfg, req.Amount)
	if pointsNeeded <= 0 {
		return nil, fmt.Errorf("%w: amount too small to redeem", serverutils.ErrConflict)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	balance, err := uow.PointsLedgerRepository().BalanceByCustomer(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if balance < pointsNeeded {
		return nil, fmt.Errorf("%w: insufficient points balance", serverutils.ErrConflict)
	}

	entry := &entity.PointsLedgerEntry{
		ID:          uuid.New(),
		CustomerID:  req.CustomerID,
		Type:        entity.PointsRedeem,
		Points:      -pointsNeeded,
		Description: fmt.Sprintf("Redeemed %d points for %.2f", pointsNeeded, req.Amount),
		CreatedAt:   time.Now(),
	}
	if err := uow.PointsLedgerRepository().Create(ctx, entry); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.RedeemPointsResponse{
		PointsDebited: pointsNeeded,
		Amount:        req.Amount,
		NewBalance:    balance - pointsNeeded,
	}, nil
}

func (s *rewardService) GetBalance(ctx context.Context, customerID uuid.UUID) (*dto.PointsBalanceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	balance, err := uow.PointsLedgerRepository().BalanceByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	entries, err := uow.PointsLedgerRepository().FindAllByCustomer(ctx, customerID,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 100},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.PointsBalanceResponse{
		CustomerID: customerID,
		Balance:    balance,
		Entries:    make([]dto.PointsLedgerEntryResponse, 0, len(entries)),
	}
	for _, entry := range entries {
		res.Entries = append(res.Entries, dto.PointsLedgerEntryResponse{
			ID:          entry.ID,
			CustomerID:  entry.CustomerID,
			OrderID:     entry.OrderID,
			Type:        string(entry.Type),
			Points:      entry.Points,
			Description: entry.Description,
			CreatedAt:   entry.CreatedAt,
		})
	}
	return res, nil
}

// AccruePurchasePoints credits purchase points for a delivered order.
// Called from the delivery consumer; a ledger lookup keeps it idempotent.
func (s *rewardService) AccruePurchasePoints(ctx context.Context, orderID uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOneWithItems(ctx, specification.ByID{ID: orderID})
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("order %s not found", orderID)
	}
	if order.Status != entity.OrderStatusDelivered {
		return fmt.Errorf("order %s is not delivered", orderID)
	}
	if order.CustomerID == nil {
		// Guest orders earn no points
		return nil
	}

	exists, err := uow.PointsLedgerRepository().ExistsForOrder(ctx, orderID, entity.PointsEarnPurchase)
	if err != nil {
		return err
	}
	if exists {
		s.logger.Warn("REWARDS", "Points already accrued for order", map[string]interface{}{
			"orderId": orderID.String(),
		})
		return nil
	}

	cfg, err := s.loadActiveConfig(ctx)
	if err != nil {
		return err
	}

	points := rewards.CalculatePurchasePoints(cfg, order.ItemQuantity(), order.TotalAmount)
	if points <= 0 {
		return nil
	}

	entry := &entity.PointsLedgerEntry{
		ID:          uuid.New(),
		CustomerID:  *order.CustomerID,
		OrderID:     &orderID,
		Type:        entity.PointsEarnPurchase,
		Points:      points,
		Description: fmt.Sprintf("Purchase points for order %s", order.OrderNumber),
		CreatedAt:   time.Now(),
	}
	if err := uow.PointsLedgerRepository().Create(ctx, entry); err != nil {
		return err
	}

	s.eventPublisher.PublishPointsAccrued(ctx, *order.CustomerID, orderID, points, string(entity.PointsEarnPurchase))

	s.logger.Info("REWARDS", "Purchase points accrued", map[string]interface{}{
		"orderId":    orderID.String(),
		"customerId": order.CustomerID.String(),
		"points":     points,
	})
	return nil
}
