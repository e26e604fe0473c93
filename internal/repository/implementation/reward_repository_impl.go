package implementation

import (
	"context"

	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/model"
	"shopsphere-admin-be/internal/repository/contract"
	"shopsphere-admin-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type rewardRepositoryImpl struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) contract.RewardRepository {
	return &rewardRepositoryImpl{db: db}
}

func (r *rewardRepositoryImpl) FindActiveConfig(ctx context.Context) (*entity.RewardSystemConfig, error) {
	return r.FindOneConfig(ctx, specification.ActiveOnly{})
}

func (r *rewardRepositoryImpl) FindOneConfig(ctx context.Context, specs ...specification.Specification) (*entity.RewardSystemConfig, error) {
	var mc model.RewardSystemConfig
	query := r.db.WithContext(ctx).Preload("RewardRanges")

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.First(&mc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&mc), nil
}

func (r *rewardRepositoryImpl) FindAllConfigs(ctx context.Context, specs ...specification.Specification) ([]*entity.RewardSystemConfig, error) {
	var models []*model.RewardSystemConfig
	query := r.db.WithContext(ctx).Preload("RewardRanges")

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	var configs []*entity.RewardSystemConfig
	for _, mc := range models {
		configs = append(configs, r.toEntity(mc))
	}
	return configs, nil
}

// SaveConfig writes the config row and rewrites its full range set. Ranges
// have no identity apart from their config, so replace-all is the contract.
func (r *rewardRepositoryImpl) SaveConfig(ctx context.Context, cfg *entity.RewardSystemConfig) error {
	mc := r.toModel(cfg)

	db := r.db.WithContext(ctx)
	if err := db.Omit("RewardRanges").Save(mc).Error; err != nil {
		return err
	}

	if err := db.Where("config_id = ?", mc.ID).Delete(&model.RewardRange{}).Error; err != nil {
		return err
	}
	if len(mc.RewardRanges) > 0 {
		if err := db.Create(&mc.RewardRanges).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *rewardRepositoryImpl) Activate(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Model(&model.RewardSystemConfig{}).
		Where("id <> ?", id).
		Update("is_active", false).Error; err != nil {
		return err
	}
	return db.Model(&model.RewardSystemConfig{}).
		Where("id = ?", id).
		Update("is_active", true).Error
}

func (r *rewardRepositoryImpl) toModel(cfg *entity.RewardSystemConfig) *model.RewardSystemConfig {
	mc := &model.RewardSystemConfig{
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
	}
	for _, rr := range cfg.RewardRanges {
		id := rr.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		mc.RewardRanges = append(mc.RewardRanges, model.RewardRange{
			ID:          id,
			ConfigID:    cfg.ID,
			RangeType:   string(rr.RangeType),
			MinValue:    rr.MinValue,
			MaxValue:    rr.MaxValue,
			Points:      rr.Points,
			Description: rr.Description,
		})
	}
	return mc
}

func (r *rewardRepositoryImpl) toEntity(mc *model.RewardSystemConfig) *entity.RewardSystemConfig {
	cfg := &entity.RewardSystemConfig{
		ID:                       mc.ID,
		PointValue:               mc.PointValue,
		IsSystemEnabled:          mc.IsSystemEnabled,
		IsReviewPointsEnabled:    mc.IsReviewPointsEnabled,
		ReviewPointsAmount:       mc.ReviewPointsAmount,
		IsSignupPointsEnabled:    mc.IsSignupPointsEnabled,
		SignupPointsAmount:       mc.SignupPointsAmount,
		IsPurchasePointsEnabled:  mc.IsPurchasePointsEnabled,
		IsQuantityBasedEnabled:   mc.IsQuantityBasedEnabled,
		IsAmountBasedEnabled:     mc.IsAmountBasedEnabled,
		IsPercentageBasedEnabled: mc.IsPercentageBasedEnabled,
		PercentageRate:           mc.PercentageRate,
		IsActive:                 mc.IsActive,
		CreatedAt:                mc.CreatedAt,
		UpdatedAt:                mc.UpdatedAt,
	}
	for _, rr := range mc.RewardRanges {
		cfg.RewardRanges = append(cfg.RewardRanges, entity.RewardRange{
			ID:          rr.ID,
			ConfigID:    rr.ConfigID,
			RangeType:   entity.RangeType(rr.RangeType),
			MinValue:    rr.MinValue,
			MaxValue:    rr.MaxValue,
			Points:      rr.Points,
			Description: rr.Description,
		})
	}
	return cfg
}

type pointsLedgerRepositoryImpl struct {
	db *gorm.DB
}

func NewPointsLedgerRepository(db *gorm.DB) contract.PointsLedgerRepository {
	return &pointsLedgerRepositoryImpl{db: db}
}

func (r *pointsLedgerRepositoryImpl) Create(ctx context.Context, entry *entity.PointsLedgerEntry) error {
	return r.db.WithContext(ctx).Create(&model.PointsLedgerEntry{
		ID:          entry.ID,
		CustomerID:  entry.CustomerID,
		OrderID:     entry.OrderID,
		Type:        string(entry.Type),
		Points:      entry.Points,
		Description: entry.Description,
	}).Error
}

func (r *pointsLedgerRepositoryImpl) FindAllByCustomer(ctx context.Context, customerID uuid.UUID, specs ...specification.Specification) ([]*entity.PointsLedgerEntry, error) {
	var models []*model.PointsLedgerEntry
	query := r.db.WithContext(ctx).Where("customer_id = ?", customerID)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	var entries []*entity.PointsLedgerEntry
	for _, me := range models {
		entries = append(entries, &entity.PointsLedgerEntry{
			ID:          me.ID,
			CustomerID:  me.CustomerID,
			OrderID:     me.OrderID,
			Type:        entity.PointsTransactionType(me.Type),
			Points:      me.Points,
			Description: me.Description,
			CreatedAt:   me.CreatedAt,
		})
	}
	return entries, nil
}

func (r *pointsLedgerRepositoryImpl) BalanceByCustomer(ctx context.Context, customerID uuid.UUID) (int, error) {
	var balance *int
	err := r.db.WithContext(ctx).Model(&model.PointsLedgerEntry{}).
		Select("SUM(points)").
		Where("customer_id = ?", customerID).
		Scan(&balance).Error
	if err != nil {
		return 0, err
	}
	if balance == nil {
		return 0, nil
	}
	return *balance, nil
}

func (r *pointsLedgerRepositoryImpl) ExistsForOrder(ctx context.Context, orderID uuid.UUID, txType entity.PointsTransactionType) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PointsLedgerEntry{}).
		Where("order_id = ? AND type = ?", orderID, string(txType)).
		Count(&count).Error
	return count > 0, err
}
