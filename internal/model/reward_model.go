package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RewardSystemConfig struct {
	ID                       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PointValue               float64   `gorm:"type:decimal(10,4);not null"`
	IsSystemEnabled          bool      `gorm:"default:false"`
	IsReviewPointsEnabled    bool      `gorm:"default:false"`
	ReviewPointsAmount       int       `gorm:"default:0"`
	IsSignupPointsEnabled    bool      `gorm:"default:false"`
	SignupPointsAmount       int       `gorm:"default:0"`
	IsPurchasePointsEnabled  bool      `gorm:"default:false"`
	IsQuantityBasedEnabled   bool      `gorm:"default:false"`
	IsAmountBasedEnabled     bool      `gorm:"default:false"`
	IsPercentageBasedEnabled bool      `gorm:"default:false"`
	PercentageRate           float64   `gorm:"type:decimal(5,2);default:0"`
	IsActive                 bool      `gorm:"default:false;index"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
	DeletedAt                gorm.DeletedAt `gorm:"index"`

	// Relations. Ranges have no identity outside their config; the full set
	// is rewritten on every config save.
	RewardRanges []RewardRange `gorm:"foreignKey:ConfigID;constraint:OnDelete:CASCADE"`
}

func (RewardSystemConfig) TableName() string {
	return "reward_system_configs"
}

type RewardRange struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConfigID    uuid.UUID `gorm:"type:uuid;not null;index"`
	RangeType   string    `gorm:"type:varchar(20);not null"`
	MinValue    float64   `gorm:"type:decimal(10,2);not null"`
	MaxValue    *float64  `gorm:"type:decimal(10,2)"` // NULL = unbounded
	Points      int       `gorm:"not null"`
	Description string    `gorm:"type:text"`
}

func (RewardRange) TableName() string {
	return "reward_ranges"
}

type PointsLedgerEntry struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID     *uuid.UUID `gorm:"type:uuid;index"`
	Type        string     `gorm:"type:points_transaction_type;not null"`
	Points      int        `gorm:"not null"` // signed: earn positive, redeem negative
	Description string     `gorm:"type:text"`
	CreatedAt   time.Time
}

func (PointsLedgerEntry) TableName() string {
	return "points_ledger_entries"
}
