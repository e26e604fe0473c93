package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Discount struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code           string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Description    string    `gorm:"type:text"`
	Type           string    `gorm:"type:varchar(20);not null"` // percent, fixed
	Value          float64   `gorm:"type:decimal(10,2);not null"`
	MinOrderAmount float64   `gorm:"type:decimal(10,2);default:0"`
	UsageLimit     int       `gorm:"default:0"` // 0 = unlimited
	UsageCount     int       `gorm:"default:0"`
	StartsAt       time.Time `gorm:"not null"`
	EndsAt         *time.Time
	IsActive       bool `gorm:"default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Discount) TableName() string {
	return "discounts"
}
