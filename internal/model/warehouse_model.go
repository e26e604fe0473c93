package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Warehouse struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Code      string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	Address   string    `gorm:"type:text"`
	City      string    `gorm:"type:varchar(128)"`
	IsActive  bool      `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Warehouse) TableName() string {
	return "warehouses"
}

type StockLevel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WarehouseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_warehouse_product"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_warehouse_product"`
	Quantity    int       `gorm:"not null;default:0"`
	ReorderAt   int       `gorm:"not null;default:0"`
	UpdatedAt   time.Time

	// Relations
	Warehouse Warehouse `gorm:"foreignKey:WarehouseID"`
	Product   Product   `gorm:"foreignKey:ProductID"`
}

func (StockLevel) TableName() string {
	return "stock_levels"
}
