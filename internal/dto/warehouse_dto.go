package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateWarehouseRequest struct {
	Name    string `json:"name" validate:"required"`
	Code    string `json:"code" validate:"required,min=2,max=32"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type UpdateWarehouseRequest struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	IsActive *bool   `json:"is_active"`
}

type WarehouseResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type AdjustStockRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Delta     int       `json:"delta" validate:"required"`
	ReorderAt *int      `json:"reorder_at" validate:"omitempty,gte=0"`
}

type TransferStockRequest struct {
	ProductID       uuid.UUID `json:"product_id" validate:"required"`
	FromWarehouseID uuid.UUID `json:"from_warehouse_id" validate:"required"`
	ToWarehouseID   uuid.UUID `json:"to_warehouse_id" validate:"required"`
	Quantity        int       `json:"quantity" validate:"required,gt=0"`
}

type StockLevelResponse struct {
	ID            uuid.UUID `json:"id"`
	WarehouseID   uuid.UUID `json:"warehouse_id"`
	WarehouseName string    `json:"warehouse_name,omitempty"`
	ProductID     uuid.UUID `json:"product_id"`
	ProductName   string    `json:"product_name,omitempty"`
	SKU           string    `json:"sku,omitempty"`
	Quantity      int       `json:"quantity"`
	ReorderAt     int       `json:"reorder_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
