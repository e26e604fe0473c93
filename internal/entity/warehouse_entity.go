package entity

import (
	"time"

	"github.com/google/uuid"
)

type Warehouse struct {
	ID        uuid.UUID
	Name      string
	Code      string
	Address   string
	City      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StockLevel is the on-hand quantity of a product in one warehouse.
type StockLevel struct {
	ID          uuid.UUID
	WarehouseID uuid.UUID
	ProductID   uuid.UUID
	Quantity    int
	ReorderAt   int
	UpdatedAt   time.Time

	Warehouse *Warehouse
	Product   *Product
}
