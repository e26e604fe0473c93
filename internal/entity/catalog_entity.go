package entity

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Product struct {
	ID          uuid.UUID
	CategoryID  uuid.UUID
	SKU         string
	Name        string
	Description string
	Price       float64
	ImageURLs   []string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *Category
}
