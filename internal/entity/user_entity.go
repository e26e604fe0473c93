package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleReviewer  UserRole = "reviewer"
	UserRoleFulfiller UserRole = "fulfiller"

	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

// User is a back-office operator account. Storefront customers are not
// managed here; they only appear as CustomerID references on orders.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash *string
	FullName     string
	Role         UserRole
	Status       UserStatus
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
