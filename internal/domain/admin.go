package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdminRole distinguishes the two administrator privilege levels.
type AdminRole string

const (
	AdminRoleSuper   AdminRole = "SuperAdmin"
	AdminRoleGeneral AdminRole = "Admin"
)

// AdminStatus represents lifecycle states for an administrator account.
type AdminStatus string

const (
	AdminStatusActive   AdminStatus = "ACTIVE"
	AdminStatusInactive AdminStatus = "INACTIVE"
)

// Admin is an administrator principal.
type Admin struct {
	ID           uuid.UUID
	NamePrefix   *string
	FirstName    string
	MiddleName   *string
	LastName     string
	NameSuffix   *string
	Gender       Gender
	Birthday     string
	Username     string
	Email        *string
	Role         AdminRole
	Status       AdminStatus
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
