package domain

import (
	"time"

	"github.com/google/uuid"
)

// CarStatus represents the availability state of a vehicle.
type CarStatus string

const (
	CarStatusNew         CarStatus = "NEW"
	CarStatusAvailable   CarStatus = "AVAILABLE"
	CarStatusRented      CarStatus = "RENTED"
	CarStatusMaintenance CarStatus = "MAINTENANCE"
	CarStatusDamaged     CarStatus = "DAMAGED"
	CarStatusUnknown     CarStatus = "UNKNOWN"
)

// Vehicle is a rentable car in the fleet.
type Vehicle struct {
	ID                uuid.UUID
	PlateNumber       string
	Location          string
	LocalImageAddress string
	Brand             string
	Model             string
	Year              int
	Color             string
	Mileage           int
	Status            CarStatus
	HourlyRentalRate  int64
	SecurityDeposit   int64
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}
