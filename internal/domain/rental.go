package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rental links a customer to a vehicle and an invoice for a rental period.
// Date fields are kept as opaque strings, matching the stored format.
type Rental struct {
	ID              uuid.UUID
	RentalStartDate string
	RentalEndDate   string
	TotalAmount     int64
	CustomerID      uuid.UUID
	VehicleID       uuid.UUID
	InvoiceID       uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
