package domain

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus represents the settlement state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusCreated   InvoiceStatus = "CREATED"
	InvoiceStatusPending   InvoiceStatus = "PENDING"
	InvoiceStatusCompleted InvoiceStatus = "COMPLETED"
	InvoiceStatusFailed    InvoiceStatus = "FAILED"
	InvoiceStatusCanceled  InvoiceStatus = "CANCELED"
	InvoiceStatusExpired   InvoiceStatus = "EXPIRED"
)

// Invoice aggregates the billable amounts of one or more rentals.
type Invoice struct {
	ID          uuid.UUID
	TotalAmount int64
	Tax         int64
	Discount    int64
	FinalAmount int64
	Status      InvoiceStatus
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
