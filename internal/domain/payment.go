package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod enumerates supported settlement channels.
type PaymentMethod string

const (
	PaymentMethodCardToCard PaymentMethod = "CARD_TO_CARD"
	PaymentMethodSatna      PaymentMethod = "SATNA"
	PaymentMethodPaya       PaymentMethod = "PAYA"
	PaymentMethodOnline     PaymentMethod = "ONLINE"
	PaymentMethodOther      PaymentMethod = "OTHER"
)

// PaymentStatus represents the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentStatusCreated           PaymentStatus = "CREATED"
	PaymentStatusPending           PaymentStatus = "PENDING"
	PaymentStatusCompleted         PaymentStatus = "COMPLETED"
	PaymentStatusFailed            PaymentStatus = "FAILED"
	PaymentStatusCanceled          PaymentStatus = "CANCELED"
	PaymentStatusRefunded          PaymentStatus = "REFUNDED"
	PaymentStatusPartiallyRefunded PaymentStatus = "PARTIALLY_REFUNDED"
	PaymentStatusExpired           PaymentStatus = "EXPIRED"
)

// Payment records money received against an invoice.
type Payment struct {
	ID              uuid.UUID
	PaymentDatetime string
	PaymentMethod   PaymentMethod
	TransactionID   *string
	Amount          int64
	PaymentStatus   PaymentStatus
	InvoiceID       uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
