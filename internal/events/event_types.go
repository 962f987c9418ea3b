package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/rental-crm/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLoginSucceeded   EventType = "login_succeeded"
	EventTokenRefreshed   EventType = "token_refreshed"
	EventLogout           EventType = "logout"
	EventRentalCreated    EventType = "rental_created"
	EventPaymentRecorded  EventType = "payment_recorded"
	EventBackupCreated    EventType = "backup_created"
	EventRestoreCompleted EventType = "restore_completed"
)

// Actor identifies who triggered an event.
type Actor struct {
	Role      domain.Role `json:"role"`
	SubjectID string      `json:"subject_id"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Actor     Actor     `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// NewEvent stamps a fresh event with an id and the current time.
func NewEvent(eventType EventType, actor Actor, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// LoginPayload payload.
type LoginPayload struct {
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// RentalCreatedPayload payload.
type RentalCreatedPayload struct {
	RentalID   string `json:"rental_id"`
	CustomerID string `json:"customer_id"`
	VehicleID  string `json:"vehicle_id"`
}

// PaymentRecordedPayload payload.
type PaymentRecordedPayload struct {
	PaymentID string  `json:"payment_id"`
	InvoiceID string  `json:"invoice_id"`
	Amount    float64 `json:"amount"`
}

// BackupCreatedPayload payload.
type BackupCreatedPayload struct {
	Filename  string `json:"filename"`
	SizeBytes int    `json:"size_bytes"`
}

// RestoreCompletedPayload payload.
type RestoreCompletedPayload struct {
	BackupTimeUTC string `json:"backup_time_utc"`
}
