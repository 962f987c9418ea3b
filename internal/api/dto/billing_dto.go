package dto

import (
	"time"

	"github.com/spec-kit/rental-crm/internal/domain"
)

// CreateInvoiceRequest payload.
type CreateInvoiceRequest struct {
	TotalAmount int64  `json:"total_amount"`
	Tax         int64  `json:"tax"`
	Discount    int64  `json:"discount"`
	FinalAmount int64  `json:"final_amount"`
	Status      string `json:"status"`
}

// UpdateInvoiceRequest payload; absent fields are left unchanged.
type UpdateInvoiceRequest struct {
	TotalAmount *int64  `json:"total_amount"`
	Tax         *int64  `json:"tax"`
	Discount    *int64  `json:"discount"`
	FinalAmount *int64  `json:"final_amount"`
	Status      *string `json:"status"`
}

// InvoiceResponse response.
type InvoiceResponse struct {
	ID          string     `json:"id"`
	TotalAmount int64      `json:"total_amount"`
	Tax         int64      `json:"tax"`
	Discount    int64      `json:"discount"`
	FinalAmount int64      `json:"final_amount"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// NewInvoiceResponse maps the domain entity.
func NewInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          inv.ID.String(),
		TotalAmount: inv.TotalAmount,
		Tax:         inv.Tax,
		Discount:    inv.Discount,
		FinalAmount: inv.FinalAmount,
		Status:      string(inv.Status),
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

// NewInvoiceResponses maps a slice of domain entities.
func NewInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = NewInvoiceResponse(&invoices[i])
	}
	return out
}

// CreateRentalRequest payload.
type CreateRentalRequest struct {
	RentalStartDate string `json:"rental_start_date"`
	RentalEndDate   string `json:"rental_end_date"`
	TotalAmount     int64  `json:"total_amount"`
	CustomerID      string `json:"customer_id"`
	VehicleID       string `json:"vehicle_id"`
	InvoiceID       string `json:"invoice_id"`
}

// UpdateRentalRequest payload; absent fields are left unchanged.
type UpdateRentalRequest struct {
	RentalStartDate *string `json:"rental_start_date"`
	RentalEndDate   *string `json:"rental_end_date"`
	TotalAmount     *int64  `json:"total_amount"`
	VehicleID       *string `json:"vehicle_id"`
	InvoiceID       *string `json:"invoice_id"`
}

// RentalResponse response.
type RentalResponse struct {
	ID              string     `json:"id"`
	RentalStartDate string     `json:"rental_start_date"`
	RentalEndDate   string     `json:"rental_end_date"`
	TotalAmount     int64      `json:"total_amount"`
	CustomerID      string     `json:"customer_id"`
	VehicleID       string     `json:"vehicle_id"`
	InvoiceID       string     `json:"invoice_id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}

// NewRentalResponse maps the domain entity.
func NewRentalResponse(r *domain.Rental) RentalResponse {
	return RentalResponse{
		ID:              r.ID.String(),
		RentalStartDate: r.RentalStartDate,
		RentalEndDate:   r.RentalEndDate,
		TotalAmount:     r.TotalAmount,
		CustomerID:      r.CustomerID.String(),
		VehicleID:       r.VehicleID.String(),
		InvoiceID:       r.InvoiceID.String(),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// NewRentalResponses maps a slice of domain entities.
func NewRentalResponses(rentals []domain.Rental) []RentalResponse {
	out := make([]RentalResponse, len(rentals))
	for i := range rentals {
		out[i] = NewRentalResponse(&rentals[i])
	}
	return out
}

// CreatePaymentRequest payload.
type CreatePaymentRequest struct {
	PaymentDatetime string  `json:"payment_datetime"`
	PaymentMethod   string  `json:"payment_method"`
	TransactionID   *string `json:"transaction_id"`
	Amount          int64   `json:"amount"`
	PaymentStatus   string  `json:"payment_status"`
	InvoiceID       string  `json:"invoice_id"`
}

// UpdatePaymentRequest payload; absent fields are left unchanged.
type UpdatePaymentRequest struct {
	PaymentDatetime *string `json:"payment_datetime"`
	PaymentMethod   *string `json:"payment_method"`
	TransactionID   *string `json:"transaction_id"`
	Amount          *int64  `json:"amount"`
	PaymentStatus   *string `json:"payment_status"`
	InvoiceID       *string `json:"invoice_id"`
}

// PaymentResponse response.
type PaymentResponse struct {
	ID              string     `json:"id"`
	PaymentDatetime string     `json:"payment_datetime"`
	PaymentMethod   string     `json:"payment_method"`
	TransactionID   *string    `json:"transaction_id"`
	Amount          int64      `json:"amount"`
	PaymentStatus   string     `json:"payment_status"`
	InvoiceID       string     `json:"invoice_id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}

// NewPaymentResponse maps the domain entity.
func NewPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID.String(),
		PaymentDatetime: p.PaymentDatetime,
		PaymentMethod:   string(p.PaymentMethod),
		TransactionID:   p.TransactionID,
		Amount:          p.Amount,
		PaymentStatus:   string(p.PaymentStatus),
		InvoiceID:       p.InvoiceID.String(),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// NewPaymentResponses maps a slice of domain entities.
func NewPaymentResponses(payments []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(payments))
	for i := range payments {
		out[i] = NewPaymentResponse(&payments[i])
	}
	return out
}
