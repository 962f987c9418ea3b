package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/rental-crm/internal/api/dto"
	"github.com/spec-kit/rental-crm/internal/auth"
	"github.com/spec-kit/rental-crm/internal/domain"
	"github.com/spec-kit/rental-crm/internal/events"
	"github.com/spec-kit/rental-crm/internal/repository"
	apperrors "github.com/spec-kit/rental-crm/pkg/util"
)

// PaymentsHandler exposes payment CRUD. All routes are gated to admins in
// the router.
type PaymentsHandler struct {
	payments   repository.PaymentRepository
	dispatcher events.Dispatcher
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(payments repository.PaymentRepository, dispatcher events.Dispatcher) *PaymentsHandler {
	return &PaymentsHandler{payments: payments, dispatcher: dispatcher}
}

// Create handles POST /payments/.
func (h *PaymentsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	invoiceID, err := uuid.Parse(req.InvoiceID)
	if err != nil {
		return apperrors.NewValidationError("invalid invoice_id", map[string]any{"invoice_id": req.InvoiceID})
	}

	status := domain.PaymentStatus(req.PaymentStatus)
	if status == "" {
		status = domain.PaymentStatusCreated
	}
	payment := &domain.Payment{
		PaymentDatetime: req.PaymentDatetime,
		PaymentMethod:   domain.PaymentMethod(req.PaymentMethod),
		TransactionID:   req.TransactionID,
		Amount:          req.Amount,
		PaymentStatus:   status,
		InvoiceID:       invoiceID,
	}
	if err := h.payments.Create(c.UserContext(), payment); err != nil {
		return err
	}

	if h.dispatcher != nil {
		actor := events.Actor{}
		if principal, ok := auth.PrincipalFromContext(c); ok {
			actor = events.Actor{Role: principal.Role, SubjectID: principal.SubjectID}
		}
		_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(events.EventPaymentRecorded, actor, events.PaymentRecordedPayload{
			PaymentID: payment.ID.String(),
			InvoiceID: payment.InvoiceID.String(),
			Amount:    float64(payment.Amount),
		}))
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPaymentResponse(payment))
}

// List handles GET /payments/.
func (h *PaymentsHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	payments, err := h.payments.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPaymentResponses(payments))
}

// Get handles GET /payments/:id.
func (h *PaymentsHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	payment, err := h.payments.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPaymentResponse(payment))
}

// Update handles PATCH /payments/:id.
func (h *PaymentsHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	payment, err := h.payments.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if req.PaymentDatetime != nil {
		payment.PaymentDatetime = *req.PaymentDatetime
	}
	if req.PaymentMethod != nil {
		payment.PaymentMethod = domain.PaymentMethod(*req.PaymentMethod)
	}
	if req.TransactionID != nil {
		payment.TransactionID = req.TransactionID
	}
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.PaymentStatus != nil {
		payment.PaymentStatus = domain.PaymentStatus(*req.PaymentStatus)
	}
	if req.InvoiceID != nil {
		invoiceID, err := uuid.Parse(*req.InvoiceID)
		if err != nil {
			return apperrors.NewValidationError("invalid invoice_id", map[string]any{"invoice_id": *req.InvoiceID})
		}
		payment.InvoiceID = invoiceID
	}

	if err := h.payments.Update(c.UserContext(), payment); err != nil {
		return err
	}
	return c.JSON(dto.NewPaymentResponse(payment))
}

// Delete handles DELETE /payments/:id.
func (h *PaymentsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.payments.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Search handles GET /payments/search/.
func (h *PaymentsHandler) Search(c *fiber.Ctx) error {
	var req dto.PaymentSearchRequest
	if err := c.QueryParser(&req); err != nil {
		return apperrors.NewValidationError("invalid query parameters", nil)
	}
	comb, err := repository.ParseCombinator(req.Operator)
	if err != nil {
		return err
	}

	var preds []repository.Predicate
	for _, p := range []struct {
		col string
		val *string
	}{
		{"payment_method", req.PaymentMethod},
		{"payment_status", req.PaymentStatus},
		{"transaction_id", req.TransactionID},
		{"invoice_id", req.InvoiceID},
	} {
		if p.val != nil {
			preds = append(preds, repository.Eq(p.col, *p.val))
		}
	}
	if req.MinAmount != nil {
		preds = append(preds, repository.Gte("amount", *req.MinAmount))
	}

	limit, offset := pageParams(c)
	payments, err := h.payments.Search(c.UserContext(), comb, preds, limit, offset)
	if err != nil {
		return err
	}
	if len(payments) == 0 {
		return apperrors.NewNotFound("payment")
	}
	return c.JSON(dto.NewPaymentResponses(payments))
}
