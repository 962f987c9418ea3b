package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rental-crm/internal/api/dto"
	"github.com/spec-kit/rental-crm/internal/domain"
	"github.com/spec-kit/rental-crm/internal/repository"
	apperrors "github.com/spec-kit/rental-crm/pkg/util"
)

// InvoicesHandler exposes invoice CRUD. Admins see everything; a customer
// sees only invoices reachable through its own rentals.
type InvoicesHandler struct {
	invoices repository.InvoiceRepository
}

// NewInvoicesHandler constructs handler.
func NewInvoicesHandler(invoices repository.InvoiceRepository) *InvoicesHandler {
	return &InvoicesHandler{invoices: invoices}
}

// Create handles POST /invoices/ (admins only, enforced in the router).
func (h *InvoicesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	status := domain.InvoiceStatus(req.Status)
	if status == "" {
		status = domain.InvoiceStatusCreated
	}
	invoice := &domain.Invoice{
		TotalAmount: req.TotalAmount,
		Tax:         req.Tax,
		Discount:    req.Discount,
		FinalAmount: req.FinalAmount,
		Status:      status,
	}
	if err := h.invoices.Create(c.UserContext(), invoice); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewInvoiceResponse(invoice))
}

// List handles GET /invoices/. Customers get the invoices of their own
// rentals; admins the full set.
func (h *InvoicesHandler) List(c *fiber.Ctx) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	limit, offset := pageParams(c)

	if principal.Role == domain.RoleCustomer {
		customerID, err := principal.SubjectUUID()
		if err != nil {
			return apperrors.NewUnauthorized("invalid subject")
		}
		invoices, err := h.invoices.ListForCustomer(c.UserContext(), customerID, limit, offset)
		if err != nil {
			return err
		}
		return c.JSON(dto.NewInvoiceResponses(invoices))
	}

	invoices, err := h.invoices.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewInvoiceResponses(invoices))
}

// Get handles GET /invoices/:id.
func (h *InvoicesHandler) Get(c *fiber.Ctx) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if principal.Role == domain.RoleCustomer {
		customerID, err := principal.SubjectUUID()
		if err != nil {
			return apperrors.NewUnauthorized("invalid subject")
		}
		owned, err := h.invoices.OwnedByCustomer(c.UserContext(), id, customerID)
		if err != nil {
			return err
		}
		if !owned {
			return apperrors.NewForbidden("you may only access your own records")
		}
	}

	invoice, err := h.invoices.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewInvoiceResponse(invoice))
}

// Update handles PATCH /invoices/:id (admins only, enforced in the router).
func (h *InvoicesHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	invoice, err := h.invoices.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if req.TotalAmount != nil {
		invoice.TotalAmount = *req.TotalAmount
	}
	if req.Tax != nil {
		invoice.Tax = *req.Tax
	}
	if req.Discount != nil {
		invoice.Discount = *req.Discount
	}
	if req.FinalAmount != nil {
		invoice.FinalAmount = *req.FinalAmount
	}
	if req.Status != nil {
		invoice.Status = domain.InvoiceStatus(*req.Status)
	}

	if err := h.invoices.Update(c.UserContext(), invoice); err != nil {
		return err
	}
	return c.JSON(dto.NewInvoiceResponse(invoice))
}

// Delete handles DELETE /invoices/:id (admins only, enforced in the router).
func (h *InvoicesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.invoices.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Search handles GET /invoices/search/ (admins only, enforced in the
// router: the invoice table carries no customer id to narrow on).
func (h *InvoicesHandler) Search(c *fiber.Ctx) error {
	var req dto.InvoiceSearchRequest
	if err := c.QueryParser(&req); err != nil {
		return apperrors.NewValidationError("invalid query parameters", nil)
	}
	comb, err := repository.ParseCombinator(req.Operator)
	if err != nil {
		return err
	}

	var preds []repository.Predicate
	if req.Status != nil {
		preds = append(preds, repository.Eq("status", *req.Status))
	}
	if req.MinTotalAmount != nil {
		preds = append(preds, repository.Gte("total_amount", *req.MinTotalAmount))
	}
	if req.MinFinalAmount != nil {
		preds = append(preds, repository.Gte("final_amount", *req.MinFinalAmount))
	}

	limit, offset := pageParams(c)
	invoices, err := h.invoices.Search(c.UserContext(), comb, preds, limit, offset)
	if err != nil {
		return err
	}
	if len(invoices) == 0 {
		return apperrors.NewNotFound("invoice")
	}
	return c.JSON(dto.NewInvoiceResponses(invoices))
}
