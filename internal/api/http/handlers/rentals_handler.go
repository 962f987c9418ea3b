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

// RentalsHandler exposes rental CRUD. Writes are admin operations; customer
// reads are narrowed to the customer's own rentals inside the query.
type RentalsHandler struct {
	rentals    repository.RentalRepository
	dispatcher events.Dispatcher
}

// NewRentalsHandler constructs handler.
func NewRentalsHandler(rentals repository.RentalRepository, dispatcher events.Dispatcher) *RentalsHandler {
	return &RentalsHandler{rentals: rentals, dispatcher: dispatcher}
}

// Create handles POST /rentals/ (admins only, enforced in the router).
func (h *RentalsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRentalRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return apperrors.NewValidationError("invalid customer_id", map[string]any{"customer_id": req.CustomerID})
	}
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return apperrors.NewValidationError("invalid vehicle_id", map[string]any{"vehicle_id": req.VehicleID})
	}
	invoiceID, err := uuid.Parse(req.InvoiceID)
	if err != nil {
		return apperrors.NewValidationError("invalid invoice_id", map[string]any{"invoice_id": req.InvoiceID})
	}

	rental := &domain.Rental{
		RentalStartDate: req.RentalStartDate,
		RentalEndDate:   req.RentalEndDate,
		TotalAmount:     req.TotalAmount,
		CustomerID:      customerID,
		VehicleID:       vehicleID,
		InvoiceID:       invoiceID,
	}
	if err := h.rentals.Create(c.UserContext(), rental); err != nil {
		return err
	}

	if h.dispatcher != nil {
		actor := events.Actor{}
		if principal, ok := auth.PrincipalFromContext(c); ok {
			actor = events.Actor{Role: principal.Role, SubjectID: principal.SubjectID}
		}
		_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(events.EventRentalCreated, actor, events.RentalCreatedPayload{
			RentalID:   rental.ID.String(),
			CustomerID: rental.CustomerID.String(),
			VehicleID:  rental.VehicleID.String(),
		}))
	}
	return c.Status(http.StatusCreated).JSON(dto.NewRentalResponse(rental))
}

// List handles GET /rentals/. Customer results are narrowed to the caller's
// own rows before pagination.
func (h *RentalsHandler) List(c *fiber.Ctx) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	owner, err := customerOwner(principal)
	if err != nil {
		return err
	}

	limit, offset := pageParams(c)
	rentals, err := h.rentals.List(c.UserContext(), owner, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewRentalResponses(rentals))
}

// Get handles GET /rentals/:id.
func (h *RentalsHandler) Get(c *fiber.Ctx) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	rental, err := h.rentals.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if err := auth.RequireCustomerOwnership(principal, rental.CustomerID); err != nil {
		return err
	}
	return c.JSON(dto.NewRentalResponse(rental))
}

// Update handles PATCH /rentals/:id (admins only, enforced in the router).
func (h *RentalsHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateRentalRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	rental, err := h.rentals.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if req.RentalStartDate != nil {
		rental.RentalStartDate = *req.RentalStartDate
	}
	if req.RentalEndDate != nil {
		rental.RentalEndDate = *req.RentalEndDate
	}
	if req.TotalAmount != nil {
		rental.TotalAmount = *req.TotalAmount
	}
	if req.VehicleID != nil {
		vehicleID, err := uuid.Parse(*req.VehicleID)
		if err != nil {
			return apperrors.NewValidationError("invalid vehicle_id", map[string]any{"vehicle_id": *req.VehicleID})
		}
		rental.VehicleID = vehicleID
	}
	if req.InvoiceID != nil {
		invoiceID, err := uuid.Parse(*req.InvoiceID)
		if err != nil {
			return apperrors.NewValidationError("invalid invoice_id", map[string]any{"invoice_id": *req.InvoiceID})
		}
		rental.InvoiceID = invoiceID
	}

	if err := h.rentals.Update(c.UserContext(), rental); err != nil {
		return err
	}
	return c.JSON(dto.NewRentalResponse(rental))
}

// Delete handles DELETE /rentals/:id (admins only, enforced in the router).
func (h *RentalsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.rentals.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Search handles GET /rentals/search/. Customer searches are narrowed to
// the caller's own rows regardless of supplied predicates.
func (h *RentalsHandler) Search(c *fiber.Ctx) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	owner, err := customerOwner(principal)
	if err != nil {
		return err
	}

	var req dto.RentalSearchRequest
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
		{"customer_id", req.CustomerID},
		{"vehicle_id", req.VehicleID},
		{"invoice_id", req.InvoiceID},
		{"rental_start_date", req.RentalStartDate},
	} {
		if p.val != nil {
			preds = append(preds, repository.Eq(p.col, *p.val))
		}
	}
	if req.MinTotalAmount != nil {
		preds = append(preds, repository.Gte("total_amount", *req.MinTotalAmount))
	}

	limit, offset := pageParams(c)
	rentals, err := h.rentals.Search(c.UserContext(), comb, preds, owner, limit, offset)
	if err != nil {
		return err
	}
	if len(rentals) == 0 {
		return apperrors.NewNotFound("rental")
	}
	return c.JSON(dto.NewRentalResponses(rentals))
}

// customerOwner returns the narrowing owner id for customer principals and
// nil for admins.
func customerOwner(principal *auth.Principal) (*uuid.UUID, error) {
	if principal.Role != domain.RoleCustomer {
		return nil, nil
	}
	id, err := principal.SubjectUUID()
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid subject")
	}
	return &id, nil
}
