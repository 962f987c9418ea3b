package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rental-crm/internal/api/dto"
	"github.com/spec-kit/rental-crm/internal/auth"
	"github.com/spec-kit/rental-crm/internal/domain"
	"github.com/spec-kit/rental-crm/internal/repository"
	apperrors "github.com/spec-kit/rental-crm/pkg/util"
)

// CustomersHandler exposes customer account CRUD. Registration is public;
// customers may only read and update their own profile.
type CustomersHandler struct {
	customers      repository.CustomerRepository
	hashIterations int
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(customers repository.CustomerRepository, hashIterations int) *CustomersHandler {
	return &CustomersHandler{customers: customers, hashIterations: hashIterations}
}

// Create handles POST /customers/.
func (h *CustomersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.FirstName == "" || req.LastName == "" || req.Username == "" ||
		req.NationalID == "" || req.Password == "" {
		return apperrors.NewValidationError("first_name, last_name, username, national_id, password required", nil)
	}

	hash, err := auth.HashPassword(req.Password, h.hashIterations)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	customer := &domain.Customer{
		NamePrefix:   req.NamePrefix,
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		NameSuffix:   req.NameSuffix,
		Gender:       domain.Gender(req.Gender),
		Birthday:     req.Birthday,
		NationalID:   req.NationalID,
		Phone:        req.Phone,
		Username:     req.Username,
		Email:        req.Email,
		Address:      req.Address,
		PasswordHash: hash,
	}
	if err := h.customers.Create(c.UserContext(), customer); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewCustomerResponse(customer))
}

// List handles GET /customers/ (admins only, enforced in the router).
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	customers, err := h.customers.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCustomerResponses(customers))
}

// Get handles GET /customers/:id.
func (h *CustomersHandler) Get(c *fiber.Ctx) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := auth.RequireCustomerOwnership(principal, id); err != nil {
		return err
	}

	customer, err := h.customers.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCustomerResponse(customer))
}

// Update handles PATCH /customers/:id.
func (h *CustomersHandler) Update(c *fiber.Ctx) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := auth.RequireCustomerOwnership(principal, id); err != nil {
		return err
	}

	var req dto.UpdateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	customer, err := h.customers.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	applyCustomerUpdate(customer, &req)
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password, h.hashIterations)
		if err != nil {
			return apperrors.NewInternalError(err)
		}
		customer.PasswordHash = hash
	}

	if err := h.customers.Update(c.UserContext(), customer); err != nil {
		return err
	}
	return c.JSON(dto.NewCustomerResponse(customer))
}

// Delete handles DELETE /customers/:id (admins only, enforced in the router).
func (h *CustomersHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.customers.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Search handles GET /customers/search/ (admins only, enforced in the
// router). An empty result set is a 404, matching the other search routes.
func (h *CustomersHandler) Search(c *fiber.Ctx) error {
	var req dto.CustomerSearchRequest
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
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
		{"username", req.Username},
		{"national_id", req.NationalID},
		{"email", req.Email},
		{"gender", req.Gender},
	} {
		if p.val != nil {
			preds = append(preds, repository.Eq(p.col, *p.val))
		}
	}

	limit, offset := pageParams(c)
	customers, err := h.customers.Search(c.UserContext(), comb, preds, limit, offset)
	if err != nil {
		return err
	}
	if len(customers) == 0 {
		return apperrors.NewNotFound("customer")
	}
	return c.JSON(dto.NewCustomerResponses(customers))
}

func applyCustomerUpdate(customer *domain.Customer, req *dto.UpdateCustomerRequest) {
	if req.NamePrefix != nil {
		customer.NamePrefix = req.NamePrefix
	}
	if req.FirstName != nil {
		customer.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		customer.MiddleName = req.MiddleName
	}
	if req.LastName != nil {
		customer.LastName = *req.LastName
	}
	if req.NameSuffix != nil {
		customer.NameSuffix = req.NameSuffix
	}
	if req.Gender != nil {
		customer.Gender = domain.Gender(*req.Gender)
	}
	if req.Birthday != nil {
		customer.Birthday = *req.Birthday
	}
	if req.NationalID != nil {
		customer.NationalID = *req.NationalID
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Username != nil {
		customer.Username = *req.Username
	}
	if req.Email != nil {
		customer.Email = req.Email
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
}
