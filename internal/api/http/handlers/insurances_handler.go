package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/rental-crm/internal/api/dto"
	"github.com/spec-kit/rental-crm/internal/domain"
	"github.com/spec-kit/rental-crm/internal/repository"
	apperrors "github.com/spec-kit/rental-crm/pkg/util"
)

// InsurancesHandler exposes vehicle insurance CRUD. All routes are gated to
// admins in the router.
type InsurancesHandler struct {
	insurances repository.VehicleInsuranceRepository
}

// NewInsurancesHandler constructs handler.
func NewInsurancesHandler(insurances repository.VehicleInsuranceRepository) *InsurancesHandler {
	return &InsurancesHandler{insurances: insurances}
}

// Create handles POST /vehicle-insurances/.
func (h *InsurancesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateVehicleInsuranceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.InsuranceCompany == "" || req.PolicyNumber == "" || req.VehicleID == "" {
		return apperrors.NewValidationError("insurance_company, policy_number, vehicle_id required", nil)
	}
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return apperrors.NewValidationError("invalid vehicle_id", map[string]any{"vehicle_id": req.VehicleID})
	}

	policy := &domain.VehicleInsurance{
		InsuranceCompany: req.InsuranceCompany,
		InsuranceType:    domain.InsuranceType(req.InsuranceType),
		PolicyNumber:     req.PolicyNumber,
		StartDate:        req.StartDate,
		ExpirationDate:   req.ExpirationDate,
		Premium:          req.Premium,
		VehicleID:        vehicleID,
	}
	if err := h.insurances.Create(c.UserContext(), policy); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewVehicleInsuranceResponse(policy))
}

// List handles GET /vehicle-insurances/.
func (h *InsurancesHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	policies, err := h.insurances.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewVehicleInsuranceResponses(policies))
}

// Get handles GET /vehicle-insurances/:id.
func (h *InsurancesHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	policy, err := h.insurances.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewVehicleInsuranceResponse(policy))
}

// Update handles PATCH /vehicle-insurances/:id.
func (h *InsurancesHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateVehicleInsuranceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	policy, err := h.insurances.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if req.InsuranceCompany != nil {
		policy.InsuranceCompany = *req.InsuranceCompany
	}
	if req.InsuranceType != nil {
		policy.InsuranceType = domain.InsuranceType(*req.InsuranceType)
	}
	if req.PolicyNumber != nil {
		policy.PolicyNumber = *req.PolicyNumber
	}
	if req.StartDate != nil {
		policy.StartDate = *req.StartDate
	}
	if req.ExpirationDate != nil {
		policy.ExpirationDate = *req.ExpirationDate
	}
	if req.Premium != nil {
		policy.Premium = *req.Premium
	}

	if err := h.insurances.Update(c.UserContext(), policy); err != nil {
		return err
	}
	return c.JSON(dto.NewVehicleInsuranceResponse(policy))
}

// Delete handles DELETE /vehicle-insurances/:id.
func (h *InsurancesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.insurances.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Search handles GET /vehicle-insurances/search/.
func (h *InsurancesHandler) Search(c *fiber.Ctx) error {
	var req dto.VehicleInsuranceSearchRequest
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
		{"insurance_company", req.InsuranceCompany},
		{"insurance_type", req.InsuranceType},
		{"policy_number", req.PolicyNumber},
		{"vehicle_id", req.VehicleID},
	} {
		if p.val != nil {
			preds = append(preds, repository.Eq(p.col, *p.val))
		}
	}
	if req.MinPremium != nil {
		preds = append(preds, repository.Gte("premium", *req.MinPremium))
	}

	limit, offset := pageParams(c)
	policies, err := h.insurances.Search(c.UserContext(), comb, preds, limit, offset)
	if err != nil {
		return err
	}
	if len(policies) == 0 {
		return apperrors.NewNotFound("vehicle insurance")
	}
	return c.JSON(dto.NewVehicleInsuranceResponses(policies))
}
