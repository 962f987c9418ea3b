package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rental-crm/internal/api/dto"
	"github.com/spec-kit/rental-crm/internal/domain"
	"github.com/spec-kit/rental-crm/internal/repository"
	apperrors "github.com/spec-kit/rental-crm/pkg/util"
)

// VehiclesHandler exposes fleet CRUD. Reads are public; writes are gated to
// admins in the router.
type VehiclesHandler struct {
	vehicles repository.VehicleRepository
}

// NewVehiclesHandler constructs handler.
func NewVehiclesHandler(vehicles repository.VehicleRepository) *VehiclesHandler {
	return &VehiclesHandler{vehicles: vehicles}
}

// Create handles POST /vehicles/.
func (h *VehiclesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.PlateNumber == "" || req.Brand == "" || req.Model == "" {
		return apperrors.NewValidationError("plate_number, brand, model required", nil)
	}

	status := domain.CarStatus(req.Status)
	if status == "" {
		status = domain.CarStatusNew
	}
	vehicle := &domain.Vehicle{
		PlateNumber:       req.PlateNumber,
		Location:          req.Location,
		LocalImageAddress: req.LocalImageAddress,
		Brand:             req.Brand,
		Model:             req.Model,
		Year:              req.Year,
		Color:             req.Color,
		Mileage:           req.Mileage,
		Status:            status,
		HourlyRentalRate:  req.HourlyRentalRate,
		SecurityDeposit:   req.SecurityDeposit,
	}
	if err := h.vehicles.Create(c.UserContext(), vehicle); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewVehicleResponse(vehicle))
}

// List handles GET /vehicles/.
func (h *VehiclesHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	vehicles, err := h.vehicles.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewVehicleResponses(vehicles))
}

// Get handles GET /vehicles/:id.
func (h *VehiclesHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	vehicle, err := h.vehicles.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewVehicleResponse(vehicle))
}

// Update handles PATCH /vehicles/:id.
func (h *VehiclesHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	vehicle, err := h.vehicles.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	applyVehicleUpdate(vehicle, &req)

	if err := h.vehicles.Update(c.UserContext(), vehicle); err != nil {
		return err
	}
	return c.JSON(dto.NewVehicleResponse(vehicle))
}

// Delete handles DELETE /vehicles/:id.
func (h *VehiclesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.vehicles.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Search handles GET /vehicles/search/.
func (h *VehiclesHandler) Search(c *fiber.Ctx) error {
	var req dto.VehicleSearchRequest
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
		{"plate_number", req.PlateNumber},
		{"brand", req.Brand},
		{"model", req.Model},
		{"color", req.Color},
		{"status", req.Status},
	} {
		if p.val != nil {
			preds = append(preds, repository.Eq(p.col, *p.val))
		}
	}
	if req.MinYear != nil {
		preds = append(preds, repository.Gte("year", *req.MinYear))
	}
	if req.MinMileage != nil {
		preds = append(preds, repository.Gte("mileage", *req.MinMileage))
	}

	limit, offset := pageParams(c)
	vehicles, err := h.vehicles.Search(c.UserContext(), comb, preds, limit, offset)
	if err != nil {
		return err
	}
	if len(vehicles) == 0 {
		return apperrors.NewNotFound("vehicle")
	}
	return c.JSON(dto.NewVehicleResponses(vehicles))
}

func applyVehicleUpdate(vehicle *domain.Vehicle, req *dto.UpdateVehicleRequest) {
	if req.PlateNumber != nil {
		vehicle.PlateNumber = *req.PlateNumber
	}
	if req.Location != nil {
		vehicle.Location = *req.Location
	}
	if req.LocalImageAddress != nil {
		vehicle.LocalImageAddress = *req.LocalImageAddress
	}
	if req.Brand != nil {
		vehicle.Brand = *req.Brand
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.Color != nil {
		vehicle.Color = *req.Color
	}
	if req.Mileage != nil {
		vehicle.Mileage = *req.Mileage
	}
	if req.Status != nil {
		vehicle.Status = domain.CarStatus(*req.Status)
	}
	if req.HourlyRentalRate != nil {
		vehicle.HourlyRentalRate = *req.HourlyRentalRate
	}
	if req.SecurityDeposit != nil {
		vehicle.SecurityDeposit = *req.SecurityDeposit
	}
}
