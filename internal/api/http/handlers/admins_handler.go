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

// AdminsHandler exposes administrator account CRUD. Creation, listing and
// search are super admin operations; a general admin may only touch its own
// record.
type AdminsHandler struct {
	admins         repository.AdminRepository
	hashIterations int
}

// NewAdminsHandler constructs handler.
func NewAdminsHandler(admins repository.AdminRepository, hashIterations int) *AdminsHandler {
	return &AdminsHandler{admins: admins, hashIterations: hashIterations}
}

// Create handles POST /admins/ (super admin only, enforced in the router).
func (h *AdminsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.FirstName == "" || req.LastName == "" || req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("first_name, last_name, username, password required", nil)
	}
	role := domain.AdminRole(req.Role)
	if role != domain.AdminRoleSuper && role != domain.AdminRoleGeneral {
		return apperrors.NewValidationError("invalid admin role", map[string]any{"role": req.Role})
	}

	hash, err := auth.HashPassword(req.Password, h.hashIterations)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	status := domain.AdminStatus(req.Status)
	if status == "" {
		status = domain.AdminStatusActive
	}
	admin := &domain.Admin{
		NamePrefix:   req.NamePrefix,
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		NameSuffix:   req.NameSuffix,
		Gender:       domain.Gender(req.Gender),
		Birthday:     req.Birthday,
		Username:     req.Username,
		Email:        req.Email,
		Role:         role,
		Status:       status,
		PasswordHash: hash,
	}
	if err := h.admins.Create(c.UserContext(), admin); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewAdminResponse(admin))
}

// List handles GET /admins/ (super admin only, enforced in the router).
func (h *AdminsHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	admins, err := h.admins.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAdminResponses(admins))
}

// Get handles GET /admins/:id.
func (h *AdminsHandler) Get(c *fiber.Ctx) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := auth.RequireSelfForGeneralAdmin(principal, id); err != nil {
		return err
	}

	admin, err := h.admins.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAdminResponse(admin))
}

// Update handles PATCH /admins/:id.
func (h *AdminsHandler) Update(c *fiber.Ctx) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := auth.RequireSelfForGeneralAdmin(principal, id); err != nil {
		return err
	}

	var req dto.UpdateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	// Privilege escalation guard: only a super admin may change role/status.
	if principal.Role != domain.RoleSuperAdmin && (req.Role != nil || req.Status != nil) {
		return apperrors.NewForbidden("only super admins may change role or status")
	}

	admin, err := h.admins.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	applyAdminUpdate(admin, &req)
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password, h.hashIterations)
		if err != nil {
			return apperrors.NewInternalError(err)
		}
		admin.PasswordHash = hash
	}

	if err := h.admins.Update(c.UserContext(), admin); err != nil {
		return err
	}
	return c.JSON(dto.NewAdminResponse(admin))
}

// Delete handles DELETE /admins/:id.
func (h *AdminsHandler) Delete(c *fiber.Ctx) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := auth.RequireSelfForGeneralAdmin(principal, id); err != nil {
		return err
	}

	if err := h.admins.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Search handles GET /admins/search/ (super admin only, enforced in the
// router).
func (h *AdminsHandler) Search(c *fiber.Ctx) error {
	var req dto.AdminSearchRequest
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
		{"email", req.Email},
		{"role", req.Role},
		{"status", req.Status},
	} {
		if p.val != nil {
			preds = append(preds, repository.Eq(p.col, *p.val))
		}
	}

	limit, offset := pageParams(c)
	admins, err := h.admins.Search(c.UserContext(), comb, preds, limit, offset)
	if err != nil {
		return err
	}
	if len(admins) == 0 {
		return apperrors.NewNotFound("admin")
	}
	return c.JSON(dto.NewAdminResponses(admins))
}

func applyAdminUpdate(admin *domain.Admin, req *dto.UpdateAdminRequest) {
	if req.NamePrefix != nil {
		admin.NamePrefix = req.NamePrefix
	}
	if req.FirstName != nil {
		admin.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		admin.MiddleName = req.MiddleName
	}
	if req.LastName != nil {
		admin.LastName = *req.LastName
	}
	if req.NameSuffix != nil {
		admin.NameSuffix = req.NameSuffix
	}
	if req.Gender != nil {
		admin.Gender = domain.Gender(*req.Gender)
	}
	if req.Birthday != nil {
		admin.Birthday = *req.Birthday
	}
	if req.Username != nil {
		admin.Username = *req.Username
	}
	if req.Email != nil {
		admin.Email = req.Email
	}
	if req.Role != nil {
		admin.Role = domain.AdminRole(*req.Role)
	}
	if req.Status != nil {
		admin.Status = domain.AdminStatus(*req.Status)
	}
}
