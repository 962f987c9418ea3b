package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/rental-crm/internal/auth"
	apperrors "github.com/spec-kit/rental-crm/pkg/util"
)

// parseUUIDParam reads a path parameter as a UUID.
func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperrors.NewValidationError("invalid identifier", map[string]any{name: c.Params(name)})
	}
	return id, nil
}

// pageParams reads offset/limit query parameters. Clamping happens in the
// repository layer.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	return c.QueryInt("limit", 100), c.QueryInt("offset", 0)
}

// mustPrincipal returns the authenticated principal or a 401.
func mustPrincipal(c *fiber.Ctx) (*auth.Principal, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("not authenticated")
	}
	return principal, nil
}
