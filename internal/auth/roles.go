package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/rental-crm/internal/domain"
	apperrors "github.com/spec-kit/rental-crm/pkg/util"
)

// RequireRoles ensures the authenticated principal carries one of the
// allowed roles: 401 when unauthenticated, 403 when the role is not allowed.
func RequireRoles(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	names := make([]string, 0, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
		names = append(names, string(role))
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("not authenticated")
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewForbidden("access requires one of roles: " + strings.Join(names, ", "))
		}
		return c.Next()
	}
}

// RequireCustomerOwnership rejects a Customer principal targeting a row it
// does not own. Admin roles pass unconditionally; the check applies to
// customer-owned resources only.
func RequireCustomerOwnership(principal *Principal, ownerID uuid.UUID) error {
	if principal.Role != domain.RoleCustomer {
		return nil
	}
	subject, err := principal.SubjectUUID()
	if err != nil || subject != ownerID {
		return apperrors.NewForbidden("you may only access your own records")
	}
	return nil
}

// RequireSelfForGeneralAdmin restricts a general admin to its own admin
// record; super admins pass unconditionally.
func RequireSelfForGeneralAdmin(principal *Principal, targetID uuid.UUID) error {
	if principal.Role != domain.RoleGeneralAdmin {
		return nil
	}
	subject, err := principal.SubjectUUID()
	if err != nil || subject != targetID {
		return apperrors.NewForbidden("general admins may only access their own record")
	}
	return nil
}
