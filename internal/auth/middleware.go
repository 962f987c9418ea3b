package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/rental-crm/internal/domain"
	apperrors "github.com/spec-kit/rental-crm/pkg/util"
)

const principalKey = "auth_principal"

// AccessTokenCookie is the cookie carrying the access token.
const AccessTokenCookie = "access_token"

// RefreshTokenCookie is the cookie carrying the refresh token.
const RefreshTokenCookie = "refresh_token"

// Principal represents the authenticated caller.
type Principal struct {
	SubjectID string
	Role      domain.Role
	Claims    *Claims
}

// SubjectUUID parses the subject identifier as a UUID.
func (p *Principal) SubjectUUID() (uuid.UUID, error) {
	return uuid.Parse(p.SubjectID)
}

// AuthMiddleware validates session tokens and loads principals.
type AuthMiddleware struct {
	tokens  *TokenManager
	revoked *RevocationList
	logger  *zap.Logger
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, revoked *RevocationList, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, revoked: revoked, logger: logger}
}

// Handle enforces authentication for protected routes. The access token is
// taken from the Authorization header or the access_token cookie.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	tokenStr := TokenFromRequest(c)
	if tokenStr == "" {
		return apperrors.NewUnauthorized("not authenticated")
	}

	claims, err := m.tokens.Parse(tokenStr)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return apperrors.NewTokenExpired()
		}
		m.logger.Debug("token rejected", zap.Error(err))
		return apperrors.NewTokenInvalid(err)
	}

	if m.revoked.IsRevoked(c.Context(), claims.ID) {
		return apperrors.NewUnauthorized("token has been revoked")
	}

	c.Locals(principalKey, &Principal{SubjectID: claims.SubjectID, Role: claims.Role, Claims: claims})
	return c.Next()
}

// TokenFromRequest extracts the raw access token from the Authorization
// header or the access_token cookie, stripping any Bearer prefix.
func TokenFromRequest(c *fiber.Ctx) string {
	if header := c.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
		return header
	}
	return strings.TrimPrefix(c.Cookies(AccessTokenCookie), "Bearer ")
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
