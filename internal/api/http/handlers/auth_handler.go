package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rental-crm/internal/api/dto"
	"github.com/spec-kit/rental-crm/internal/auth"
	"github.com/spec-kit/rental-crm/internal/domain"
	"github.com/spec-kit/rental-crm/internal/service"
	apperrors "github.com/spec-kit/rental-crm/pkg/util"
)

// AuthHandler exposes the session endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /login/.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	pair, err := h.auth.Login(c.Context(), req.Username, req.Password, domain.Role(req.Role))
	if err != nil {
		return err
	}

	setTokenCookies(c, pair)
	return c.JSON(tokenPairResponse(pair))
}

// Refresh handles POST /refresh-token/. The refresh token comes from the
// body or the refresh_token cookie.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	_ = c.BodyParser(&req)
	if req.RefreshToken == "" {
		req.RefreshToken = c.Cookies(auth.RefreshTokenCookie)
	}
	if req.RefreshToken == "" {
		return apperrors.NewUnauthorized("refresh token required")
	}

	pair, err := h.auth.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	setTokenCookies(c, pair)
	return c.JSON(tokenPairResponse(pair))
}

// Logout handles POST /logout/. Both presented tokens are revoked and the
// cookies cleared; the endpoint always succeeds.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.auth.Logout(c.Context(), auth.TokenFromRequest(c), c.Cookies(auth.RefreshTokenCookie))

	clearCookie(c, auth.AccessTokenCookie)
	clearCookie(c, auth.RefreshTokenCookie)
	return c.Status(http.StatusOK).JSON(fiber.Map{"detail": "logged out"})
}

func tokenPairResponse(pair *service.TokenPair) dto.TokenPairResponse {
	return dto.TokenPairResponse{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		TokenType:        "bearer",
		ID:               pair.SubjectID,
		Role:             pair.Role,
		AccessExpiresAt:  pair.AccessExpiresAt,
		RefreshExpiresAt: pair.RefreshExpiresAt,
	}
}

func setTokenCookies(c *fiber.Ctx, pair *service.TokenPair) {
	c.Cookie(&fiber.Cookie{
		Name:     auth.AccessTokenCookie,
		Value:    pair.AccessToken,
		Expires:  pair.AccessExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     auth.RefreshTokenCookie,
		Value:    pair.RefreshToken,
		Expires:  pair.RefreshExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Path:     "/",
	})
}
