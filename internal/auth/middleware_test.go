package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/rental-crm/internal/domain"
	apperrors "github.com/spec-kit/rental-crm/pkg/util"
)

func newTestApp(tm *TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"error": fiber.Map{"code": de.Code}})
		},
	})

	mw := NewAuthMiddleware(tm, NewRevocationList(nil, zap.NewNop()), zap.NewNop())
	app.Get("/admin-only", mw.Handle, RequireRoles(domain.RoleSuperAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	return app
}

func TestMiddlewareMissingToken(t *testing.T) {
	app := newTestApp(newTestManager())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareInvalidToken(t *testing.T) {
	app := newTestApp(newTestManager())

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareForbiddenRole(t *testing.T) {
	tm := newTestManager()
	app := newTestApp(tm)

	token, _, err := tm.IssueAccess("customer-1", domain.RoleCustomer)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestMiddlewareAllowsPermittedRole(t *testing.T) {
	tm := newTestManager()
	app := newTestApp(tm)

	token, _, err := tm.IssueAccess("admin-1", domain.RoleSuperAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareAcceptsCookieToken(t *testing.T) {
	tm := newTestManager()
	app := newTestApp(tm)

	token, _, err := tm.IssueAccess("admin-1", domain.RoleSuperAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareExpiredToken(t *testing.T) {
	tm := &TokenManager{secret: []byte(testSecret), accessTTL: time.Nanosecond, refreshTTL: time.Nanosecond}
	app := newTestApp(tm)

	token, _, err := tm.IssueAccess("admin-1", domain.RoleSuperAdmin)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
