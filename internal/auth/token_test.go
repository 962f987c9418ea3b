package auth

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/rental-crm/internal/domain"
)

const testSecret = "test-signing-secret"

func newTestManager() *TokenManager {
	return NewTokenManager(testSecret, 15*time.Minute, 7*24*time.Hour)
}

func TestIssueAndParseRoundTrip(t *testing.T) {
	tm := newTestManager()

	token, expiresAt, err := tm.IssueAccess("subject-1", domain.RoleCustomer)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "subject-1", claims.SubjectID)
	assert.Equal(t, domain.RoleCustomer, claims.Role)
	assert.NotEmpty(t, claims.ID, "tokens must carry a jti for revocation")
}

func TestParseExpiredToken(t *testing.T) {
	tm := &TokenManager{secret: []byte(testSecret), accessTTL: time.Nanosecond, refreshTTL: time.Nanosecond}

	token, _, err := tm.IssueAccess("subject-1", domain.RoleCustomer)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseTamperedToken(t *testing.T) {
	tm := newTestManager()

	token, _, err := tm.IssueAccess("subject-1", domain.RoleSuperAdmin)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	flip := func(s string) string {
		b := []byte(s)
		if b[0] == 'A' {
			b[0] = 'B'
		} else {
			b[0] = 'A'
		}
		return string(b)
	}

	// Altered signature.
	_, err = tm.Parse(parts[0] + "." + parts[1] + "." + flip(parts[2]))
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// Altered payload.
	_, err = tm.Parse(parts[0] + "." + flip(parts[1]) + "." + parts[2])
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseWrongSecret(t *testing.T) {
	tm := newTestManager()
	other := NewTokenManager("another-secret", 15*time.Minute, 7*24*time.Hour)

	token, _, err := other.IssueAccess("subject-1", domain.RoleCustomer)
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseRejectsMissingRole(t *testing.T) {
	tm := newTestManager()

	raw := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"id":  "subject-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseRejectsUnexpectedSigningMethod(t *testing.T) {
	tm := newTestManager()

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   "subject-1",
		"role": string(domain.RoleCustomer),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRefreshRotationPreservesIdentity(t *testing.T) {
	tm := newTestManager()

	refresh, _, err := tm.IssueRefresh("customer-x", domain.RoleCustomer)
	require.NoError(t, err)

	// Rotation issues both tokens from the verified refresh claims, so
	// identity and role can never be escalated through refresh.
	claims, err := tm.Parse(refresh)
	require.NoError(t, err)

	newAccess, _, err := tm.IssueAccess(claims.SubjectID, claims.Role)
	require.NoError(t, err)
	newRefresh, _, err := tm.IssueRefresh(claims.SubjectID, claims.Role)
	require.NoError(t, err)

	accessClaims, err := tm.Parse(newAccess)
	require.NoError(t, err)
	assert.Equal(t, "customer-x", accessClaims.SubjectID)
	assert.Equal(t, domain.RoleCustomer, accessClaims.Role)

	refreshClaims, err := tm.Parse(newRefresh)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, refreshClaims.Role)
}
