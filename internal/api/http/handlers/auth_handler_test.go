package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/rental-crm/internal/domain"
	"github.com/spec-kit/rental-crm/internal/service"
)

func TestTokenPairResponseCarriesSubjectIdentity(t *testing.T) {
	now := time.Now()
	resp := tokenPairResponse(&service.TokenPair{
		AccessToken:      "access",
		RefreshToken:     "refresh",
		AccessExpiresAt:  now,
		RefreshExpiresAt: now.Add(time.Hour),
		SubjectID:        "9f1b6746-0000-4000-8000-000000000001",
		Role:             domain.RoleCustomer,
	})

	assert.Equal(t, "9f1b6746-0000-4000-8000-000000000001", resp.ID)
	assert.Equal(t, domain.RoleCustomer, resp.Role)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "access", resp.AccessToken)
	assert.Equal(t, "refresh", resp.RefreshToken)
}
