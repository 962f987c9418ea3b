package dto

import (
	"time"

	"github.com/spec-kit/rental-crm/internal/domain"
)

// LoginRequest payload for login. Role is optional; when present it narrows
// the account probe to that pool.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// RefreshRequest payload for token rotation. The refresh token may also be
// supplied through the refresh_token cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenPairResponse standard response for auth endpoints.
type TokenPairResponse struct {
	AccessToken      string      `json:"access_token"`
	RefreshToken     string      `json:"refresh_token"`
	TokenType        string      `json:"token_type"`
	ID               string      `json:"id"`
	Role             domain.Role `json:"role"`
	AccessExpiresAt  time.Time   `json:"access_expires_at"`
	RefreshExpiresAt time.Time   `json:"refresh_expires_at"`
}
