package dto

import (
	"time"

	"github.com/spec-kit/rental-crm/internal/domain"
)

// CreateAdminRequest payload for registering an administrator.
type CreateAdminRequest struct {
	NamePrefix *string `json:"name_prefix"`
	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   string  `json:"last_name"`
	NameSuffix *string `json:"name_suffix"`
	Gender     string  `json:"gender"`
	Birthday   string  `json:"birthday"`
	Username   string  `json:"username"`
	Email      *string `json:"email"`
	Role       string  `json:"role"`
	Status     string  `json:"status"`
	Password   string  `json:"password"`
}

// UpdateAdminRequest payload; absent fields are left unchanged.
type UpdateAdminRequest struct {
	NamePrefix *string `json:"name_prefix"`
	FirstName  *string `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   *string `json:"last_name"`
	NameSuffix *string `json:"name_suffix"`
	Gender     *string `json:"gender"`
	Birthday   *string `json:"birthday"`
	Username   *string `json:"username"`
	Email      *string `json:"email"`
	Role       *string `json:"role"`
	Status     *string `json:"status"`
	Password   *string `json:"password"`
}

// AdminResponse response.
type AdminResponse struct {
	ID         string     `json:"id"`
	NamePrefix *string    `json:"name_prefix"`
	FirstName  string     `json:"first_name"`
	MiddleName *string    `json:"middle_name"`
	LastName   string     `json:"last_name"`
	NameSuffix *string    `json:"name_suffix"`
	Gender     string     `json:"gender"`
	Birthday   string     `json:"birthday"`
	Username   string     `json:"username"`
	Email      *string    `json:"email"`
	Role       string     `json:"role"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

// NewAdminResponse maps the domain entity.
func NewAdminResponse(a *domain.Admin) AdminResponse {
	return AdminResponse{
		ID:         a.ID.String(),
		NamePrefix: a.NamePrefix,
		FirstName:  a.FirstName,
		MiddleName: a.MiddleName,
		LastName:   a.LastName,
		NameSuffix: a.NameSuffix,
		Gender:     string(a.Gender),
		Birthday:   a.Birthday,
		Username:   a.Username,
		Email:      a.Email,
		Role:       string(a.Role),
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// NewAdminResponses maps a slice of domain entities.
func NewAdminResponses(admins []domain.Admin) []AdminResponse {
	out := make([]AdminResponse, len(admins))
	for i := range admins {
		out[i] = NewAdminResponse(&admins[i])
	}
	return out
}
