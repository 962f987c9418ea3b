package dto

import (
	"time"

	"github.com/spec-kit/rental-crm/internal/domain"
)

// CreateCustomerRequest payload for registering a customer.
type CreateCustomerRequest struct {
	NamePrefix *string `json:"name_prefix"`
	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   string  `json:"last_name"`
	NameSuffix *string `json:"name_suffix"`
	Gender     string  `json:"gender"`
	Birthday   string  `json:"birthday"`
	NationalID string  `json:"national_id"`
	Phone      int64   `json:"phone"`
	Username   string  `json:"username"`
	Email      *string `json:"email"`
	Address    string  `json:"address"`
	Password   string  `json:"password"`
}

// UpdateCustomerRequest payload; absent fields are left unchanged.
type UpdateCustomerRequest struct {
	NamePrefix *string `json:"name_prefix"`
	FirstName  *string `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   *string `json:"last_name"`
	NameSuffix *string `json:"name_suffix"`
	Gender     *string `json:"gender"`
	Birthday   *string `json:"birthday"`
	NationalID *string `json:"national_id"`
	Phone      *int64  `json:"phone"`
	Username   *string `json:"username"`
	Email      *string `json:"email"`
	Address    *string `json:"address"`
	Password   *string `json:"password"`
}

// CustomerResponse response. The password hash never leaves the server.
type CustomerResponse struct {
	ID         string     `json:"id"`
	NamePrefix *string    `json:"name_prefix"`
	FirstName  string     `json:"first_name"`
	MiddleName *string    `json:"middle_name"`
	LastName   string     `json:"last_name"`
	NameSuffix *string    `json:"name_suffix"`
	Gender     string     `json:"gender"`
	Birthday   string     `json:"birthday"`
	NationalID string     `json:"national_id"`
	Phone      int64      `json:"phone"`
	Username   string     `json:"username"`
	Email      *string    `json:"email"`
	Address    string     `json:"address"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

// NewCustomerResponse maps the domain entity.
func NewCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         c.ID.String(),
		NamePrefix: c.NamePrefix,
		FirstName:  c.FirstName,
		MiddleName: c.MiddleName,
		LastName:   c.LastName,
		NameSuffix: c.NameSuffix,
		Gender:     string(c.Gender),
		Birthday:   c.Birthday,
		NationalID: c.NationalID,
		Phone:      c.Phone,
		Username:   c.Username,
		Email:      c.Email,
		Address:    c.Address,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// NewCustomerResponses maps a slice of domain entities.
func NewCustomerResponses(customers []domain.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i := range customers {
		out[i] = NewCustomerResponse(&customers[i])
	}
	return out
}
