package dto

import (
	"time"

	"github.com/spec-kit/rental-crm/internal/domain"
)

// CreateVehicleRequest payload for adding a vehicle to the fleet.
type CreateVehicleRequest struct {
	PlateNumber       string `json:"plate_number"`
	Location          string `json:"location"`
	LocalImageAddress string `json:"local_image_address"`
	Brand             string `json:"brand"`
	Model             string `json:"model"`
	Year              int    `json:"year"`
	Color             string `json:"color"`
	Mileage           int    `json:"mileage"`
	Status            string `json:"status"`
	HourlyRentalRate  int64  `json:"hourly_rental_rate"`
	SecurityDeposit   int64  `json:"security_deposit"`
}

// UpdateVehicleRequest payload; absent fields are left unchanged.
type UpdateVehicleRequest struct {
	PlateNumber       *string `json:"plate_number"`
	Location          *string `json:"location"`
	LocalImageAddress *string `json:"local_image_address"`
	Brand             *string `json:"brand"`
	Model             *string `json:"model"`
	Year              *int    `json:"year"`
	Color             *string `json:"color"`
	Mileage           *int    `json:"mileage"`
	Status            *string `json:"status"`
	HourlyRentalRate  *int64  `json:"hourly_rental_rate"`
	SecurityDeposit   *int64  `json:"security_deposit"`
}

// VehicleResponse response.
type VehicleResponse struct {
	ID                string     `json:"id"`
	PlateNumber       string     `json:"plate_number"`
	Location          string     `json:"location"`
	LocalImageAddress string     `json:"local_image_address"`
	Brand             string     `json:"brand"`
	Model             string     `json:"model"`
	Year              int        `json:"year"`
	Color             string     `json:"color"`
	Mileage           int        `json:"mileage"`
	Status            string     `json:"status"`
	HourlyRentalRate  int64      `json:"hourly_rental_rate"`
	SecurityDeposit   int64      `json:"security_deposit"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
}

// NewVehicleResponse maps the domain entity.
func NewVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:                v.ID.String(),
		PlateNumber:       v.PlateNumber,
		Location:          v.Location,
		LocalImageAddress: v.LocalImageAddress,
		Brand:             v.Brand,
		Model:             v.Model,
		Year:              v.Year,
		Color:             v.Color,
		Mileage:           v.Mileage,
		Status:            string(v.Status),
		HourlyRentalRate:  v.HourlyRentalRate,
		SecurityDeposit:   v.SecurityDeposit,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

// NewVehicleResponses maps a slice of domain entities.
func NewVehicleResponses(vehicles []domain.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, len(vehicles))
	for i := range vehicles {
		out[i] = NewVehicleResponse(&vehicles[i])
	}
	return out
}

// CreateVehicleInsuranceRequest payload for attaching a policy.
type CreateVehicleInsuranceRequest struct {
	InsuranceCompany string `json:"insurance_company"`
	InsuranceType    string `json:"insurance_type"`
	PolicyNumber     string `json:"policy_number"`
	StartDate        string `json:"start_date"`
	ExpirationDate   string `json:"expiration_date"`
	Premium          int64  `json:"premium"`
	VehicleID        string `json:"vehicle_id"`
}

// UpdateVehicleInsuranceRequest payload; absent fields are left unchanged.
type UpdateVehicleInsuranceRequest struct {
	InsuranceCompany *string `json:"insurance_company"`
	InsuranceType    *string `json:"insurance_type"`
	PolicyNumber     *string `json:"policy_number"`
	StartDate        *string `json:"start_date"`
	ExpirationDate   *string `json:"expiration_date"`
	Premium          *int64  `json:"premium"`
}

// VehicleInsuranceResponse response.
type VehicleInsuranceResponse struct {
	ID               string     `json:"id"`
	InsuranceCompany string     `json:"insurance_company"`
	InsuranceType    string     `json:"insurance_type"`
	PolicyNumber     string     `json:"policy_number"`
	StartDate        string     `json:"start_date"`
	ExpirationDate   string     `json:"expiration_date"`
	Premium          int64      `json:"premium"`
	VehicleID        string     `json:"vehicle_id"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}

// NewVehicleInsuranceResponse maps the domain entity.
func NewVehicleInsuranceResponse(i *domain.VehicleInsurance) VehicleInsuranceResponse {
	return VehicleInsuranceResponse{
		ID:               i.ID.String(),
		InsuranceCompany: i.InsuranceCompany,
		InsuranceType:    string(i.InsuranceType),
		PolicyNumber:     i.PolicyNumber,
		StartDate:        i.StartDate,
		ExpirationDate:   i.ExpirationDate,
		Premium:          i.Premium,
		VehicleID:        i.VehicleID.String(),
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}

// NewVehicleInsuranceResponses maps a slice of domain entities.
func NewVehicleInsuranceResponses(policies []domain.VehicleInsurance) []VehicleInsuranceResponse {
	out := make([]VehicleInsuranceResponse, len(policies))
	for i := range policies {
		out[i] = NewVehicleInsuranceResponse(&policies[i])
	}
	return out
}
