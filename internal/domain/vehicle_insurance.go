package domain

import (
	"time"

	"github.com/google/uuid"
)

// InsuranceType enumerates supported policy kinds.
type InsuranceType string

const (
	InsuranceThirdParty        InsuranceType = "THIRD_PARTY"
	InsurancePassengerAccident InsuranceType = "PASSENGER_ACCIDENT"
	InsuranceVehicleBody       InsuranceType = "VEHICLE_BODY"
)

// VehicleInsurance is a policy attached to a vehicle.
type VehicleInsurance struct {
	ID               uuid.UUID
	InsuranceCompany string
	InsuranceType    InsuranceType
	PolicyNumber     string
	StartDate        string
	ExpirationDate   string
	Premium          int64
	VehicleID        uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}
