package domain

import (
	"time"

	"github.com/google/uuid"
)

// Gender enumerates customer gender values.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Customer is a registered renter. Customers are one of the two principal
// kinds and authenticate with username and password.
type Customer struct {
	ID           uuid.UUID
	NamePrefix   *string
	FirstName    string
	MiddleName   *string
	LastName     string
	NameSuffix   *string
	Gender       Gender
	Birthday     string
	NationalID   string
	Phone        int64
	Username     string
	Email        *string
	Address      string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
