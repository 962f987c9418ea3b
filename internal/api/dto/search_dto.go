package dto

// Each search endpoint reads its conditions from the query string: an
// operator (and/or/not) plus the entity's optional predicate fields, with at
// least one predicate required. The "min_" variants compare with >= instead
// of equality.

// CustomerSearchRequest query parameters.
type CustomerSearchRequest struct {
	Operator   string  `query:"operator"`
	FirstName  *string `query:"first_name"`
	LastName   *string `query:"last_name"`
	Username   *string `query:"username"`
	NationalID *string `query:"national_id"`
	Email      *string `query:"email"`
	Gender     *string `query:"gender"`
}

// AdminSearchRequest query parameters.
type AdminSearchRequest struct {
	Operator  string  `query:"operator"`
	FirstName *string `query:"first_name"`
	LastName  *string `query:"last_name"`
	Username  *string `query:"username"`
	Email     *string `query:"email"`
	Role      *string `query:"role"`
	Status    *string `query:"status"`
}

// VehicleSearchRequest query parameters.
type VehicleSearchRequest struct {
	Operator    string  `query:"operator"`
	PlateNumber *string `query:"plate_number"`
	Brand       *string `query:"brand"`
	Model       *string `query:"model"`
	Color       *string `query:"color"`
	Status      *string `query:"status"`
	MinYear     *int    `query:"min_year"`
	MinMileage  *int    `query:"min_mileage"`
}

// VehicleInsuranceSearchRequest query parameters.
type VehicleInsuranceSearchRequest struct {
	Operator         string  `query:"operator"`
	InsuranceCompany *string `query:"insurance_company"`
	InsuranceType    *string `query:"insurance_type"`
	PolicyNumber     *string `query:"policy_number"`
	VehicleID        *string `query:"vehicle_id"`
	MinPremium       *int64  `query:"min_premium"`
}

// InvoiceSearchRequest query parameters.
type InvoiceSearchRequest struct {
	Operator       string  `query:"operator"`
	Status         *string `query:"status"`
	MinTotalAmount *int64  `query:"min_total_amount"`
	MinFinalAmount *int64  `query:"min_final_amount"`
}

// RentalSearchRequest query parameters.
type RentalSearchRequest struct {
	Operator        string  `query:"operator"`
	CustomerID      *string `query:"customer_id"`
	VehicleID       *string `query:"vehicle_id"`
	InvoiceID       *string `query:"invoice_id"`
	RentalStartDate *string `query:"rental_start_date"`
	MinTotalAmount  *int64  `query:"min_total_amount"`
}

// PaymentSearchRequest query parameters.
type PaymentSearchRequest struct {
	Operator      string  `query:"operator"`
	PaymentMethod *string `query:"payment_method"`
	PaymentStatus *string `query:"payment_status"`
	TransactionID *string `query:"transaction_id"`
	InvoiceID     *string `query:"invoice_id"`
	MinAmount     *int64  `query:"min_amount"`
}

// CommentSearchRequest query parameters.
type CommentSearchRequest struct {
	Operator   string  `query:"operator"`
	Subject    *string `query:"subject"`
	Status     *string `query:"status"`
	CustomerID *string `query:"customer_id"`
}

// PostSearchRequest query parameters.
type PostSearchRequest struct {
	Operator string  `query:"operator"`
	Subject  *string `query:"subject"`
	AdminID  *string `query:"admin_id"`
}
