package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/rental-crm/internal/domain"
)

const insuranceColumns = `id, insurance_company, insurance_type, policy_number, start_date,
        expiration_date, premium, vehicle_id, created_at, updated_at`

// VehicleInsuranceRepository defines persistence access for policies.
type VehicleInsuranceRepository interface {
	Create(ctx context.Context, insurance *domain.VehicleInsurance) error
	Update(ctx context.Context, insurance *domain.VehicleInsurance) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VehicleInsurance, error)
	List(ctx context.Context, limit, offset int) ([]domain.VehicleInsurance, error)
	Search(ctx context.Context, comb Combinator, preds []Predicate, limit, offset int) ([]domain.VehicleInsurance, error)
}

type vehicleInsuranceRepository struct {
	pool *pgxpool.Pool
}

// NewVehicleInsuranceRepository returns a Postgres-backed implementation.
func NewVehicleInsuranceRepository(pool *pgxpool.Pool) VehicleInsuranceRepository {
	return &vehicleInsuranceRepository{pool: pool}
}

func (r *vehicleInsuranceRepository) Create(ctx context.Context, insurance *domain.VehicleInsurance) error {
	const query = `
        INSERT INTO vehicle_insurances (insurance_company, insurance_type, policy_number,
            start_date, expiration_date, premium, vehicle_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		insurance.InsuranceCompany,
		insurance.InsuranceType,
		insurance.PolicyNumber,
		insurance.StartDate,
		insurance.ExpirationDate,
		insurance.Premium,
		insurance.VehicleID,
	).Scan(&insurance.ID, &insurance.CreatedAt)
}

func (r *vehicleInsuranceRepository) Update(ctx context.Context, insurance *domain.VehicleInsurance) error {
	const query = `
        UPDATE vehicle_insurances SET insurance_company=$1, insurance_type=$2, policy_number=$3,
            start_date=$4, expiration_date=$5, premium=$6, vehicle_id=$7, updated_at=NOW()
        WHERE id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		insurance.InsuranceCompany,
		insurance.InsuranceType,
		insurance.PolicyNumber,
		insurance.StartDate,
		insurance.ExpirationDate,
		insurance.Premium,
		insurance.VehicleID,
		insurance.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *vehicleInsuranceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM vehicle_insurances WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *vehicleInsuranceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.VehicleInsurance, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicle_insurances WHERE id=$1`, insuranceColumns)

	var insurance domain.VehicleInsurance
	if err := scanInsurance(r.pool.QueryRow(ctx, query, id), &insurance); err != nil {
		return nil, err
	}
	return &insurance, nil
}

func (r *vehicleInsuranceRepository) List(ctx context.Context, limit, offset int) ([]domain.VehicleInsurance, error) {
	offset, limit = ClampPage(offset, limit)
	query := fmt.Sprintf(`SELECT %s FROM vehicle_insurances ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		insuranceColumns, limit, offset)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInsurances(rows)
}

func (r *vehicleInsuranceRepository) Search(ctx context.Context, comb Combinator, preds []Predicate, limit, offset int) ([]domain.VehicleInsurance, error) {
	args := []any{}
	where, err := BuildWhere(comb, preds, &args)
	if err != nil {
		return nil, err
	}

	offset, limit = ClampPage(offset, limit)
	query := fmt.Sprintf(`SELECT %s FROM vehicle_insurances WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		insuranceColumns, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInsurances(rows)
}

func scanInsurance(row pgx.Row, insurance *domain.VehicleInsurance) error {
	return row.Scan(
		&insurance.ID,
		&insurance.InsuranceCompany,
		&insurance.InsuranceType,
		&insurance.PolicyNumber,
		&insurance.StartDate,
		&insurance.ExpirationDate,
		&insurance.Premium,
		&insurance.VehicleID,
		&insurance.CreatedAt,
		&insurance.UpdatedAt,
	)
}

func scanInsurances(rows pgx.Rows) ([]domain.VehicleInsurance, error) {
	var result []domain.VehicleInsurance
	for rows.Next() {
		var insurance domain.VehicleInsurance
		if err := scanInsurance(rows, &insurance); err != nil {
			return nil, err
		}
		result = append(result, insurance)
	}
	return result, rows.Err()
}
