package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/rental-crm/internal/domain"
)

const vehicleColumns = `id, plate_number, location, local_image_address, brand, model, year,
        color, mileage, status, hourly_rental_rate, security_deposit, created_at, updated_at`

// VehicleRepository defines persistence access for fleet vehicles.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
	List(ctx context.Context, limit, offset int) ([]domain.Vehicle, error)
	Search(ctx context.Context, comb Combinator, preds []Predicate, limit, offset int) ([]domain.Vehicle, error)
}

type vehicleRepository struct {
	pool *pgxpool.Pool
}

// NewVehicleRepository returns a Postgres-backed implementation.
func NewVehicleRepository(pool *pgxpool.Pool) VehicleRepository {
	return &vehicleRepository{pool: pool}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	const query = `
        INSERT INTO vehicles (plate_number, location, local_image_address, brand, model, year,
            color, mileage, status, hourly_rental_rate, security_deposit)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		vehicle.PlateNumber,
		vehicle.Location,
		vehicle.LocalImageAddress,
		vehicle.Brand,
		vehicle.Model,
		vehicle.Year,
		vehicle.Color,
		vehicle.Mileage,
		vehicle.Status,
		vehicle.HourlyRentalRate,
		vehicle.SecurityDeposit,
	).Scan(&vehicle.ID, &vehicle.CreatedAt)
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	const query = `
        UPDATE vehicles SET plate_number=$1, location=$2, local_image_address=$3, brand=$4,
            model=$5, year=$6, color=$7, mileage=$8, status=$9, hourly_rental_rate=$10,
            security_deposit=$11, updated_at=NOW()
        WHERE id=$12`

	cmd, err := r.pool.Exec(ctx, query,
		vehicle.PlateNumber,
		vehicle.Location,
		vehicle.LocalImageAddress,
		vehicle.Brand,
		vehicle.Model,
		vehicle.Year,
		vehicle.Color,
		vehicle.Mileage,
		vehicle.Status,
		vehicle.HourlyRentalRate,
		vehicle.SecurityDeposit,
		vehicle.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM vehicles WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE id=$1`, vehicleColumns)

	var vehicle domain.Vehicle
	if err := scanVehicle(r.pool.QueryRow(ctx, query, id), &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) List(ctx context.Context, limit, offset int) ([]domain.Vehicle, error) {
	offset, limit = ClampPage(offset, limit)
	query := fmt.Sprintf(`SELECT %s FROM vehicles ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		vehicleColumns, limit, offset)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVehicles(rows)
}

func (r *vehicleRepository) Search(ctx context.Context, comb Combinator, preds []Predicate, limit, offset int) ([]domain.Vehicle, error) {
	args := []any{}
	where, err := BuildWhere(comb, preds, &args)
	if err != nil {
		return nil, err
	}

	offset, limit = ClampPage(offset, limit)
	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		vehicleColumns, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVehicles(rows)
}

func scanVehicle(row pgx.Row, vehicle *domain.Vehicle) error {
	return row.Scan(
		&vehicle.ID,
		&vehicle.PlateNumber,
		&vehicle.Location,
		&vehicle.LocalImageAddress,
		&vehicle.Brand,
		&vehicle.Model,
		&vehicle.Year,
		&vehicle.Color,
		&vehicle.Mileage,
		&vehicle.Status,
		&vehicle.HourlyRentalRate,
		&vehicle.SecurityDeposit,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)
}

func scanVehicles(rows pgx.Rows) ([]domain.Vehicle, error) {
	var result []domain.Vehicle
	for rows.Next() {
		var vehicle domain.Vehicle
		if err := scanVehicle(rows, &vehicle); err != nil {
			return nil, err
		}
		result = append(result, vehicle)
	}
	return result, rows.Err()
}
