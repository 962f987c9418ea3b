package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/rental-crm/internal/domain"
)

const rentalColumns = `id, rental_start_date, rental_end_date, total_amount, customer_id,
        vehicle_id, invoice_id, created_at, updated_at`

// RentalRepository defines persistence access for rentals. List and Search
// accept an optional owner: when set, the query is narrowed to that
// customer's rows before pagination applies.
type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	Update(ctx context.Context, rental *domain.Rental) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error)
	List(ctx context.Context, owner *uuid.UUID, limit, offset int) ([]domain.Rental, error)
	Search(ctx context.Context, comb Combinator, preds []Predicate, owner *uuid.UUID, limit, offset int) ([]domain.Rental, error)
}

type rentalRepository struct {
	pool *pgxpool.Pool
}

// NewRentalRepository returns a Postgres-backed implementation.
func NewRentalRepository(pool *pgxpool.Pool) RentalRepository {
	return &rentalRepository{pool: pool}
}

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	const query = `
        INSERT INTO rentals (rental_start_date, rental_end_date, total_amount, customer_id,
            vehicle_id, invoice_id)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		rental.RentalStartDate,
		rental.RentalEndDate,
		rental.TotalAmount,
		rental.CustomerID,
		rental.VehicleID,
		rental.InvoiceID,
	).Scan(&rental.ID, &rental.CreatedAt)
}

func (r *rentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	const query = `
        UPDATE rentals SET rental_start_date=$1, rental_end_date=$2, total_amount=$3,
            customer_id=$4, vehicle_id=$5, invoice_id=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		rental.RentalStartDate,
		rental.RentalEndDate,
		rental.TotalAmount,
		rental.CustomerID,
		rental.VehicleID,
		rental.InvoiceID,
		rental.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *rentalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM rentals WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	query := fmt.Sprintf(`SELECT %s FROM rentals WHERE id=$1`, rentalColumns)

	var rental domain.Rental
	if err := scanRental(r.pool.QueryRow(ctx, query, id), &rental); err != nil {
		return nil, err
	}
	return &rental, nil
}

func (r *rentalRepository) List(ctx context.Context, owner *uuid.UUID, limit, offset int) ([]domain.Rental, error) {
	offset, limit = ClampPage(offset, limit)

	args := []any{}
	where := "1=1"
	if owner != nil {
		args = append(args, *owner)
		where = "customer_id=$1"
	}
	query := fmt.Sprintf(`SELECT %s FROM rentals WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		rentalColumns, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRentals(rows)
}

func (r *rentalRepository) Search(ctx context.Context, comb Combinator, preds []Predicate, owner *uuid.UUID, limit, offset int) ([]domain.Rental, error) {
	args := []any{}
	conditions := ""
	if owner != nil {
		args = append(args, *owner)
		conditions = "customer_id=$1 AND "
	}

	where, err := BuildWhere(comb, preds, &args)
	if err != nil {
		return nil, err
	}

	offset, limit = ClampPage(offset, limit)
	query := fmt.Sprintf(`SELECT %s FROM rentals WHERE %s%s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		rentalColumns, conditions, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRentals(rows)
}

func scanRental(row pgx.Row, rental *domain.Rental) error {
	return row.Scan(
		&rental.ID,
		&rental.RentalStartDate,
		&rental.RentalEndDate,
		&rental.TotalAmount,
		&rental.CustomerID,
		&rental.VehicleID,
		&rental.InvoiceID,
		&rental.CreatedAt,
		&rental.UpdatedAt,
	)
}

func scanRentals(rows pgx.Rows) ([]domain.Rental, error) {
	var result []domain.Rental
	for rows.Next() {
		var rental domain.Rental
		if err := scanRental(rows, &rental); err != nil {
			return nil, err
		}
		result = append(result, rental)
	}
	return result, rows.Err()
}
