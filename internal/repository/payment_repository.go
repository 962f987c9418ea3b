package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/rental-crm/internal/domain"
)

const paymentColumns = `id, payment_datetime, payment_method, transaction_id, amount,
        payment_status, invoice_id, created_at, updated_at`

// PaymentRepository defines persistence access for payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	Update(ctx context.Context, payment *domain.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	List(ctx context.Context, limit, offset int) ([]domain.Payment, error)
	Search(ctx context.Context, comb Combinator, preds []Predicate, limit, offset int) ([]domain.Payment, error)
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository returns a Postgres-backed implementation.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	const query = `
        INSERT INTO payments (payment_datetime, payment_method, transaction_id, amount,
            payment_status, invoice_id)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		payment.PaymentDatetime,
		payment.PaymentMethod,
		payment.TransactionID,
		payment.Amount,
		payment.PaymentStatus,
		payment.InvoiceID,
	).Scan(&payment.ID, &payment.CreatedAt)
}

func (r *paymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	const query = `
        UPDATE payments SET payment_datetime=$1, payment_method=$2, transaction_id=$3,
            amount=$4, payment_status=$5, invoice_id=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		payment.PaymentDatetime,
		payment.PaymentMethod,
		payment.TransactionID,
		payment.Amount,
		payment.PaymentStatus,
		payment.InvoiceID,
		payment.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM payments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE id=$1`, paymentColumns)

	var payment domain.Payment
	if err := scanPayment(r.pool.QueryRow(ctx, query, id), &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) List(ctx context.Context, limit, offset int) ([]domain.Payment, error) {
	offset, limit = ClampPage(offset, limit)
	query := fmt.Sprintf(`SELECT %s FROM payments ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		paymentColumns, limit, offset)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *paymentRepository) Search(ctx context.Context, comb Combinator, preds []Predicate, limit, offset int) ([]domain.Payment, error) {
	args := []any{}
	where, err := BuildWhere(comb, preds, &args)
	if err != nil {
		return nil, err
	}

	offset, limit = ClampPage(offset, limit)
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		paymentColumns, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func scanPayment(row pgx.Row, payment *domain.Payment) error {
	return row.Scan(
		&payment.ID,
		&payment.PaymentDatetime,
		&payment.PaymentMethod,
		&payment.TransactionID,
		&payment.Amount,
		&payment.PaymentStatus,
		&payment.InvoiceID,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
}

func scanPayments(rows pgx.Rows) ([]domain.Payment, error) {
	var result []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		if err := scanPayment(rows, &payment); err != nil {
			return nil, err
		}
		result = append(result, payment)
	}
	return result, rows.Err()
}
