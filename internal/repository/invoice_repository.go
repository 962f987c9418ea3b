package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/rental-crm/internal/domain"
)

const invoiceColumns = `id, total_amount, tax, discount, final_amount, status, created_at, updated_at`

// InvoiceRepository defines persistence access for invoices. A customer
// reaches an invoice only through one of their rentals, so the customer-
// scoped queries join through the rentals table.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	Update(ctx context.Context, invoice *domain.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, limit, offset int) ([]domain.Invoice, error)
	ListForCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]domain.Invoice, error)
	OwnedByCustomer(ctx context.Context, invoiceID, customerID uuid.UUID) (bool, error)
	Search(ctx context.Context, comb Combinator, preds []Predicate, limit, offset int) ([]domain.Invoice, error)
}

type invoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository returns a Postgres-backed implementation.
func NewInvoiceRepository(pool *pgxpool.Pool) InvoiceRepository {
	return &invoiceRepository{pool: pool}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	const query = `
        INSERT INTO invoices (total_amount, tax, discount, final_amount, status)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		invoice.TotalAmount,
		invoice.Tax,
		invoice.Discount,
		invoice.FinalAmount,
		invoice.Status,
	).Scan(&invoice.ID, &invoice.CreatedAt)
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) error {
	const query = `
        UPDATE invoices SET total_amount=$1, tax=$2, discount=$3, final_amount=$4, status=$5,
            updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		invoice.TotalAmount,
		invoice.Tax,
		invoice.Discount,
		invoice.FinalAmount,
		invoice.Status,
		invoice.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	query := fmt.Sprintf(`SELECT %s FROM invoices WHERE id=$1`, invoiceColumns)

	var invoice domain.Invoice
	if err := scanInvoice(r.pool.QueryRow(ctx, query, id), &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context, limit, offset int) ([]domain.Invoice, error) {
	offset, limit = ClampPage(offset, limit)
	query := fmt.Sprintf(`SELECT %s FROM invoices ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		invoiceColumns, limit, offset)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInvoices(rows)
}

// ListForCustomer narrows to invoices reachable through the customer's
// rentals. The narrowing is part of the query itself so pagination stays
// correct.
func (r *invoiceRepository) ListForCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]domain.Invoice, error) {
	offset, limit = ClampPage(offset, limit)
	query := fmt.Sprintf(`
        SELECT DISTINCT i.id, i.total_amount, i.tax, i.discount, i.final_amount, i.status,
               i.created_at, i.updated_at
        FROM invoices i
        JOIN rentals r ON r.invoice_id = i.id
        WHERE r.customer_id = $1
        ORDER BY i.created_at DESC LIMIT %d OFFSET %d`, limit, offset)

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInvoices(rows)
}

// OwnedByCustomer reports whether a rental of the customer references the
// invoice.
func (r *invoiceRepository) OwnedByCustomer(ctx context.Context, invoiceID, customerID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM rentals WHERE invoice_id=$1 AND customer_id=$2)`

	var owned bool
	if err := r.pool.QueryRow(ctx, query, invoiceID, customerID).Scan(&owned); err != nil {
		return false, err
	}
	return owned, nil
}

func (r *invoiceRepository) Search(ctx context.Context, comb Combinator, preds []Predicate, limit, offset int) ([]domain.Invoice, error) {
	args := []any{}
	where, err := BuildWhere(comb, preds, &args)
	if err != nil {
		return nil, err
	}

	offset, limit = ClampPage(offset, limit)
	query := fmt.Sprintf(`SELECT %s FROM invoices WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		invoiceColumns, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInvoices(rows)
}

func scanInvoice(row pgx.Row, invoice *domain.Invoice) error {
	return row.Scan(
		&invoice.ID,
		&invoice.TotalAmount,
		&invoice.Tax,
		&invoice.Discount,
		&invoice.FinalAmount,
		&invoice.Status,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	)
}

func scanInvoices(rows pgx.Rows) ([]domain.Invoice, error) {
	var result []domain.Invoice
	for rows.Next() {
		var invoice domain.Invoice
		if err := scanInvoice(rows, &invoice); err != nil {
			return nil, err
		}
		result = append(result, invoice)
	}
	return result, rows.Err()
}
