package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/rental-crm/internal/domain"
)

const customerColumns = `id, name_prefix, first_name, middle_name, last_name, name_suffix,
        gender, birthday, national_id, phone, username, email, address, password_hash,
        created_at, updated_at`

// CustomerRepository defines persistence access for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	GetByUsername(ctx context.Context, username string) (*domain.Customer, error)
	List(ctx context.Context, limit, offset int) ([]domain.Customer, error)
	Search(ctx context.Context, comb Combinator, preds []Predicate, limit, offset int) ([]domain.Customer, error)
}

type customerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository returns a Postgres-backed implementation.
func NewCustomerRepository(pool *pgxpool.Pool) CustomerRepository {
	return &customerRepository{pool: pool}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	const query = `
        INSERT INTO customers (name_prefix, first_name, middle_name, last_name, name_suffix,
            gender, birthday, national_id, phone, username, email, address, password_hash)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		customer.NamePrefix,
		customer.FirstName,
		customer.MiddleName,
		customer.LastName,
		customer.NameSuffix,
		customer.Gender,
		customer.Birthday,
		customer.NationalID,
		customer.Phone,
		customer.Username,
		customer.Email,
		customer.Address,
		customer.PasswordHash,
	).Scan(&customer.ID, &customer.CreatedAt)
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	const query = `
        UPDATE customers SET name_prefix=$1, first_name=$2, middle_name=$3, last_name=$4,
            name_suffix=$5, gender=$6, birthday=$7, national_id=$8, phone=$9, username=$10,
            email=$11, address=$12, password_hash=$13, updated_at=NOW()
        WHERE id=$14`

	cmd, err := r.pool.Exec(ctx, query,
		customer.NamePrefix,
		customer.FirstName,
		customer.MiddleName,
		customer.LastName,
		customer.NameSuffix,
		customer.Gender,
		customer.Birthday,
		customer.NationalID,
		customer.Phone,
		customer.Username,
		customer.Email,
		customer.Address,
		customer.PasswordHash,
		customer.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE id=$1`, customerColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *customerRepository) GetByUsername(ctx context.Context, username string) (*domain.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE username=$1`, customerColumns)
	return r.fetchSingle(ctx, query, username)
}

func (r *customerRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Customer, error) {
	var customer domain.Customer
	if err := scanCustomer(r.pool.QueryRow(ctx, query, arg), &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) List(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	offset, limit = ClampPage(offset, limit)
	query := fmt.Sprintf(`SELECT %s FROM customers ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		customerColumns, limit, offset)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCustomers(rows)
}

func (r *customerRepository) Search(ctx context.Context, comb Combinator, preds []Predicate, limit, offset int) ([]domain.Customer, error) {
	args := []any{}
	where, err := BuildWhere(comb, preds, &args)
	if err != nil {
		return nil, err
	}

	offset, limit = ClampPage(offset, limit)
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		customerColumns, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCustomers(rows)
}

func scanCustomer(row pgx.Row, customer *domain.Customer) error {
	return row.Scan(
		&customer.ID,
		&customer.NamePrefix,
		&customer.FirstName,
		&customer.MiddleName,
		&customer.LastName,
		&customer.NameSuffix,
		&customer.Gender,
		&customer.Birthday,
		&customer.NationalID,
		&customer.Phone,
		&customer.Username,
		&customer.Email,
		&customer.Address,
		&customer.PasswordHash,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
}

func scanCustomers(rows pgx.Rows) ([]domain.Customer, error) {
	var result []domain.Customer
	for rows.Next() {
		var customer domain.Customer
		if err := scanCustomer(rows, &customer); err != nil {
			return nil, err
		}
		result = append(result, customer)
	}
	return result, rows.Err()
}
