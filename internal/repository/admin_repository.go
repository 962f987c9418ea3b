package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/rental-crm/internal/domain"
)

const adminColumns = `id, name_prefix, first_name, middle_name, last_name, name_suffix,
        gender, birthday, username, email, role, status, password_hash, created_at, updated_at`

// AdminRepository defines persistence access for administrators.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	Update(ctx context.Context, admin *domain.Admin) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	GetByUsernameAndRole(ctx context.Context, username string, role domain.AdminRole) (*domain.Admin, error)
	List(ctx context.Context, limit, offset int) ([]domain.Admin, error)
	Search(ctx context.Context, comb Combinator, preds []Predicate, limit, offset int) ([]domain.Admin, error)
}

type adminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository returns a Postgres-backed implementation.
func NewAdminRepository(pool *pgxpool.Pool) AdminRepository {
	return &adminRepository{pool: pool}
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	const query = `
        INSERT INTO admins (name_prefix, first_name, middle_name, last_name, name_suffix,
            gender, birthday, username, email, role, status, password_hash)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		admin.NamePrefix,
		admin.FirstName,
		admin.MiddleName,
		admin.LastName,
		admin.NameSuffix,
		admin.Gender,
		admin.Birthday,
		admin.Username,
		admin.Email,
		admin.Role,
		admin.Status,
		admin.PasswordHash,
	).Scan(&admin.ID, &admin.CreatedAt)
}

func (r *adminRepository) Update(ctx context.Context, admin *domain.Admin) error {
	const query = `
        UPDATE admins SET name_prefix=$1, first_name=$2, middle_name=$3, last_name=$4,
            name_suffix=$5, gender=$6, birthday=$7, username=$8, email=$9, role=$10,
            status=$11, password_hash=$12, updated_at=NOW()
        WHERE id=$13`

	cmd, err := r.pool.Exec(ctx, query,
		admin.NamePrefix,
		admin.FirstName,
		admin.MiddleName,
		admin.LastName,
		admin.NameSuffix,
		admin.Gender,
		admin.Birthday,
		admin.Username,
		admin.Email,
		admin.Role,
		admin.Status,
		admin.PasswordHash,
		admin.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *adminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM admins WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *adminRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	query := fmt.Sprintf(`SELECT %s FROM admins WHERE id=$1`, adminColumns)

	var admin domain.Admin
	if err := scanAdmin(r.pool.QueryRow(ctx, query, id), &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetByUsernameAndRole looks up one admin by username restricted to a single
// role, matching the login probe order (SuperAdmin first, then GeneralAdmin).
func (r *adminRepository) GetByUsernameAndRole(ctx context.Context, username string, role domain.AdminRole) (*domain.Admin, error) {
	query := fmt.Sprintf(`SELECT %s FROM admins WHERE username=$1 AND role=$2`, adminColumns)

	var admin domain.Admin
	if err := scanAdmin(r.pool.QueryRow(ctx, query, username, role), &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) List(ctx context.Context, limit, offset int) ([]domain.Admin, error) {
	offset, limit = ClampPage(offset, limit)
	query := fmt.Sprintf(`SELECT %s FROM admins ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		adminColumns, limit, offset)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAdmins(rows)
}

func (r *adminRepository) Search(ctx context.Context, comb Combinator, preds []Predicate, limit, offset int) ([]domain.Admin, error) {
	args := []any{}
	where, err := BuildWhere(comb, preds, &args)
	if err != nil {
		return nil, err
	}

	offset, limit = ClampPage(offset, limit)
	query := fmt.Sprintf(`SELECT %s FROM admins WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		adminColumns, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAdmins(rows)
}

func scanAdmin(row pgx.Row, admin *domain.Admin) error {
	return row.Scan(
		&admin.ID,
		&admin.NamePrefix,
		&admin.FirstName,
		&admin.MiddleName,
		&admin.LastName,
		&admin.NameSuffix,
		&admin.Gender,
		&admin.Birthday,
		&admin.Username,
		&admin.Email,
		&admin.Role,
		&admin.Status,
		&admin.PasswordHash,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
}

func scanAdmins(rows pgx.Rows) ([]domain.Admin, error) {
	var result []domain.Admin
	for rows.Next() {
		var admin domain.Admin
		if err := scanAdmin(rows, &admin); err != nil {
			return nil, err
		}
		result = append(result, admin)
	}
	return result, rows.Err()
}
