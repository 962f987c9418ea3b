package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/rental-crm/internal/domain"
)

const commentColumns = `id, subject, content, status, customer_id, created_at, updated_at`

// CommentRepository defines persistence access for customer comments.
// List and Search accept an optional owner for customer narrowing.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	List(ctx context.Context, owner *uuid.UUID, limit, offset int) ([]domain.Comment, error)
	Search(ctx context.Context, comb Combinator, preds []Predicate, owner *uuid.UUID, limit, offset int) ([]domain.Comment, error)
}

type commentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository returns a Postgres-backed implementation.
func NewCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &commentRepository{pool: pool}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	const query = `
        INSERT INTO comments (subject, content, status, customer_id)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		comment.Subject,
		comment.Content,
		comment.Status,
		comment.CustomerID,
	).Scan(&comment.ID, &comment.CreatedAt)
}

func (r *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	const query = `
        UPDATE comments SET subject=$1, content=$2, status=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		comment.Subject,
		comment.Content,
		comment.Status,
		comment.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	query := fmt.Sprintf(`SELECT %s FROM comments WHERE id=$1`, commentColumns)

	var comment domain.Comment
	if err := scanComment(r.pool.QueryRow(ctx, query, id), &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) List(ctx context.Context, owner *uuid.UUID, limit, offset int) ([]domain.Comment, error) {
	offset, limit = ClampPage(offset, limit)

	args := []any{}
	where := "1=1"
	if owner != nil {
		args = append(args, *owner)
		where = "customer_id=$1"
	}
	query := fmt.Sprintf(`SELECT %s FROM comments WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		commentColumns, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComments(rows)
}

func (r *commentRepository) Search(ctx context.Context, comb Combinator, preds []Predicate, owner *uuid.UUID, limit, offset int) ([]domain.Comment, error) {
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
	query := fmt.Sprintf(`SELECT %s FROM comments WHERE %s%s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		commentColumns, conditions, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComments(rows)
}

func scanComment(row pgx.Row, comment *domain.Comment) error {
	return row.Scan(
		&comment.ID,
		&comment.Subject,
		&comment.Content,
		&comment.Status,
		&comment.CustomerID,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
}

func scanComments(rows pgx.Rows) ([]domain.Comment, error) {
	var result []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		if err := scanComment(rows, &comment); err != nil {
			return nil, err
		}
		result = append(result, comment)
	}
	return result, rows.Err()
}
