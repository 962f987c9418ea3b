package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/rental-crm/internal/domain"
)

const postColumns = `id, thumbnail, subject, content, admin_id, created_at, updated_at`

// PostRepository defines persistence access for announcement posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	List(ctx context.Context, limit, offset int) ([]domain.Post, error)
	Search(ctx context.Context, comb Combinator, preds []Predicate, limit, offset int) ([]domain.Post, error)
}

type postRepository struct {
	pool *pgxpool.Pool
}

// NewPostRepository returns a Postgres-backed implementation.
func NewPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postRepository{pool: pool}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	const query = `
        INSERT INTO posts (thumbnail, subject, content, admin_id)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		post.Thumbnail,
		post.Subject,
		post.Content,
		post.AdminID,
	).Scan(&post.ID, &post.CreatedAt)
}

func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	const query = `
        UPDATE posts SET thumbnail=$1, subject=$2, content=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		post.Thumbnail,
		post.Subject,
		post.Content,
		post.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts WHERE id=$1`, postColumns)

	var post domain.Post
	if err := scanPost(r.pool.QueryRow(ctx, query, id), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	offset, limit = ClampPage(offset, limit)
	query := fmt.Sprintf(`SELECT %s FROM posts ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		postColumns, limit, offset)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *postRepository) Search(ctx context.Context, comb Combinator, preds []Predicate, limit, offset int) ([]domain.Post, error) {
	args := []any{}
	where, err := BuildWhere(comb, preds, &args)
	if err != nil {
		return nil, err
	}

	offset, limit = ClampPage(offset, limit)
	query := fmt.Sprintf(`SELECT %s FROM posts WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		postColumns, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func scanPost(row pgx.Row, post *domain.Post) error {
	return row.Scan(
		&post.ID,
		&post.Thumbnail,
		&post.Subject,
		&post.Content,
		&post.AdminID,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
}

func scanPosts(rows pgx.Rows) ([]domain.Post, error) {
	var result []domain.Post
	for rows.Next() {
		var post domain.Post
		if err := scanPost(rows, &post); err != nil {
			return nil, err
		}
		result = append(result, post)
	}
	return result, rows.Err()
}
