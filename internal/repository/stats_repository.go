package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Stats aggregates entity counts for the admin dashboard. PostCount and
// AdminCount are only populated for super admins.
type Stats struct {
	VehicleCount       int64  `json:"vehicle_count"`
	CommentCount       int64  `json:"comment_count"`
	PostCount          *int64 `json:"post_count,omitempty"`
	InvoiceCount       int64  `json:"invoice_count"`
	CustomerCount      int64  `json:"customer_count"`
	AdminCount         *int64 `json:"admin_count,omitempty"`
	TodayPurchaseCount int64  `json:"today_purchase_count"`
}

// StatsRepository computes dashboard counters.
type StatsRepository interface {
	Collect(ctx context.Context, includeRestricted bool) (*Stats, error)
}

type statsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository returns a Postgres-backed implementation.
func NewStatsRepository(pool *pgxpool.Pool) StatsRepository {
	return &statsRepository{pool: pool}
}

// Collect gathers all counters in a single round trip. includeRestricted
// adds the post and admin counts reserved for super admins.
func (r *statsRepository) Collect(ctx context.Context, includeRestricted bool) (*Stats, error) {
	const query = `
        SELECT
            (SELECT COUNT(*) FROM vehicles),
            (SELECT COUNT(*) FROM comments),
            (SELECT COUNT(*) FROM posts),
            (SELECT COUNT(*) FROM invoices),
            (SELECT COUNT(*) FROM customers),
            (SELECT COUNT(*) FROM admins),
            (SELECT COUNT(*) FROM payments WHERE created_at::date = CURRENT_DATE)`

	var stats Stats
	var postCount, adminCount int64
	if err := r.pool.QueryRow(ctx, query).Scan(
		&stats.VehicleCount,
		&stats.CommentCount,
		&postCount,
		&stats.InvoiceCount,
		&stats.CustomerCount,
		&adminCount,
		&stats.TodayPurchaseCount,
	); err != nil {
		return nil, err
	}

	if includeRestricted {
		stats.PostCount = &postCount
		stats.AdminCount = &adminCount
	}
	return &stats, nil
}
