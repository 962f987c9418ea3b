package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/rental-crm/internal/config"
	util "github.com/spec-kit/rental-crm/pkg/util"
)

// Table names travel inside archives, so they are validated before any of
// them is interpolated into a statement.
var tableNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// restoreRank orders known tables parents-first so foreign key checks pass
// during reinsertion. Unknown tables restore after all known ones.
var restoreRank = map[string]int{
	"customers":          0,
	"admins":             0,
	"vehicles":           0,
	"invoices":           1,
	"vehicle_insurances": 1,
	"posts":              1,
	"comments":           1,
	"rentals":            2,
	"payments":           2,
}

// RestoreResult reports a completed restore.
type RestoreResult struct {
	Status        string `json:"status"`
	RestoredAtUTC string `json:"restored_at_utc"`
}

// Service produces signed database snapshots and replays them.
type Service struct {
	pool   *pgxpool.Pool
	secret []byte
	logger *zap.Logger
}

// NewService wires the backup service.
func NewService(pool *pgxpool.Pool, cfg config.BackupConfig, logger *zap.Logger) *Service {
	return &Service{pool: pool, secret: []byte(cfg.Secret), logger: logger}
}

// Backup dumps every base table in the public schema into a signed archive
// and returns the container bytes with a timestamped filename.
func (s *Service) Backup(ctx context.Context) ([]byte, string, error) {
	tables, err := s.listTables(ctx)
	if err != nil {
		return nil, "", util.NewInternalError(fmt.Errorf("list tables: %w", err))
	}

	writer := NewWriter()
	for _, table := range tables {
		rows, err := s.dumpTable(ctx, table)
		if err != nil {
			return nil, "", util.NewInternalError(fmt.Errorf("dump table %s: %w", table, err))
		}
		if err := writer.AddTable(table, rows); err != nil {
			return nil, "", util.NewInternalError(err)
		}
	}

	timestamp := time.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
	data, err := writer.Finalize(s.secret, timestamp)
	if err != nil {
		return nil, "", util.NewInternalError(err)
	}

	s.logger.Info("backup created",
		zap.Int("tables", len(tables)),
		zap.Int("size_bytes", len(data)),
		zap.String("timestamp", timestamp),
	)
	return data, fmt.Sprintf("backup_%s.zip", timestamp), nil
}

// Restore verifies the archive signature and replays every table entry in a
// single transaction. Nothing is written before verification succeeds, and a
// failure at any point rolls the database back to its prior state.
func (s *Service) Restore(ctx context.Context, data []byte) (*RestoreResult, error) {
	archive, err := Open(data)
	if err != nil {
		return nil, util.NewInvalidArchive(err.Error())
	}
	if err := archive.Verify(s.secret); err != nil {
		return nil, util.NewSignatureMismatch()
	}

	tables := archive.TableNames()
	for _, table := range tables {
		if !tableNamePattern.MatchString(table) {
			return nil, util.NewInvalidArchive(fmt.Sprintf("illegal table entry name %q", table))
		}
	}
	orderTables(tables)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, util.NewInternalError(err)
	}
	defer tx.Rollback(ctx)

	for _, table := range tables {
		rows, err := archive.ReadTable(table)
		if err != nil {
			return nil, util.NewInvalidArchive(err.Error())
		}
		if err := s.restoreTable(ctx, tx, table, rows); err != nil {
			return nil, util.NewInternalError(fmt.Errorf("restore table %s: %w", table, err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, util.NewInternalError(err)
	}

	restoredAt := time.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
	s.logger.Info("restore completed",
		zap.Int("tables", len(tables)),
		zap.String("backup_time_utc", archive.Metadata().BackupTimeUTC),
	)
	return &RestoreResult{Status: "restore completed", RestoredAtUTC: restoredAt}, nil
}

func (s *Service) listTables(ctx context.Context) ([]string, error) {
	const query = `
        SELECT table_name FROM information_schema.tables
        WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
        ORDER BY table_name`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func (s *Service) dumpTable(ctx context.Context, table string) ([]byte, error) {
	query := fmt.Sprintf(
		`SELECT COALESCE(jsonb_agg(to_jsonb(t.*)), '[]'::jsonb) FROM %s t`,
		pgx.Identifier{table}.Sanitize(),
	)

	var raw []byte
	if err := s.pool.QueryRow(ctx, query).Scan(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *Service) restoreTable(ctx context.Context, tx pgx.Tx, table string, rows []map[string]any) error {
	quoted := pgx.Identifier{table}.Sanitize()
	if _, err := tx.Exec(ctx, fmt.Sprintf(`TRUNCATE TABLE %s CASCADE`, quoted)); err != nil {
		return err
	}

	for _, row := range rows {
		columns := make([]string, 0, len(row))
		for col := range row {
			columns = append(columns, col)
		}
		sort.Strings(columns)

		quotedCols := make([]string, len(columns))
		placeholders := make([]string, len(columns))
		args := make([]any, len(columns))
		for i, col := range columns {
			quotedCols[i] = pgx.Identifier{col}.Sanitize()
			placeholders[i] = fmt.Sprintf("$%d", i+1)
			args[i] = toBindValue(row[col])
		}

		query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
			quoted, strings.Join(quotedCols, ", "), strings.Join(placeholders, ", "))
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}
	}
	return nil
}

// toBindValue turns decoded JSON values into forms pgx can bind. Numbers are
// passed as their exact text, and structured values go back to JSON for
// jsonb columns.
func toBindValue(v any) any {
	switch val := v.(type) {
	case json.Number:
		return val.String()
	case map[string]any, []any:
		raw, err := json.Marshal(val)
		if err != nil {
			return v
		}
		return raw
	default:
		return v
	}
}

// orderTables sorts entries parents-first. Ties within a rank break on the
// table name, so the replay order never depends on archive layout.
func orderTables(tables []string) {
	rank := func(t string) int {
		if r, ok := restoreRank[t]; ok {
			return r
		}
		return len(restoreRank)
	}
	sort.Slice(tables, func(i, j int) bool {
		ri, rj := rank(tables[i]), rank(tables[j])
		if ri != rj {
			return ri < rj
		}
		return tables[i] < tables[j]
	})
}
