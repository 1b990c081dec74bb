package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/recap/internal/db"
	"github.com/alexanderramin/recap/internal/domain"
)

// SQLiteInsightCacheRepo implements InsightCacheRepo on SQLite.
type SQLiteInsightCacheRepo struct {
	db db.DBTX
}

func NewSQLiteInsightCacheRepo(db db.DBTX) *SQLiteInsightCacheRepo {
	return &SQLiteInsightCacheRepo{db: db}
}

const cacheColumns = `id, insight_type, generated_at, data_hash, insight_text, time_period_start, time_period_end`

func (r *SQLiteInsightCacheRepo) Get(ctx context.Context, kind domain.InsightKind, start, end time.Time) (*domain.CacheEntry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+cacheColumns+` FROM insights_cache
		WHERE insight_type = ? AND time_period_start = ? AND time_period_end = ?`,
		string(kind), toUnix(start), toUnix(end))

	e, err := scanCacheEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get cached insight: %w", err)
	}
	return e, nil
}

// Put upserts on the (insight_type, time_period_start, time_period_end)
// key in a single statement, so concurrent writers for the same window
// cannot produce duplicate rows.
func (r *SQLiteInsightCacheRepo) Put(ctx context.Context, e *domain.CacheEntry) error {
	if e.GeneratedAt.IsZero() {
		e.GeneratedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO insights_cache
			(insight_type, generated_at, data_hash, insight_text, time_period_start, time_period_end)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(insight_type, time_period_start, time_period_end) DO UPDATE SET
			generated_at = excluded.generated_at,
			data_hash    = excluded.data_hash,
			insight_text = excluded.insight_text`,
		string(e.Kind),
		toUnix(e.GeneratedAt),
		e.DataHash,
		e.Text,
		toUnix(e.PeriodStart),
		toUnix(e.PeriodEnd),
	)
	if err != nil {
		return fmt.Errorf("upsert cached insight: %w", err)
	}
	return nil
}

func (r *SQLiteInsightCacheRepo) List(ctx context.Context) ([]domain.CacheEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+cacheColumns+` FROM insights_cache
		ORDER BY time_period_start DESC, insight_type ASC`)
	if err != nil {
		return nil, fmt.Errorf("list cached insights: %w", err)
	}
	defer rows.Close()

	var out []domain.CacheEntry
	for rows.Next() {
		e, err := scanCacheEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cached insight: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cached insights: %w", err)
	}
	return out, nil
}

func (r *SQLiteInsightCacheRepo) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM insights_cache WHERE time_period_end < ?`, toUnix(cutoff))
	if err != nil {
		return 0, fmt.Errorf("prune cached insights: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune rows affected: %w", err)
	}
	return n, nil
}

func scanCacheEntry(row scanner) (*domain.CacheEntry, error) {
	var (
		e         domain.CacheEntry
		kind      string
		generated int64
		start     int64
		end       int64
	)
	err := row.Scan(&e.ID, &kind, &generated, &e.DataHash, &e.Text, &start, &end)
	if err != nil {
		return nil, err
	}
	e.Kind = domain.InsightKind(kind)
	e.GeneratedAt = fromUnix(generated)
	e.PeriodStart = fromUnix(start)
	e.PeriodEnd = fromUnix(end)
	return &e, nil
}
