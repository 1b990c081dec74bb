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

// SQLiteSessionRepo implements SessionRepo on SQLite.
type SQLiteSessionRepo struct {
	db db.DBTX
}

func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

const sessionColumns = `id, activity_type, duration, start_time, end_time, description, created_at`

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.SessionRecord) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("validate session: %w", err)
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (activity_type, duration, start_time, end_time, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.ActivityType,
		s.Duration,
		toUnix(s.StartTime),
		toUnix(s.EndTime),
		nullableString(s.Description),
		toUnix(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("session insert id: %w", err)
	}
	s.ID = id
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id int64) (*domain.SessionRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)

	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session %d: %w", id, err)
	}
	return s, nil
}

func (r *SQLiteSessionRepo) ListByWindow(ctx context.Context, start, end time.Time) ([]domain.SessionRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+sessionColumns+` FROM sessions
		WHERE start_time >= ? AND start_time < ?
		ORDER BY start_time ASC`,
		toUnix(start), toUnix(end))
	if err != nil {
		return nil, fmt.Errorf("list sessions by window: %w", err)
	}
	defer rows.Close()

	return collectSessions(rows)
}

func (r *SQLiteSessionRepo) ListByActivityWindow(ctx context.Context, activity string, start, end time.Time) ([]domain.SessionRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+sessionColumns+` FROM sessions
		WHERE activity_type = ? AND start_time >= ? AND start_time < ?
		ORDER BY start_time ASC`,
		activity, toUnix(start), toUnix(end))
	if err != nil {
		return nil, fmt.Errorf("list sessions by activity: %w", err)
	}
	defer rows.Close()

	return collectSessions(rows)
}

func (r *SQLiteSessionRepo) ListRecent(ctx context.Context, days int) ([]domain.SessionRecord, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+sessionColumns+` FROM sessions
		WHERE start_time >= ?
		ORDER BY start_time DESC`,
		toUnix(cutoff))
	if err != nil {
		return nil, fmt.Errorf("list recent sessions: %w", err)
	}
	defer rows.Close()

	return collectSessions(rows)
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row scanner) (*domain.SessionRecord, error) {
	var (
		s           domain.SessionRecord
		start       int64
		end         int64
		created     int64
		description sql.NullString
	)
	err := row.Scan(&s.ID, &s.ActivityType, &s.Duration, &start, &end, &description, &created)
	if err != nil {
		return nil, err
	}
	s.StartTime = fromUnix(start)
	s.EndTime = fromUnix(end)
	s.CreatedAt = fromUnix(created)
	s.Description = stringOrEmpty(description)
	return &s, nil
}

func collectSessions(rows *sql.Rows) ([]domain.SessionRecord, error) {
	var out []domain.SessionRecord
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}
