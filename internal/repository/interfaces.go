package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/recap/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// SessionRepo provides read/write access to logged focus sessions.
// Sessions are append-only from the engine's point of view.
type SessionRepo interface {
	Create(ctx context.Context, s *domain.SessionRecord) error
	GetByID(ctx context.Context, id int64) (*domain.SessionRecord, error)

	// ListByWindow returns sessions whose start time falls in [start, end),
	// ordered by start time ascending.
	ListByWindow(ctx context.Context, start, end time.Time) ([]domain.SessionRecord, error)

	// ListByActivityWindow is ListByWindow restricted to one activity type.
	ListByActivityWindow(ctx context.Context, activity string, start, end time.Time) ([]domain.SessionRecord, error)

	// ListRecent returns sessions started within the last `days` days,
	// most recent first.
	ListRecent(ctx context.Context, days int) ([]domain.SessionRecord, error)
}

// InsightCacheRepo provides access to the persisted insight cache.
// Get and Put are the only operations the orchestrator uses; List and
// PruneOlderThan serve inspection and caller-owned garbage collection.
type InsightCacheRepo interface {
	// Get returns the entry for the exact (kind, start, end) key, or
	// ErrNotFound when no entry exists.
	Get(ctx context.Context, kind domain.InsightKind, start, end time.Time) (*domain.CacheEntry, error)

	// Put atomically upserts the entry on its (kind, start, end) key.
	// The last writer for a key wins; no duplicate rows are ever created.
	Put(ctx context.Context, e *domain.CacheEntry) error

	// List returns all cached entries, newest window first.
	List(ctx context.Context) ([]domain.CacheEntry, error)

	// PruneOlderThan deletes entries whose window ended before cutoff and
	// returns the number of rows removed.
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
