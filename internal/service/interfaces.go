package service

import (
	"context"
	"time"

	"github.com/alexanderramin/recap/internal/domain"
)

type SessionService interface {
	Log(ctx context.Context, s *domain.SessionRecord) error
	GetByID(ctx context.Context, id int64) (*domain.SessionRecord, error)
	ListRecent(ctx context.Context, days int) ([]domain.SessionRecord, error)
	ListByWindow(ctx context.Context, window domain.Window) ([]domain.SessionRecord, error)

	// Summarize aggregates a window's sessions without touching the
	// cache or the LLM.
	Summarize(ctx context.Context, window domain.Window) (*domain.Summary, error)
}

// InsightResult is what the orchestrator hands back to the caller:
// the text plus where it came from.
type InsightResult struct {
	Text        string
	Summary     domain.Summary
	FromCache   bool
	ServedStale bool
	GeneratedAt time.Time
}

type InsightService interface {
	// GetInsight returns the insight for a window, serving the cached
	// text when the window's underlying data is unchanged.
	GetInsight(ctx context.Context, window domain.Window) (*InsightResult, error)

	// Regenerate always calls the generator, bypassing the cache read.
	Regenerate(ctx context.Context, window domain.Window) (*InsightResult, error)
}

type CacheService interface {
	List(ctx context.Context) ([]domain.CacheEntry, error)
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
