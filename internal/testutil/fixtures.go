package testutil

import (
	"time"

	"github.com/alexanderramin/recap/internal/domain"
)

// SessionOption mutates a test session fixture.
type SessionOption func(*domain.SessionRecord)

func WithDuration(seconds int) SessionOption {
	return func(s *domain.SessionRecord) {
		s.Duration = seconds
		s.EndTime = s.StartTime.Add(time.Duration(seconds) * time.Second)
	}
}

func WithStartTime(t time.Time) SessionOption {
	return func(s *domain.SessionRecord) {
		s.StartTime = t
		s.EndTime = t.Add(time.Duration(s.Duration) * time.Second)
	}
}

func WithDescription(d string) SessionOption {
	return func(s *domain.SessionRecord) {
		s.Description = d
	}
}

func WithCreatedAt(t time.Time) SessionOption {
	return func(s *domain.SessionRecord) {
		s.CreatedAt = t
	}
}

// NewTestSession builds a valid one-hour session for the given activity.
// Options apply in order, so WithStartTime before WithDuration keeps the
// end time consistent.
func NewTestSession(activity string, opts ...SessionOption) *domain.SessionRecord {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s := &domain.SessionRecord{
		ActivityType: activity,
		Duration:     3600,
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		CreatedAt:    start,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestCacheEntry builds a cache entry for the given kind and window.
func NewTestCacheEntry(kind domain.InsightKind, start, end time.Time, hash, text string) *domain.CacheEntry {
	return &domain.CacheEntry{
		Kind:        kind,
		PeriodStart: start,
		PeriodEnd:   end,
		DataHash:    hash,
		Text:        text,
		GeneratedAt: end,
	}
}
