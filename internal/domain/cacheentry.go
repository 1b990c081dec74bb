package domain

import "time"

// CacheEntry is one persisted insight. Identity is the (Kind, PeriodStart,
// PeriodEnd) triple; validity is DataHash. At most one row exists per
// identity, and a conflicting write replaces hash, text and timestamp.
type CacheEntry struct {
	ID          int64
	Kind        InsightKind
	PeriodStart time.Time
	PeriodEnd   time.Time
	DataHash    string
	Text        string
	GeneratedAt time.Time
}

// Matches reports whether the entry is still valid for the given data hash.
func (e *CacheEntry) Matches(hash string) bool {
	return e.DataHash == hash
}
