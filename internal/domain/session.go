package domain

import (
	"errors"
	"time"
)

// SessionRecord is a single logged focus session. Records are immutable
// facts: once written they are never updated by the insight engine.
type SessionRecord struct {
	ID           int64
	ActivityType string
	Duration     int // seconds
	StartTime    time.Time
	EndTime      time.Time
	Description  string
	CreatedAt    time.Time
}

var (
	ErrEmptyActivity   = errors.New("session activity type is empty")
	ErrInvalidDuration = errors.New("session duration must be positive")
	ErrEndBeforeStart  = errors.New("session end time precedes start time")
)

// Validate checks the record invariants enforced at ingest time.
// Aggregation tolerates malformed rows by dropping them; ingest does not.
func (s *SessionRecord) Validate() error {
	if s.ActivityType == "" {
		return ErrEmptyActivity
	}
	if s.Duration <= 0 {
		return ErrInvalidDuration
	}
	if s.EndTime.Before(s.StartTime) {
		return ErrEndBeforeStart
	}
	return nil
}

// HasDescription reports whether the session carries free-text notes.
func (s *SessionRecord) HasDescription() bool {
	return s.Description != ""
}
