package repository

import (
	"database/sql"
	"time"
)

// toUnix converts a time.Time to the Unix-seconds representation used by
// the INTEGER timestamp columns.
func toUnix(t time.Time) int64 {
	return t.UTC().Unix()
}

// fromUnix converts a stored Unix-seconds value back to a UTC time.Time.
func fromUnix(v int64) time.Time {
	return time.Unix(v, 0).UTC()
}

// nullableString converts a string to a value suitable for a nullable
// TEXT column. Empty strings are stored as SQL NULL.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// stringOrEmpty unwraps a sql.NullString.
func stringOrEmpty(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}
