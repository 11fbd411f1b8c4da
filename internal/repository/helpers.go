package repository

import (
	"database/sql"
	"time"
)

// nullableString converts an empty string to SQL NULL.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullableInt converts a zero value to SQL NULL.
func nullableInt(v int) any {
	if v == 0 {
		return nil
	}
	return v
}

// stringOrEmpty unwraps a sql.NullString.
func stringOrEmpty(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

// intOrZero unwraps a sql.NullInt64 into an int.
func intOrZero(v sql.NullInt64) int {
	if !v.Valid {
		return 0
	}
	return int(v.Int64)
}

// parseTimestamp parses an RFC3339 timestamp, returning the zero time on
// malformed input rather than failing the whole scan.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
