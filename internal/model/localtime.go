package model

import (
	"fmt"
	"strings"
	"time"
)

// localLayout matches the backend's LocalDateTime serialization, which
// carries no zone offset (e.g. "2026-01-15T09:00:00").  Timestamps are
// interpreted in the client's local zone, the same way the browser
// front-end this tool replaces interpreted them.
const localLayout = "2006-01-02T15:04:05"

// LocalTime wraps time.Time with JSON encoding compatible with the
// backend's zone-less timestamps.  The zero value marshals to "" and is
// reported by IsZero like a plain time.Time.
type LocalTime struct {
	time.Time
}

// NewLocalTime wraps an instant for transmission to the backend.
func NewLocalTime(t time.Time) LocalTime { return LocalTime{Time: t} }

// MarshalJSON renders the instant in the backend's zone-less layout.
func (t LocalTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.Format(localLayout) + `"`), nil
}

// UnmarshalJSON accepts the backend layout with or without fractional
// seconds, and treats empty/null as the zero instant.
func (t *LocalTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*t = LocalTime{}
		return nil
	}
	// Jackson may append fractional seconds; drop them before parsing.
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	parsed, err := time.ParseInLocation(localLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	*t = LocalTime{Time: parsed}
	return nil
}

// SameLocalDay reports whether two instants fall on the same calendar day
// in the local zone, ignoring the time-of-day component.
func SameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
