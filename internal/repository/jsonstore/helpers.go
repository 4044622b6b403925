package jsonstore

import (
	"fmt"
	"time"
)

// Instants are persisted in RFC 3339 with nanoseconds so a parse/format
// round trip reproduces the stored bytes.
func instant(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func instantPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := instant(*t)
	return &s
}

func parseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

func parseInstantPtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseInstant(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseInstantOrZero tolerates records written before the field existed.
func parseInstantOrZero(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := parseInstant(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
