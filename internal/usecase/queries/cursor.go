package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	MaxListLimit     = 200
	DefaultListLimit = 20
	CursorVersionV1  = "v1"
)

type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeAfterCursor uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id int64) string {
	cursorData := fmt.Sprintf("%s:%d-%d", CursorVersionV1, t.UnixMicro(), id)
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (time.Time, int64, error) {
	payload, err := decodeVersioned(cursor)
	if err != nil {
		return time.Time{}, 0, err
	}

	parts := strings.SplitN(payload, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, 0, fmt.Errorf("invalid cursor format: expected '<micros>-<id>'")
	}

	timestamp, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid timestamp: %w", err)
	}

	id, err := parseID(parts[1])
	if err != nil {
		return time.Time{}, 0, err
	}

	return time.UnixMicro(timestamp).UTC(), id, nil
}

// EncodeIDCursor is for lists ordered by id alone.
func EncodeIDCursor(id int64) string {
	cursorData := fmt.Sprintf("%s:%d", CursorVersionV1, id)
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeIDCursor(cursor string) (int64, error) {
	payload, err := decodeVersioned(cursor)
	if err != nil {
		return 0, err
	}
	return parseID(payload)
}

func decodeVersioned(cursor string) (string, error) {
	if cursor == "" {
		return "", fmt.Errorf("cursor cannot be empty")
	}
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return "", fmt.Errorf("invalid cursor encoding: %w", err)
	}
	s := string(decoded)
	if !strings.HasPrefix(s, CursorVersionV1+":") {
		return "", fmt.Errorf("unsupported cursor version")
	}
	return strings.TrimPrefix(s, CursorVersionV1+":"), nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id in cursor: %q", s)
	}
	return id, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// page trims the extra probe row and builds the next cursor from the last kept row.
func page[T any](rows []T, limit int, next func(last T) string) ([]T, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	rows = rows[:limit]
	return rows, &Cursor{After: next(rows[limit-1])}
}
