package utils

import (
	"time"
)

// FormatPublishedAt renders t as an ISO-8601 (RFC 3339) timestamp in UTC,
// the format articles carry in their published_at field.
func FormatPublishedAt(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
