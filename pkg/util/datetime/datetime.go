package datetime

import "time"

// FormatDate formats t as RFC 3339 keeping its zone offset.
func FormatDate(t time.Time) string {
	return t.Format(time.RFC3339)
}

// NowUTC returns the current time in UTC, truncated to seconds.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
