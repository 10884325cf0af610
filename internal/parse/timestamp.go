package parse

import (
	"errors"
	"time"
)

// ErrBadTimestamp is returned for inputs that match neither accepted layout.
var ErrBadTimestamp = errors.New("Formato de data inválido. Use ISO 8601 (YYYY-MM-DDTHH:MM:SS ou YYYY-MM-DDTHH:MM)")

// Accepted input layouts: full seconds and the minute-truncated form
// browsers produce for datetime-local inputs.
const (
	layoutSeconds = "2006-01-02T15:04:05"
	layoutMinutes = "2006-01-02T15:04"
)

// Timestamp parses an ISO-8601 timestamp without a zone offset.
// Values are interpreted as naive local times, matching how they are
// stored and compared.
func Timestamp(s string) (time.Time, error) {
	if t, err := time.Parse(layoutSeconds, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(layoutMinutes, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrBadTimestamp
}

// FormatTimestamp renders t in the full-seconds ISO-8601 form used in
// all API responses.
func FormatTimestamp(t time.Time) string {
	return t.Format(layoutSeconds)
}
