package utils

import (
	"time"

	"careconnect-service/internal/pkg/constvars"
)

// ParseAppointmentDate normalizes a YYYY-MM-DD string to midnight UTC.
func ParseAppointmentDate(value string) (time.Time, error) {
	parsed, err := time.Parse(constvars.AppointmentDateFormat, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
}

// UTCDayRange returns the [start, end) bounds of the UTC day containing t.
func UTCDayRange(t time.Time) (time.Time, time.Time) {
	utc := t.UTC()
	start := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
