package models

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidTimestamp is returned when a value matches none of the accepted layouts.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

const dateOnlyLayout = "2006-01-02"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	dateOnlyLayout,
}

// ParseTimestamp parses RFC 3339 timestamps, zone-less date-times and plain dates.
// Values without a zone are taken as UTC. dateOnly is true for plain dates.
func ParseTimestamp(value string) (t time.Time, dateOnly bool, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false, ErrInvalidTimestamp
	}
	for _, layout := range timestampLayouts {
		if t, err = time.Parse(layout, value); err == nil {
			return t, layout == dateOnlyLayout, nil
		}
	}
	return time.Time{}, false, ErrInvalidTimestamp
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
