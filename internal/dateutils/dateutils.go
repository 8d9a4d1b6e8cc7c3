// Package dateutils parses and formats the date and date-time values found in
// ISO 20022 statement files.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Output layouts. Date-times are emitted at seconds precision with the
// original UTC offset preserved.
const (
	DateTimeLayout = "2006-01-02T15:04:05Z07:00"
	DateLayout     = "2006-01-02"
)

// Layouts accepted on input, tried in order.
var inputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	DateLayout,
}

// ParseISO parses an ISO 8601 date or date-time string as found in camt
// documents. Fractional seconds and missing time zones are tolerated.
func ParseISO(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date value")
	}
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", value)
}

// FormatDateTime renders a date-time at seconds precision with its offset.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// FormatDate renders the calendar date portion.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
