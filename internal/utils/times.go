package utils

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is how entry timestamps are written.
const TimestampLayout = "2006-01-02 15:04"

const DateLayout = "2006-01-02"

// Layouts accepted when reading timestamps back. Older logs were edited by
// hand, so day-first variants are accepted too.
var timestampLayouts = []string{
	TimestampLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
	DateLayout,
	"02/01/2006 15:04",
	"02.01.2006 15:04",
}

// LoadLocation resolves a timezone name; "" and "Local" mean the server zone.
// Unknown names fall back to the server zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseTimestamp reads a stored timestamp as wall time in loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
