package utils

import (
	"fmt"
	"time"
)

// TimestampLayout is the single fixed wire format for every timestamp this
// service parses or renders: microsecond precision, zero-padded, UTC.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// MinQueryTime and MaxQueryTime are the wide-open window bounds substituted
// when a query omits a side.
var (
	MinQueryTime = time.Date(1500, time.January, 1, 0, 0, 0, 0, time.UTC)
	MaxQueryTime = time.Date(4000, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// FormatTimestamp renders t in the fixed wire format.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a wire-format timestamp as UTC. The error names the
// expected layout so callers can surface it verbatim.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("time %q has incorrect data format, should be %s", s, TimestampLayout)
	}
	return t, nil
}
