package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// eventLayouts covers the timestamp shapes the fight-data API has emitted:
// RFC3339, naive ISO timestamps (no zone, read as UTC), and bare dates.
var eventLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	dateLayout,
}

// ParseEventDate parses an upstream event timestamp in any known layout.
func ParseEventDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty event date")
	}
	for _, layout := range eventLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized event date %q", value)
}
