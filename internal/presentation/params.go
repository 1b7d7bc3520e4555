package presentation

import (
	"errors"
	"strings"
	"time"
)

// accepted in order; layouts without a zone are read as UTC
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

var errBadTimestamp = errors.New("not an ISO-8601 timestamp")

func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errBadTimestamp
}

// requireParams returns the names whose values are blank.
func requireParams(get func(string) string, names ...string) []string {
	var missing []string
	for _, n := range names {
		if strings.TrimSpace(get(n)) == "" {
			missing = append(missing, n)
		}
	}
	return missing
}

func missingMsg(missing []string) string {
	return "missing required parameter(s): " + strings.Join(missing, ", ")
}
