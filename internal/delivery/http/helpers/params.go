package helpers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateOnly = "2006-01-02"

// OptionalQuery returns a pointer to the trimmed query value, or nil when absent or blank.
func OptionalQuery(r *http.Request, name string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil
	}
	return &v
}

// ParseDateQuery parses an optional RFC3339 or YYYY-MM-DD query value. A bare
// date used as an upper bound (endOfDay) covers the whole day, down to the
// last microsecond Postgres timestamps can hold.
func ParseDateQuery(r *http.Request, name string, endOfDay bool) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateOnly, raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be RFC3339 or YYYY-MM-DD", name)
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Microsecond)
	}
	return &t, nil
}

// EpochMillis converts milliseconds since the Unix epoch to a UTC time.
func EpochMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// ParseEpochMillis parses a decimal string of milliseconds since the Unix epoch.
func ParseEpochMillis(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// IsUUID reports whether s is a canonical UUID.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil && len(s) == 36
}
