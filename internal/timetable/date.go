package timetable

import (
	"strings"
	"time"

	"bunkmeter-backend/internal/platform/apierr"
)

const DateLayout = "2006-01-02"

// ParseDate reads YYYY-MM-DD, or "today" relative to now, as a
// school-local calendar date at midnight.
func ParseDate(v string, now time.Time) (time.Time, error) {
	v = strings.TrimSpace(strings.ToLower(v))
	if v == "today" {
		local := now.In(time.Local)
		return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local), nil
	}
	t, err := time.ParseInLocation(DateLayout, v, time.Local)
	if err != nil {
		return time.Time{}, apierr.ErrInvalid("date must be YYYY-MM-DD or 'today'")
	}
	return t, nil
}
