package timetable

import "bunkmeter-backend/internal/platform/apierr"

// Origin says where an effective schedule came from.
type Origin string

const (
	OriginDefault  Origin = "default"
	OriginBorrowed Origin = "borrowed"
	OriginCustom   Origin = "custom"
)

// ParseOrigin maps "" to OriginDefault.
func ParseOrigin(s string) (Origin, error) {
	switch Origin(s) {
	case "", OriginDefault:
		return OriginDefault, nil
	case OriginBorrowed, OriginCustom:
		return Origin(s), nil
	}
	return "", apierr.Invalidf("unknown schedule origin %q", s)
}
