package classes

import (
	"context"
	"slices"
	"time"

	"bunkmeter-backend/internal/platform/apierr"
	"bunkmeter-backend/internal/timetable"
)

// SpecialDates marks exam and holiday days on the class calendar. Both lists
// hold canonical YYYY-MM-DD dates, sorted and without duplicates.
type SpecialDates struct {
	Exams    []string `json:"exams"`
	Holidays []string `json:"holidays"`
}

func (d SpecialDates) IsHoliday(date string) bool {
	_, ok := slices.BinarySearch(d.Holidays, date)
	return ok
}

func (d SpecialDates) IsExam(date string) bool {
	_, ok := slices.BinarySearch(d.Exams, date)
	return ok
}

// Between returns the special dates in [from, to]; an empty bound is open.
func (d SpecialDates) Between(from, to string) SpecialDates {
	return SpecialDates{Exams: between(d.Exams, from, to), Holidays: between(d.Holidays, from, to)}
}

func between(dates []string, from, to string) []string {
	out := []string{}
	for _, v := range dates {
		if (from == "" || v >= from) && (to == "" || v <= to) {
			out = append(out, v)
		}
	}
	return out
}

func normalizeDates(in []string, field string, now time.Time) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, v := range in {
		t, err := timetable.ParseDate(v, now)
		if err != nil {
			return nil, apierr.Invalidf("%s: %q is not a date", field, v)
		}
		out = append(out, t.Format(timetable.DateLayout))
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

func (s *Service) GetSpecialDates(ctx context.Context, classID string) (SpecialDates, error) {
	c, err := s.repo.Get(ctx, classID)
	if err != nil {
		return SpecialDates{}, err
	}
	return c.SpecialDates.orEmpty(), nil
}

// UpdateSpecialDates replaces both lists. A date cannot be an exam and a
// holiday at once.
func (s *Service) UpdateSpecialDates(ctx context.Context, classID string, in SpecialDatesRequest) (SpecialDates, error) {
	now := s.clock()
	exams, err := normalizeDates(in.Exams, "exams", now)
	if err != nil {
		return SpecialDates{}, err
	}
	holidays, err := normalizeDates(in.Holidays, "holidays", now)
	if err != nil {
		return SpecialDates{}, err
	}
	for _, d := range exams {
		if _, clash := slices.BinarySearch(holidays, d); clash {
			return SpecialDates{}, apierr.Invalidf("%s is listed as both exam and holiday", d)
		}
	}

	c, err := s.repo.Update(ctx, classID, func(c *Class) error {
		c.SpecialDates = SpecialDates{Exams: exams, Holidays: holidays}
		c.UpdatedAt = s.clock().UTC()
		return nil
	})
	if err != nil {
		return SpecialDates{}, err
	}
	return c.SpecialDates.orEmpty(), nil
}

func (d SpecialDates) orEmpty() SpecialDates {
	if d.Exams == nil {
		d.Exams = []string{}
	}
	if d.Holidays == nil {
		d.Holidays = []string{}
	}
	return d
}
