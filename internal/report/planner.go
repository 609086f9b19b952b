package report

import (
	"context"
	"slices"

	"bunkmeter-backend/internal/platform/apierr"
	"bunkmeter-backend/internal/schedule"
	"bunkmeter-backend/internal/timetable"
)

// MaxPlannedDates bounds a single bunk-effect request.
const MaxPlannedDates = 366

const (
	SkipHoliday   = "holiday"
	SkipRecorded  = "already_recorded"
	SkipNoPeriods = "no_periods"
)

// BunkEffect projects what skipping every period on dates would do to roll's
// attendance. Each date uses its own weekday's template; holidays and dates
// that are already recorded are skipped. Nothing is stored.
func (s *Service) BunkEffect(ctx context.Context, classID string, roll int, dates []string) (BunkEffect, error) {
	if len(dates) == 0 {
		return BunkEffect{}, apierr.ErrInvalid("at least one date is required")
	}
	if len(dates) > MaxPlannedDates {
		return BunkEffect{}, apierr.Invalidf("at most %d dates can be planned at once", MaxPlannedDates)
	}

	now := s.clock()
	today, _ := timetable.ParseDate("today", now)
	days := make([]string, 0, len(dates))
	for _, v := range dates {
		d, err := timetable.ParseDate(v, now)
		if err != nil {
			return BunkEffect{}, err
		}
		if d.Before(today) {
			return BunkEffect{}, apierr.Invalidf("%s is in the past", d.Format(timetable.DateLayout))
		}
		days = append(days, d.Format(timetable.DateLayout))
	}
	slices.Sort(days)
	days = slices.Compact(days)

	c, l, err := s.ledgers.Ledger(ctx, classID)
	if err != nil {
		return BunkEffect{}, err
	}
	if !c.ValidRoll(roll) {
		return BunkEffect{}, apierr.NotFoundf("roll number %d not in class (1..%d)", roll, c.TotalStudents)
	}

	out := BunkEffect{
		ClassID:    c.ID,
		RollNumber: roll,
		Planned:    []string{},
		Exams:      []string{},
		Skipped:    []SkippedDate{},
		Subjects:   make([]SubjectEffect, 0, len(c.Subjects)),
	}
	missed := make(map[string]int)
	for _, day := range days {
		switch {
		case c.SpecialDates.IsHoliday(day):
			out.Skipped = append(out.Skipped, SkippedDate{Date: day, Reason: SkipHoliday})
			continue
		case hasSubmission(l, day):
			out.Skipped = append(out.Skipped, SkippedDate{Date: day, Reason: SkipRecorded})
			continue
		}

		date, _ := timetable.ParseDate(day, now)
		eff := schedule.Resolve(c, date, schedule.Default())
		if len(eff.Periods) == 0 {
			out.Skipped = append(out.Skipped, SkippedDate{Date: day, Reason: SkipNoPeriods})
			continue
		}
		for _, p := range eff.Periods {
			missed[p.SubjectID]++
		}
		out.Planned = append(out.Planned, day)
		if c.SpecialDates.IsExam(day) {
			out.Exams = append(out.Exams, day)
		}
	}

	for _, subj := range c.Subjects {
		t := l.Subject(subj.ID)
		attended := t.Attended(roll)
		n := missed[subj.ID]
		out.Subjects = append(out.Subjects, SubjectEffect{
			SubjectID:   subj.ID,
			SubjectName: subj.Name,
			Missed:      n,
			Before:      Evaluate(attended, t.Total),
			After:       Evaluate(attended, t.Total+n),
		})
	}
	return out, nil
}
