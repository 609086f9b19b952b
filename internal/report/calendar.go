package report

import (
	"context"

	"bunkmeter-backend/internal/attendance"
	"bunkmeter-backend/internal/platform/apierr"
	"bunkmeter-backend/internal/timetable"
)

// StudentCalendar lists, for each recorded date in [from, to], whether roll
// was present in each period. Empty bounds are open.
func (s *Service) StudentCalendar(ctx context.Context, classID string, roll int, from, to string) (StudentCalendar, error) {
	from, err := s.bound(from, "from")
	if err != nil {
		return StudentCalendar{}, err
	}
	if to, err = s.bound(to, "to"); err != nil {
		return StudentCalendar{}, err
	}
	if from != "" && to != "" && to < from {
		return StudentCalendar{}, apierr.ErrInvalid("to must be >= from")
	}

	c, l, err := s.ledgers.Ledger(ctx, classID)
	if err != nil {
		return StudentCalendar{}, err
	}
	if !c.ValidRoll(roll) {
		return StudentCalendar{}, apierr.NotFoundf("roll number %d not in class (1..%d)", roll, c.TotalStudents)
	}

	special := c.SpecialDates.Between(from, to)
	out := StudentCalendar{
		ClassID:    c.ID,
		RollNumber: roll,
		From:       from,
		To:         to,
		Days:       []CalendarDay{},
		Exams:      special.Exams,
		Holidays:   special.Holidays,
	}
	for _, date := range l.Dates() {
		if (from != "" && date < from) || (to != "" && date > to) {
			continue
		}
		sub, _ := l.Submission(date)
		day := CalendarDay{
			Date:    date,
			Origin:  sub.Origin,
			Exam:    c.SpecialDates.IsExam(date),
			Periods: make([]CalendarPeriod, 0, len(sub.Periods)),
		}
		if d, err := timetable.ParseDate(date, s.clock()); err == nil {
			day.Weekday = timetable.WeekdayOf(d)
		}
		for _, p := range sub.Periods {
			name := p.SubjectName
			if subj, ok := c.Subject(p.SubjectID); ok {
				name = subj.Name
			}
			present := !p.IsAbsent(roll)
			if present {
				day.Attended++
			} else {
				day.Missed++
			}
			day.Periods = append(day.Periods, CalendarPeriod{
				Period:      p.Period,
				SubjectID:   p.SubjectID,
				SubjectName: name,
				Present:     present,
			})
		}
		out.Days = append(out.Days, day)
	}
	return out, nil
}

func (s *Service) bound(v, field string) (string, error) {
	if v == "" {
		return "", nil
	}
	d, err := timetable.ParseDate(v, s.clock())
	if err != nil {
		return "", apierr.Invalidf("%s must be YYYY-MM-DD", field)
	}
	return d.Format(timetable.DateLayout), nil
}

func hasSubmission(l *attendance.Ledger, date string) bool {
	_, ok := l.Submission(date)
	return ok
}
