// Package schedule resolves the periods that apply on a calendar date and
// drives a single day's attendance session.
package schedule

import (
	"context"
	"time"

	"bunkmeter-backend/internal/classes"
	"bunkmeter-backend/internal/timetable"
)

const UnknownSubject = "Unknown"

type modeKind int

const (
	modeDefault modeKind = iota
	modeBorrow
	modeCustom
)

// Mode selects how a date's periods are derived. The zero value is Default.
type Mode struct {
	kind   modeKind
	borrow timetable.Weekday
	custom []timetable.PeriodSlot
}

func Default() Mode { return Mode{kind: modeDefault} }

// Borrow substitutes another weekday's template for the date's own.
func Borrow(d timetable.Weekday) Mode { return Mode{kind: modeBorrow, borrow: d} }

// Custom uses periods as given; the template is never consulted.
func Custom(periods []timetable.PeriodSlot) Mode {
	cp := make([]timetable.PeriodSlot, len(periods))
	copy(cp, periods)
	return Mode{kind: modeCustom, custom: cp}
}

type Period struct {
	Period      int    `json:"period"`
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name"`
}

// EffectiveSchedule is the derived period list for one date. It is never
// persisted.
type EffectiveSchedule struct {
	Date    string             `json:"date"`
	Weekday timetable.Weekday  `json:"weekday"`
	Origin  timetable.Origin   `json:"origin"`
	Source  *timetable.Weekday `json:"source_weekday,omitempty"`
	Periods []Period           `json:"periods"`
}

// Resolve derives the effective schedule of c on date. It only reads c; an
// empty day yields an empty period list.
func Resolve(c classes.Class, date time.Time, mode Mode) EffectiveSchedule {
	natural := timetable.WeekdayOf(date)
	out := EffectiveSchedule{
		Date:    date.Format(timetable.DateLayout),
		Weekday: natural,
	}

	var slots []timetable.PeriodSlot
	switch mode.kind {
	case modeBorrow:
		src := mode.borrow
		out.Origin = timetable.OriginBorrowed
		out.Source = &src
		slots = c.Timetable.Day(src)
	case modeCustom:
		out.Origin = timetable.OriginCustom
		slots = mode.custom
	default:
		src := natural
		out.Origin = timetable.OriginDefault
		out.Source = &src
		slots = c.Timetable.Day(src)
	}

	out.Periods = make([]Period, 0, len(slots))
	for _, slot := range slots {
		out.Periods = append(out.Periods, Period{
			Period:      slot.Period,
			SubjectID:   slot.SubjectID,
			SubjectName: subjectName(c, slot.SubjectID),
		})
	}
	return out
}

func subjectName(c classes.Class, id string) string {
	if id == "" {
		return ""
	}
	if s, ok := c.Subject(id); ok {
		return s.Name
	}
	return UnknownSubject
}

type ClassReader interface {
	Get(ctx context.Context, classID string) (classes.Class, error)
}

// Resolver resolves schedules for stored classes.
type Resolver struct {
	classes ClassReader
	clock   func() time.Time
}

func NewResolver(classes ClassReader) *Resolver {
	return &Resolver{classes: classes, clock: time.Now}
}

func (r *Resolver) Resolve(ctx context.Context, classID, date string, mode Mode) (EffectiveSchedule, error) {
	day, err := timetable.ParseDate(date, r.clock())
	if err != nil {
		return EffectiveSchedule{}, err
	}
	c, err := r.classes.Get(ctx, classID)
	if err != nil {
		return EffectiveSchedule{}, err
	}
	return Resolve(c, day, mode), nil
}
