package schedule

import (
	"context"
	"errors"
	"testing"

	"bunkmeter-backend/internal/attendance"
	"bunkmeter-backend/internal/platform/apierr"
	"bunkmeter-backend/internal/timetable"
)

type recorderFunc func(ctx context.Context, classID, date string, req attendance.MarkAttendanceRequest) (attendance.SubmissionResponse, bool, error)

func (f recorderFunc) Mark(ctx context.Context, classID, date string, req attendance.MarkAttendanceRequest) (attendance.SubmissionResponse, bool, error) {
	return f(ctx, classID, date, req)
}

// capture records the last request and answers as if it was stored.
type capture struct {
	classID string
	date    string
	req     attendance.MarkAttendanceRequest
	calls   int
}

func (c *capture) Mark(_ context.Context, classID, date string, req attendance.MarkAttendanceRequest) (attendance.SubmissionResponse, bool, error) {
	c.classID, c.date, c.req = classID, date, req
	c.calls++
	return attendance.SubmissionResponse{ClassID: classID, Date: date, Origin: req.Origin}, c.calls == 1, nil
}

func TestSessionStartsUnresolved(t *testing.T) {
	s := NewSession("s1", cse3a(), monday)
	if s.State() != StateUnresolved {
		t.Fatalf("state = %s", s.State())
	}
	if _, ok := s.Schedule(); ok {
		t.Error("schedule available before choosing a mode")
	}
	if _, err := s.ToggleAbsent(1, 5); !apierr.Is(err, apierr.CodeInvalidArgument) {
		t.Errorf("toggle while unresolved: %v", err)
	}
	if _, _, err := s.Submit(context.Background(), &capture{}); !apierr.Is(err, apierr.CodeInvalidArgument) {
		t.Errorf("submit while unresolved: %v", err)
	}
}

func TestToggleAbsentIsInvolution(t *testing.T) {
	s := NewSession("s1", cse3a(), monday)
	if err := s.UseDefault(); err != nil {
		t.Fatal(err)
	}

	on, err := s.ToggleAbsent(1, 5)
	if err != nil || !on {
		t.Fatalf("first toggle = %v, %v", on, err)
	}
	on, err = s.ToggleAbsent(1, 5)
	if err != nil || on {
		t.Fatalf("second toggle = %v, %v", on, err)
	}
	if len(s.Absent(1)) != 0 {
		t.Errorf("absent = %v after two toggles", s.Absent(1))
	}

	if _, err := s.ToggleAbsent(1, 61); !apierr.Is(err, apierr.CodeInvalidArgument) {
		t.Errorf("roll out of range: %v", err)
	}
	if _, err := s.ToggleAbsent(9, 5); !apierr.Is(err, apierr.CodeNotFound) {
		t.Errorf("unknown period: %v", err)
	}
}

func TestDefaultSubmitBuildsRequest(t *testing.T) {
	s := NewSession("s1", cse3a(), monday)
	_ = s.UseDefault()
	_, _ = s.ToggleAbsent(1, 5)
	_, _ = s.ToggleAbsent(1, 3)

	rec := &capture{}
	if _, created, err := s.Submit(context.Background(), rec); err != nil || !created {
		t.Fatalf("submit = %v, %v", created, err)
	}
	if rec.classID != "cse3a" || rec.date != "2024-01-01" || rec.req.Origin != "default" {
		t.Errorf("recorded %s %s %+v", rec.classID, rec.date, rec.req)
	}
	if len(rec.req.Periods) != 2 {
		t.Fatalf("periods = %+v", rec.req.Periods)
	}
	if abs := rec.req.Periods[0].Absent; len(abs) != 2 || abs[0] != 3 || abs[1] != 5 {
		t.Errorf("period 1 absent = %v", abs)
	}
	if len(rec.req.Periods[1].Absent) != 0 {
		t.Errorf("period 2 absent = %v", rec.req.Periods[1].Absent)
	}

	if s.State() != StateSubmitted {
		t.Errorf("state = %s", s.State())
	}
	if len(s.Absent(1)) != 0 {
		t.Error("working absences kept after submit")
	}
}

func TestSubmittedSessionIsFrozen(t *testing.T) {
	s := NewSession("s1", cse3a(), monday)
	_ = s.UseDefault()
	if _, _, err := s.Submit(context.Background(), &capture{}); err != nil {
		t.Fatal(err)
	}

	mutators := map[string]func() error{
		"UseDefault": s.UseDefault,
		"Borrow":     func() error { return s.Borrow(timetable.Friday) },
		"Customize":  s.Customize,
		"Toggle":     func() error { _, err := s.ToggleAbsent(1, 1); return err },
		"Submit":     func() error { _, _, err := s.Submit(context.Background(), &capture{}); return err },
	}
	for name, fn := range mutators {
		if err := fn(); !apierr.Is(err, apierr.CodeInvalidArgument) {
			t.Errorf("%s after submit: %v", name, err)
		}
	}

	s.Reset()
	if s.State() != StateUnresolved {
		t.Fatalf("state after reset = %s", s.State())
	}
	if err := s.UseDefault(); err != nil {
		t.Errorf("UseDefault after reset: %v", err)
	}
}

func TestFailedSubmitKeepsWork(t *testing.T) {
	s := NewSession("s1", cse3a(), monday)
	_ = s.UseDefault()
	_, _ = s.ToggleAbsent(2, 4)

	boom := errors.New("store down")
	rec := recorderFunc(func(context.Context, string, string, attendance.MarkAttendanceRequest) (attendance.SubmissionResponse, bool, error) {
		return attendance.SubmissionResponse{}, false, boom
	})
	if _, _, err := s.Submit(context.Background(), rec); !errors.Is(err, boom) {
		t.Fatalf("submit = %v", err)
	}
	if s.State() != StateDefault || len(s.Absent(2)) != 1 {
		t.Errorf("state %s absent %v after failed submit", s.State(), s.Absent(2))
	}
}

func TestBorrowDropsMarksForMissingPeriods(t *testing.T) {
	s := NewSession("s1", cse3a(), monday)
	_ = s.UseDefault()
	_, _ = s.ToggleAbsent(1, 5)
	_, _ = s.ToggleAbsent(2, 6)

	// Wednesday only has period 1
	if err := s.Borrow(timetable.Wednesday); err != nil {
		t.Fatal(err)
	}
	if len(s.Absent(1)) != 1 || len(s.Absent(2)) != 0 {
		t.Errorf("absent after borrow: p1=%v p2=%v", s.Absent(1), s.Absent(2))
	}
	sched, _ := s.Schedule()
	if sched.Origin != timetable.OriginBorrowed || sched.Periods[0].SubjectID != "eng" {
		t.Errorf("schedule = %+v", sched)
	}
	if err := s.Borrow(timetable.Weekday(9)); !apierr.Is(err, apierr.CodeInvalidArgument) {
		t.Errorf("invalid weekday: %v", err)
	}
}

func TestCustomEditsOnlyInCustomMode(t *testing.T) {
	s := NewSession("s1", cse3a(), monday)
	_ = s.UseDefault()
	if _, err := s.AddPeriod("math"); !apierr.Is(err, apierr.CodeInvalidArgument) {
		t.Errorf("add in default mode: %v", err)
	}
	if err := s.RemovePeriod(1); !apierr.Is(err, apierr.CodeInvalidArgument) {
		t.Errorf("remove in default mode: %v", err)
	}
}

func TestCustomizeSeedsFromCurrentSchedule(t *testing.T) {
	c := cse3a()
	s := NewSession("s1", c, monday)
	_ = s.UseDefault()
	_, _ = s.ToggleAbsent(2, 7)

	if err := s.Customize(); err != nil {
		t.Fatal(err)
	}
	sched, _ := s.Schedule()
	if sched.Origin != timetable.OriginCustom || len(sched.Periods) != 2 {
		t.Fatalf("schedule = %+v", sched)
	}
	if got := s.Absent(2); len(got) != 1 || got[0] != 7 {
		t.Errorf("absences not carried into custom: %v", got)
	}

	slot, err := s.AddPeriod("")
	if err != nil {
		t.Fatal(err)
	}
	if slot.Period != 3 {
		t.Errorf("new period = %d, want 3", slot.Period)
	}
	if mon := c.Timetable.Day(timetable.Monday); len(mon) != 2 {
		t.Error("custom edit reached the template")
	}
}

func TestRemoveThenAddKeepsMarksAligned(t *testing.T) {
	s := NewSession("s1", cse3a(), sunday)
	_ = s.Customize()
	for _, id := range []string{"math", "sci", "eng"} {
		if _, err := s.AddPeriod(id); err != nil {
			t.Fatal(err)
		}
	}
	_, _ = s.ToggleAbsent(2, 11)
	_, _ = s.ToggleAbsent(3, 12)

	if err := s.RemovePeriod(2); err != nil {
		t.Fatal(err)
	}
	if err := s.RemovePeriod(2); !apierr.Is(err, apierr.CodeNotFound) {
		t.Errorf("second remove: %v", err)
	}
	slot, _ := s.AddPeriod("math")
	if slot.Period != 4 {
		t.Fatalf("new period = %d, want 4", slot.Period)
	}

	if len(s.Absent(2)) != 0 {
		t.Error("marks of a removed period survived")
	}
	if got := s.Absent(3); len(got) != 1 || got[0] != 12 {
		t.Errorf("period 3 marks moved: %v", got)
	}
	if len(s.Absent(4)) != 0 {
		t.Errorf("new period inherited marks: %v", s.Absent(4))
	}
}

func TestSetSubject(t *testing.T) {
	s := NewSession("s1", cse3a(), sunday)
	_ = s.Customize()
	slot, _ := s.AddPeriod("")

	if err := s.SetSubject(slot.Period, "ghost"); !apierr.Is(err, apierr.CodeInvalidArgument) {
		t.Errorf("unknown subject: %v", err)
	}
	if err := s.SetSubject(42, "math"); !apierr.Is(err, apierr.CodeNotFound) {
		t.Errorf("unknown period: %v", err)
	}
	if err := s.SetSubject(slot.Period, "sci"); err != nil {
		t.Fatal(err)
	}
	sched, _ := s.Schedule()
	if sched.Periods[0].SubjectName != "Science" {
		t.Errorf("schedule = %+v", sched)
	}
}

func TestCustomSundaySubmit(t *testing.T) {
	c := cse3a()
	before := c.Timetable.Clone()
	s := NewSession("s1", c, sunday)

	if err := s.Customize(); err != nil {
		t.Fatal(err)
	}
	p1, _ := s.AddPeriod("")
	p2, _ := s.AddPeriod("")
	if err := s.SetSubject(p1.Period, "math"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSubject(p2.Period, "eng"); err != nil {
		t.Fatal(err)
	}

	rec := &capture{}
	if _, _, err := s.Submit(context.Background(), rec); err != nil {
		t.Fatal(err)
	}
	if rec.req.Origin != "custom" || len(rec.req.Periods) != 2 {
		t.Fatalf("request = %+v", rec.req)
	}
	if rec.req.Periods[0].SubjectID != "math" || rec.req.Periods[1].SubjectID != "eng" {
		t.Errorf("subjects = %+v", rec.req.Periods)
	}
	if !c.Timetable.Equal(before) {
		t.Error("custom session changed the template")
	}
}

func TestRebindPrunesRemovedPeriods(t *testing.T) {
	c := cse3a()
	s := NewSession("s1", c, monday)
	_ = s.UseDefault()
	_, _ = s.ToggleAbsent(2, 8)

	c.Timetable[timetable.Monday] = c.Timetable.Day(timetable.Monday)[:1]
	s.Rebind(c)
	if len(s.Absent(2)) != 0 {
		t.Error("marks kept for a period the template dropped")
	}
}

func TestView(t *testing.T) {
	s := NewSession("s1", cse3a(), monday)
	v := s.View()
	if v.State != StateUnresolved || v.Schedule != nil {
		t.Errorf("view = %+v", v)
	}
	_ = s.UseDefault()
	_, _ = s.ToggleAbsent(1, 2)
	v = s.View()
	if v.Schedule == nil || len(v.Absent[1]) != 1 {
		t.Errorf("view = %+v", v)
	}
}
