package schedule

import (
	"context"
	"sort"
	"time"

	"bunkmeter-backend/internal/attendance"
	"bunkmeter-backend/internal/classes"
	"bunkmeter-backend/internal/platform/apierr"
	"bunkmeter-backend/internal/timetable"
)

type State int

const (
	StateUnresolved State = iota
	StateDefault
	StateBorrowed
	StateCustom
	StateSubmitted
)

var stateNames = [...]string{"unresolved", "default", "borrowed", "custom", "submitted"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *State) UnmarshalText(b []byte) error {
	for i, name := range stateNames {
		if name == string(b) {
			*s = State(i)
			return nil
		}
	}
	return apierr.Invalidf("unknown session state %q", b)
}

// Recorder persists a finished session.
type Recorder interface {
	Mark(ctx context.Context, classID, date string, req attendance.MarkAttendanceRequest) (attendance.SubmissionResponse, bool, error)
}

// Session is one admin's in-progress attendance for a single class and date.
// Absence sets are keyed by period number, so removing and re-adding periods
// never shifts marks onto another period. A Session is not safe for
// concurrent use.
type Session struct {
	ID      string
	ClassID string
	Date    string

	class  classes.Class
	day    time.Time
	state  State
	borrow timetable.Weekday
	custom []timetable.PeriodSlot
	absent map[int]map[int]struct{}
	result *attendance.SubmissionResponse
}

// NewSession starts Unresolved for c on day.
func NewSession(id string, c classes.Class, day time.Time) *Session {
	return &Session{
		ID:      id,
		ClassID: c.ID,
		Date:    day.Format(timetable.DateLayout),
		class:   c,
		day:     day,
		absent:  make(map[int]map[int]struct{}),
	}
}

func (s *Session) State() State { return s.state }

// Rebind swaps in a fresher copy of the class, dropping marks for periods
// the new template no longer has.
func (s *Session) Rebind(c classes.Class) {
	s.class = c
	s.prune()
}

func (s *Session) UseDefault() error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	s.state = StateDefault
	s.custom = nil
	s.prune()
	return nil
}

func (s *Session) Borrow(d timetable.Weekday) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if !d.Valid() {
		return apierr.Invalidf("invalid weekday %d", int(d))
	}
	s.state = StateBorrowed
	s.borrow = d
	s.custom = nil
	s.prune()
	return nil
}

// Customize copies the current effective periods into an editable list.
// From Unresolved the natural weekday's template is the seed.
func (s *Session) Customize() error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if s.state == StateCustom {
		return nil
	}
	sched := Resolve(s.class, s.day, s.mode())
	s.custom = make([]timetable.PeriodSlot, 0, len(sched.Periods))
	for _, p := range sched.Periods {
		s.custom = append(s.custom, timetable.PeriodSlot{Period: p.Period, SubjectID: p.SubjectID})
	}
	s.state = StateCustom
	s.prune()
	return nil
}

// AddPeriod appends a custom period. subjectID may be empty and set later.
func (s *Session) AddPeriod(subjectID string) (timetable.PeriodSlot, error) {
	if err := s.checkCustom(); err != nil {
		return timetable.PeriodSlot{}, err
	}
	if subjectID != "" && !s.class.HasSubject(subjectID) {
		return timetable.PeriodSlot{}, apierr.Invalidf("unknown subject %s", subjectID)
	}
	slot := timetable.PeriodSlot{Period: timetable.NextPeriod(s.custom), SubjectID: subjectID}
	s.custom = append(s.custom, slot)
	return slot, nil
}

// RemovePeriod drops a custom period together with its absence marks.
func (s *Session) RemovePeriod(period int) error {
	if err := s.checkCustom(); err != nil {
		return err
	}
	i := s.customIndex(period)
	if i < 0 {
		return apierr.NotFoundf("no period %d", period)
	}
	s.custom = append(s.custom[:i], s.custom[i+1:]...)
	delete(s.absent, period)
	return nil
}

func (s *Session) SetSubject(period int, subjectID string) error {
	if err := s.checkCustom(); err != nil {
		return err
	}
	if !s.class.HasSubject(subjectID) {
		return apierr.Invalidf("unknown subject %s", subjectID)
	}
	i := s.customIndex(period)
	if i < 0 {
		return apierr.NotFoundf("no period %d", period)
	}
	s.custom[i].SubjectID = subjectID
	return nil
}

// ToggleAbsent flips roll in period's absence set and reports whether the
// roll is now absent.
func (s *Session) ToggleAbsent(period, roll int) (bool, error) {
	if err := s.checkOpen(); err != nil {
		return false, err
	}
	if s.state == StateUnresolved {
		return false, apierr.ErrInvalid("choose a schedule before marking absences")
	}
	if !s.class.ValidRoll(roll) {
		return false, apierr.Invalidf("roll number %d out of range 1..%d", roll, s.class.TotalStudents)
	}
	if !s.hasPeriod(period) {
		return false, apierr.NotFoundf("no period %d", period)
	}

	set := s.absent[period]
	if _, ok := set[roll]; ok {
		delete(set, roll)
		if len(set) == 0 {
			delete(s.absent, period)
		}
		return false, nil
	}
	if set == nil {
		set = make(map[int]struct{})
		s.absent[period] = set
	}
	set[roll] = struct{}{}
	return true, nil
}

// Absent returns period's marked rolls in ascending order.
func (s *Session) Absent(period int) []int {
	out := make([]int, 0, len(s.absent[period]))
	for roll := range s.absent[period] {
		out = append(out, roll)
	}
	sort.Ints(out)
	return out
}

// Schedule is the effective period list; ok is false while Unresolved.
func (s *Session) Schedule() (EffectiveSchedule, bool) {
	if s.state == StateUnresolved {
		return EffectiveSchedule{}, false
	}
	return Resolve(s.class, s.day, s.mode()), true
}

// Request builds the submission payload from the current working state.
func (s *Session) Request() (attendance.MarkAttendanceRequest, error) {
	sched, ok := s.Schedule()
	if !ok {
		return attendance.MarkAttendanceRequest{}, apierr.ErrInvalid("choose a schedule before submitting")
	}
	req := attendance.MarkAttendanceRequest{
		Origin:  string(sched.Origin),
		Periods: make([]attendance.MarkPeriod, 0, len(sched.Periods)),
	}
	for _, p := range sched.Periods {
		req.Periods = append(req.Periods, attendance.MarkPeriod{
			Period:    p.Period,
			SubjectID: p.SubjectID,
			Absent:    s.Absent(p.Period),
		})
	}
	return req, nil
}

// Submit records the session through rec. On success the working absences
// are cleared and the session becomes Submitted.
func (s *Session) Submit(ctx context.Context, rec Recorder) (attendance.SubmissionResponse, bool, error) {
	if err := s.checkOpen(); err != nil {
		return attendance.SubmissionResponse{}, false, err
	}
	req, err := s.Request()
	if err != nil {
		return attendance.SubmissionResponse{}, false, err
	}
	res, created, err := rec.Mark(ctx, s.ClassID, s.Date, req)
	if err != nil {
		return attendance.SubmissionResponse{}, false, err
	}
	s.absent = make(map[int]map[int]struct{})
	s.state = StateSubmitted
	s.result = &res
	return res, created, nil
}

// Reset returns to Unresolved so the date can be submitted again.
func (s *Session) Reset() {
	s.state = StateUnresolved
	s.custom = nil
	s.absent = make(map[int]map[int]struct{})
	s.result = nil
}

func (s *Session) mode() Mode {
	switch s.state {
	case StateBorrowed:
		return Borrow(s.borrow)
	case StateCustom:
		return Custom(s.custom)
	}
	return Default()
}

func (s *Session) checkOpen() error {
	if s.state == StateSubmitted {
		return apierr.ErrInvalid("session already submitted; reset to start over")
	}
	return nil
}

func (s *Session) checkCustom() error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if s.state != StateCustom {
		return apierr.ErrInvalid("periods can only be edited in custom mode")
	}
	return nil
}

func (s *Session) customIndex(period int) int {
	for i, p := range s.custom {
		if p.Period == period {
			return i
		}
	}
	return -1
}

func (s *Session) hasPeriod(period int) bool {
	sched, ok := s.Schedule()
	if !ok {
		return false
	}
	for _, p := range sched.Periods {
		if p.Period == period {
			return true
		}
	}
	return false
}

func (s *Session) prune() {
	if len(s.absent) == 0 {
		return
	}
	sched, ok := s.Schedule()
	keep := make(map[int]struct{}, len(sched.Periods))
	if ok {
		for _, p := range sched.Periods {
			keep[p.Period] = struct{}{}
		}
	}
	for period, set := range s.absent {
		if _, ok := keep[period]; !ok {
			delete(s.absent, period)
			continue
		}
		for roll := range set {
			if !s.class.ValidRoll(roll) {
				delete(set, roll)
			}
		}
		if len(set) == 0 {
			delete(s.absent, period)
		}
	}
}

type SessionView struct {
	SessionID  string                         `json:"session_id"`
	ClassID    string                         `json:"class_id"`
	Date       string                         `json:"date"`
	State      State                          `json:"state"`
	Schedule   *EffectiveSchedule             `json:"schedule,omitempty"`
	Absent     map[int][]int                  `json:"absent_roll_numbers"`
	Submission *attendance.SubmissionResponse `json:"submission,omitempty"`
}

func (s *Session) View() SessionView {
	v := SessionView{
		SessionID:  s.ID,
		ClassID:    s.ClassID,
		Date:       s.Date,
		State:      s.state,
		Absent:     make(map[int][]int, len(s.absent)),
		Submission: s.result,
	}
	if sched, ok := s.Schedule(); ok {
		v.Schedule = &sched
	}
	for period := range s.absent {
		v.Absent[period] = s.Absent(period)
	}
	return v
}
