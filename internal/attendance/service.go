package attendance

import (
	"context"
	"log"
	"sort"
	"time"

	"bunkmeter-backend/internal/classes"
	"bunkmeter-backend/internal/platform/apierr"
	"bunkmeter-backend/internal/timetable"
)

type ClassReader interface {
	Get(ctx context.Context, classID string) (classes.Class, error)
}

type Service struct {
	classes ClassReader
	store   Repository
	clock   func() time.Time
}

func NewService(classes ClassReader, store Repository) *Service {
	return &Service{classes: classes, store: store, clock: time.Now}
}

// Mark validates a day's periods against the class and stores them as the
// submission for (classID, date), replacing any earlier one. Nothing is
// written unless every period is valid.
func (s *Service) Mark(ctx context.Context, classID, date string, in MarkAttendanceRequest) (SubmissionResponse, bool, error) {
	day, err := s.ParseDate(date)
	if err != nil {
		return SubmissionResponse{}, false, err
	}
	origin, err := timetable.ParseOrigin(in.Origin)
	if err != nil {
		return SubmissionResponse{}, false, err
	}
	c, err := s.classes.Get(ctx, classID)
	if err != nil {
		return SubmissionResponse{}, false, err
	}

	periods, err := buildPeriods(c, in.Periods)
	if err != nil {
		return SubmissionResponse{}, false, err
	}

	sub := Submission{
		ClassID:     c.ID,
		Date:        day,
		Origin:      origin,
		Periods:     periods,
		SubmittedAt: s.clock().UTC(),
	}
	created, err := s.store.Upsert(ctx, sub)
	if err != nil {
		log.Printf("[ERROR] store submission %s/%s: %v", c.ID, day, err)
		return SubmissionResponse{}, false, err
	}
	return sub.toDTO(), created, nil
}

func buildPeriods(c classes.Class, in []MarkPeriod) ([]PeriodRecord, error) {
	if len(in) == 0 {
		return nil, apierr.ErrInvalid("at least one period is required")
	}

	seen := make(map[int]struct{}, len(in))
	out := make([]PeriodRecord, 0, len(in))
	for _, p := range in {
		if p.Period <= 0 {
			return nil, apierr.Invalidf("period number must be > 0, got %d", p.Period)
		}
		if _, dup := seen[p.Period]; dup {
			return nil, apierr.Invalidf("duplicate period number %d", p.Period)
		}
		seen[p.Period] = struct{}{}

		if p.SubjectID == "" {
			return nil, apierr.Invalidf("incomplete period %d: no subject selected", p.Period)
		}
		subject, ok := c.Subject(p.SubjectID)
		if !ok {
			return nil, apierr.Invalidf("period %d references unknown subject %s", p.Period, p.SubjectID)
		}

		absent, err := absentSet(c, p)
		if err != nil {
			return nil, err
		}
		out = append(out, PeriodRecord{
			Period:      p.Period,
			SubjectID:   subject.ID,
			SubjectName: subject.Name,
			Absent:      absent,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out, nil
}

// absentSet checks every roll is in [1, TotalStudents] and returns them
// sorted with duplicates removed.
func absentSet(c classes.Class, p MarkPeriod) ([]int, error) {
	set := make(map[int]struct{}, len(p.Absent))
	for _, roll := range p.Absent {
		if !c.ValidRoll(roll) {
			return nil, apierr.Invalidf("period %d: roll number %d out of range 1..%d", p.Period, roll, c.TotalStudents)
		}
		set[roll] = struct{}{}
	}
	out := make([]int, 0, len(set))
	for roll := range set {
		out = append(out, roll)
	}
	sort.Ints(out)
	return out, nil
}

func (s *Service) Get(ctx context.Context, classID, date string) (SubmissionResponse, error) {
	day, err := s.ParseDate(date)
	if err != nil {
		return SubmissionResponse{}, err
	}
	if _, err := s.classes.Get(ctx, classID); err != nil {
		return SubmissionResponse{}, err
	}
	sub, err := s.store.Get(ctx, classID, day)
	if err != nil {
		return SubmissionResponse{}, err
	}
	return sub.toDTO(), nil
}

// ListDates returns the dates that have a submission, for calendar marking.
func (s *Service) ListDates(ctx context.Context, classID string, q DatesQuery) (DatesResponse, error) {
	var err error
	if q.From != "" {
		if q.From, err = s.ParseDate(q.From); err != nil {
			return DatesResponse{}, apierr.ErrInvalid("from must be YYYY-MM-DD")
		}
	}
	if q.To != "" {
		if q.To, err = s.ParseDate(q.To); err != nil {
			return DatesResponse{}, apierr.ErrInvalid("to must be YYYY-MM-DD")
		}
	}
	if q.From != "" && q.To != "" && q.To < q.From {
		return DatesResponse{}, apierr.ErrInvalid("to must be >= from")
	}
	if _, err := s.classes.Get(ctx, classID); err != nil {
		return DatesResponse{}, err
	}

	dates, err := s.store.ListDates(ctx, classID, q)
	if err != nil {
		return DatesResponse{}, err
	}
	return DatesResponse{ClassID: classID, Dates: dates}, nil
}

// Ledger replays the class's whole submission history.
func (s *Service) Ledger(ctx context.Context, classID string) (classes.Class, *Ledger, error) {
	c, err := s.classes.Get(ctx, classID)
	if err != nil {
		return classes.Class{}, nil, err
	}
	subs, err := s.store.ListByClass(ctx, classID)
	if err != nil {
		return classes.Class{}, nil, err
	}
	l, err := Fold(classID, subs)
	if err != nil {
		return classes.Class{}, nil, err
	}
	return c, l, nil
}

// ParseDate returns the canonical YYYY-MM-DD form of v.
func (s *Service) ParseDate(v string) (string, error) {
	t, err := timetable.ParseDate(v, s.clock())
	if err != nil {
		return "", err
	}
	return t.Format(timetable.DateLayout), nil
}
