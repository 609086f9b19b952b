package schedule

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"bunkmeter-backend/internal/attendance"
	"bunkmeter-backend/internal/platform/apierr"
	"bunkmeter-backend/internal/timetable"
)

const DefaultSessionTTL = 2 * time.Hour

type entry struct {
	mu      sync.Mutex
	s       *Session
	expires time.Time
}

// Registry holds open sessions in memory. Each session belongs to the class
// it was opened for; callers pass the class their token grants and any
// other class is refused. Expired sessions are swept on access.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry

	classes  ClassReader
	recorder Recorder
	ttl      time.Duration
	clock    func() time.Time
	newID    func() string
}

func NewRegistry(classes ClassReader, recorder Recorder, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Registry{
		sessions: make(map[string]*entry),
		classes:  classes,
		recorder: recorder,
		ttl:      ttl,
		clock:    time.Now,
		newID:    func() string { return ulid.Make().String() },
	}
}

// Open starts a session for classID on date ("today" allowed).
func (r *Registry) Open(ctx context.Context, classID, date string) (SessionView, error) {
	day, err := timetable.ParseDate(date, r.clock())
	if err != nil {
		return SessionView{}, err
	}
	c, err := r.classes.Get(ctx, classID)
	if err != nil {
		return SessionView{}, err
	}

	s := NewSession(r.newID(), c, day)
	r.mu.Lock()
	r.sweepLocked()
	r.sessions[s.ID] = &entry{s: s, expires: r.clock().Add(r.ttl)}
	r.mu.Unlock()

	log.Printf("[INFO] session opened: id=%s class=%s date=%s", s.ID, c.ID, s.Date)
	return s.View(), nil
}

func (r *Registry) Get(ctx context.Context, id, classID string) (SessionView, error) {
	return r.do(ctx, id, classID, func(*Session) error { return nil })
}

func (r *Registry) UseDefault(ctx context.Context, id, classID string) (SessionView, error) {
	return r.do(ctx, id, classID, func(s *Session) error { return s.UseDefault() })
}

func (r *Registry) Borrow(ctx context.Context, id, classID string, d timetable.Weekday) (SessionView, error) {
	return r.do(ctx, id, classID, func(s *Session) error { return s.Borrow(d) })
}

func (r *Registry) Customize(ctx context.Context, id, classID string) (SessionView, error) {
	return r.do(ctx, id, classID, func(s *Session) error { return s.Customize() })
}

func (r *Registry) AddPeriod(ctx context.Context, id, classID, subjectID string) (SessionView, error) {
	return r.do(ctx, id, classID, func(s *Session) error {
		_, err := s.AddPeriod(subjectID)
		return err
	})
}

func (r *Registry) RemovePeriod(ctx context.Context, id, classID string, period int) (SessionView, error) {
	return r.do(ctx, id, classID, func(s *Session) error { return s.RemovePeriod(period) })
}

func (r *Registry) SetSubject(ctx context.Context, id, classID string, period int, subjectID string) (SessionView, error) {
	return r.do(ctx, id, classID, func(s *Session) error { return s.SetSubject(period, subjectID) })
}

func (r *Registry) ToggleAbsent(ctx context.Context, id, classID string, period, roll int) (SessionView, error) {
	return r.do(ctx, id, classID, func(s *Session) error {
		_, err := s.ToggleAbsent(period, roll)
		return err
	})
}

// Submit records the session. created reports whether the date had no
// earlier submission.
func (r *Registry) Submit(ctx context.Context, id, classID string) (view SessionView, created bool, err error) {
	view, err = r.do(ctx, id, classID, func(s *Session) error {
		var res attendance.SubmissionResponse
		res, created, err = s.Submit(ctx, r.recorder)
		if err == nil {
			log.Printf("[INFO] session submitted: id=%s class=%s date=%s periods=%d", s.ID, s.ClassID, s.Date, len(res.Periods))
		}
		return err
	})
	return view, created, err
}

func (r *Registry) Reset(ctx context.Context, id, classID string) (SessionView, error) {
	return r.do(ctx, id, classID, func(s *Session) error {
		s.Reset()
		return nil
	})
}

// Close discards a session.
func (r *Registry) Close(id, classID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked()
	e, ok := r.sessions[id]
	if !ok {
		return apierr.NotFoundf("session %s not found", id)
	}
	if e.s.ClassID != classID {
		return apierr.ErrForbidden("session belongs to another class")
	}
	delete(r.sessions, id)
	return nil
}

// Len is the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked()
	return len(r.sessions)
}

// do runs fn on the session with the class reloaded, so catalog and
// template edits made since the session opened are visible.
func (r *Registry) do(ctx context.Context, id, classID string, fn func(*Session) error) (SessionView, error) {
	e, err := r.lookup(id, classID)
	if err != nil {
		return SessionView{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := r.classes.Get(ctx, e.s.ClassID)
	if err != nil {
		return SessionView{}, err
	}
	e.s.Rebind(c)
	if err := fn(e.s); err != nil {
		return SessionView{}, err
	}

	r.mu.Lock()
	e.expires = r.clock().Add(r.ttl)
	r.mu.Unlock()
	return e.s.View(), nil
}

func (r *Registry) lookup(id, classID string) (*entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked()
	e, ok := r.sessions[id]
	if !ok {
		return nil, apierr.NotFoundf("session %s not found", id)
	}
	if e.s.ClassID != classID {
		return nil, apierr.ErrForbidden("session belongs to another class")
	}
	return e, nil
}

func (r *Registry) sweepLocked() {
	now := r.clock()
	for id, e := range r.sessions {
		if now.After(e.expires) {
			delete(r.sessions, id)
		}
	}
}
