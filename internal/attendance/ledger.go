package attendance

import (
	"fmt"
	"sort"
)

// SubjectTally is the running total for one subject of one class.
// Absences counts, per roll number, the periods that roll missed.
type SubjectTally struct {
	SubjectID string
	Total     int
	Absences  map[int]int
}

// Attended is Total minus the sessions roll missed; never above Total.
func (t SubjectTally) Attended(roll int) int {
	return t.Total - t.Absences[roll]
}

// Ledger folds a class's submissions into per-subject tallies. It keeps
// each date's contribution so applying a newer submission for a date that
// is already counted replaces it instead of adding to it.
type Ledger struct {
	classID  string
	byDate   map[string]Submission
	subjects map[string]*SubjectTally
}

func NewLedger(classID string) *Ledger {
	return &Ledger{
		classID:  classID,
		byDate:   make(map[string]Submission),
		subjects: make(map[string]*SubjectTally),
	}
}

// Fold builds a ledger from a submission history in any order. Later
// SubmittedAt wins when a date appears twice.
func Fold(classID string, subs []Submission) (*Ledger, error) {
	ordered := make([]Submission, len(subs))
	copy(ordered, subs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SubmittedAt.Before(ordered[j].SubmittedAt)
	})

	l := NewLedger(classID)
	for _, s := range ordered {
		if err := l.Apply(s); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Apply counts s, first retracting whatever was counted for s.Date.
func (l *Ledger) Apply(s Submission) error {
	if s.ClassID != l.classID {
		return fmt.Errorf("ledger for class %s cannot apply submission of class %s", l.classID, s.ClassID)
	}
	if prev, ok := l.byDate[s.Date]; ok {
		l.add(prev, -1)
	}
	l.add(s, +1)
	l.byDate[s.Date] = s
	return nil
}

func (l *Ledger) add(s Submission, sign int) {
	for _, p := range s.Periods {
		t := l.subjects[p.SubjectID]
		if t == nil {
			t = &SubjectTally{SubjectID: p.SubjectID, Absences: make(map[int]int)}
			l.subjects[p.SubjectID] = t
		}
		t.Total += sign
		for _, roll := range p.Absent {
			t.Absences[roll] += sign
			if t.Absences[roll] == 0 {
				delete(t.Absences, roll)
			}
		}
	}
}

// Subject returns a copy of the tally for subjectID; the zero tally when
// nothing was ever recorded for it.
func (l *Ledger) Subject(subjectID string) SubjectTally {
	t, ok := l.subjects[subjectID]
	if !ok {
		return SubjectTally{SubjectID: subjectID, Absences: map[int]int{}}
	}
	out := SubjectTally{SubjectID: t.SubjectID, Total: t.Total, Absences: make(map[int]int, len(t.Absences))}
	for roll, n := range t.Absences {
		out.Absences[roll] = n
	}
	return out
}

// Dates lists the counted dates in ascending order.
func (l *Ledger) Dates() []string {
	out := make([]string, 0, len(l.byDate))
	for d := range l.byDate {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Submission returns the submission counted for date, if any.
func (l *Ledger) Submission(date string) (Submission, bool) {
	s, ok := l.byDate[date]
	return s, ok
}
