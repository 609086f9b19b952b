package report

import (
	"context"
	"time"

	"bunkmeter-backend/internal/attendance"
	"bunkmeter-backend/internal/classes"
	"bunkmeter-backend/internal/platform/apierr"
)

// LedgerSource replays a class's attendance history.
type LedgerSource interface {
	Ledger(ctx context.Context, classID string) (classes.Class, *attendance.Ledger, error)
}

type Service struct {
	ledgers LedgerSource
	clock   func() time.Time
}

func NewService(ledgers LedgerSource) *Service {
	return &Service{ledgers: ledgers, clock: time.Now}
}

// StudentReport evaluates every subject in the catalog for one roll number.
// Subjects with no recorded sessions are listed as safe with no projection.
func (s *Service) StudentReport(ctx context.Context, classID string, roll int) (StudentReport, error) {
	c, l, err := s.ledgers.Ledger(ctx, classID)
	if err != nil {
		return StudentReport{}, err
	}
	if !c.ValidRoll(roll) {
		return StudentReport{}, apierr.NotFoundf("roll number %d not in class (1..%d)", roll, c.TotalStudents)
	}

	out := StudentReport{
		ClassID:    c.ID,
		ClassName:  c.Name,
		RollNumber: roll,
		Subjects:   make([]SubjectReport, 0, len(c.Subjects)),
	}
	for _, subj := range c.Subjects {
		t := l.Subject(subj.ID)
		out.Subjects = append(out.Subjects, SubjectReport{
			SubjectID:   subj.ID,
			SubjectName: subj.Name,
			Stats:       Evaluate(t.Attended(roll), t.Total),
		})
	}
	return out, nil
}

// ClassReport summarises sessions held per subject and who is at risk.
func (s *Service) ClassReport(ctx context.Context, classID string) (ClassReport, error) {
	c, l, err := s.ledgers.Ledger(ctx, classID)
	if err != nil {
		return ClassReport{}, err
	}

	out := ClassReport{
		ClassID:       c.ID,
		ClassName:     c.Name,
		TotalStudents: c.TotalStudents,
		DaysRecorded:  len(l.Dates()),
		Subjects:      make([]SubjectSummary, 0, len(c.Subjects)),
	}
	for _, subj := range c.Subjects {
		t := l.Subject(subj.ID)
		sum := SubjectSummary{
			SubjectID:      subj.ID,
			SubjectName:    subj.Name,
			TotalSessions:  t.Total,
			AtRiskStudents: []int{},
		}
		if t.Total > 0 && c.TotalStudents > 0 {
			attended := 0
			for roll := 1; roll <= c.TotalStudents; roll++ {
				a := t.Attended(roll)
				attended += a
				if Classify(a, t.Total) == StatusAtRisk {
					sum.AtRiskStudents = append(sum.AtRiskStudents, roll)
				}
			}
			sum.AverageAttend = Percentage(attended, t.Total*c.TotalStudents)
		}
		out.Subjects = append(out.Subjects, sum)
	}
	return out, nil
}
