package attendance

import (
	"testing"
	"time"
)

func submission(date string, at time.Time, periods ...PeriodRecord) Submission {
	return Submission{ClassID: "c1", Date: date, Periods: periods, SubmittedAt: at}
}

func TestLedgerCountsPerSubject(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	l, err := Fold("c1", []Submission{
		submission("2024-01-01", t0,
			PeriodRecord{Period: 1, SubjectID: "math", Absent: []int{5}},
			PeriodRecord{Period: 2, SubjectID: "sci"}),
		submission("2024-01-02", t0.Add(24*time.Hour),
			PeriodRecord{Period: 1, SubjectID: "math"},
			PeriodRecord{Period: 2, SubjectID: "math", Absent: []int{5, 7}}),
	})
	if err != nil {
		t.Fatal(err)
	}

	math := l.Subject("math")
	if math.Total != 3 {
		t.Errorf("math total = %d, want 3", math.Total)
	}
	if got := math.Attended(5); got != 1 {
		t.Errorf("roll 5 attended math %d, want 1", got)
	}
	if got := math.Attended(7); got != 2 {
		t.Errorf("roll 7 attended math %d, want 2", got)
	}
	if sci := l.Subject("sci"); sci.Total != 1 || sci.Attended(5) != 1 {
		t.Errorf("sci = %+v", sci)
	}
	if none := l.Subject("art"); none.Total != 0 || none.Attended(1) != 0 {
		t.Errorf("unknown subject = %+v", none)
	}
	if dates := l.Dates(); len(dates) != 2 || dates[0] != "2024-01-01" {
		t.Errorf("dates = %v", dates)
	}
}

func TestLedgerResubmissionReplaces(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	l := NewLedger("c1")

	first := submission("2024-01-01", t0,
		PeriodRecord{Period: 1, SubjectID: "math", Absent: []int{5}},
		PeriodRecord{Period: 2, SubjectID: "sci", Absent: []int{5}})
	second := submission("2024-01-01", t0.Add(time.Hour),
		PeriodRecord{Period: 1, SubjectID: "math", Absent: []int{6}},
		PeriodRecord{Period: 2, SubjectID: "sci"})

	for _, s := range []Submission{first, second} {
		if err := l.Apply(s); err != nil {
			t.Fatal(err)
		}
	}

	math := l.Subject("math")
	if math.Total != 1 {
		t.Errorf("math total = %d after resubmission, want 1", math.Total)
	}
	if math.Attended(5) != 1 || math.Attended(6) != 0 {
		t.Errorf("math absences = %v, want only roll 6", math.Absences)
	}
	if sci := l.Subject("sci"); sci.Total != 1 || len(sci.Absences) != 0 {
		t.Errorf("sci = %+v", sci)
	}
}

func TestLedgerResubmissionDropsPeriods(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	l, err := Fold("c1", []Submission{
		// out of order: the later SubmittedAt must win
		submission("2024-01-01", t0.Add(time.Hour), PeriodRecord{Period: 1, SubjectID: "math"}),
		submission("2024-01-01", t0,
			PeriodRecord{Period: 1, SubjectID: "math", Absent: []int{1}},
			PeriodRecord{Period: 2, SubjectID: "sci", Absent: []int{1}}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if sci := l.Subject("sci"); sci.Total != 0 {
		t.Errorf("sci total = %d, want 0", sci.Total)
	}
	if math := l.Subject("math"); math.Total != 1 || math.Attended(1) != 1 {
		t.Errorf("math = %+v", math)
	}
}

func TestLedgerAttendedNeverExceedsTotal(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	l := NewLedger("c1")
	for i := 0; i < 5; i++ {
		s := submission("2024-01-01", t0.Add(time.Duration(i)*time.Minute),
			PeriodRecord{Period: 1, SubjectID: "math", Absent: []int{i%2 + 1}})
		if err := l.Apply(s); err != nil {
			t.Fatal(err)
		}
	}
	math := l.Subject("math")
	for roll := 1; roll <= 3; roll++ {
		if a := math.Attended(roll); a < 0 || a > math.Total {
			t.Errorf("roll %d attended %d of %d", roll, a, math.Total)
		}
	}
	if math.Total != 1 {
		t.Errorf("total = %d, want 1", math.Total)
	}
}

func TestLedgerRejectsOtherClass(t *testing.T) {
	l := NewLedger("c1")
	if err := l.Apply(Submission{ClassID: "c2", Date: "2024-01-01"}); err == nil {
		t.Error("applied a submission of another class")
	}
}

func TestSubjectCopyIsIsolated(t *testing.T) {
	l := NewLedger("c1")
	_ = l.Apply(submission("2024-01-01", time.Now(), PeriodRecord{Period: 1, SubjectID: "math", Absent: []int{2}}))
	cp := l.Subject("math")
	cp.Absences[2] = 99
	if l.Subject("math").Absences[2] != 1 {
		t.Error("Subject returned shared state")
	}
}
