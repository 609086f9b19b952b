package attendance

import (
	"time"

	"bunkmeter-backend/internal/timetable"
)

// PeriodRecord is one period of a submitted day with its absentees.
type PeriodRecord struct {
	Period      int    `json:"period"`
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	Absent      []int  `json:"absent_roll_numbers"`
}

// Submission is the atomic unit of recording, keyed by (ClassID, Date).
type Submission struct {
	ClassID     string           `json:"class_id"`
	Date        string           `json:"date"` // YYYY-MM-DD
	Origin      timetable.Origin `json:"origin"`
	Periods     []PeriodRecord   `json:"periods"`
	SubmittedAt time.Time        `json:"submitted_at"`
}

func (p PeriodRecord) IsAbsent(roll int) bool {
	for _, r := range p.Absent {
		if r == roll {
			return true
		}
	}
	return false
}

func (s Submission) toDTO() SubmissionResponse {
	periods := make([]PeriodResponse, 0, len(s.Periods))
	for _, p := range s.Periods {
		absent := p.Absent
		if absent == nil {
			absent = []int{}
		}
		periods = append(periods, PeriodResponse{
			Period:      p.Period,
			SubjectID:   p.SubjectID,
			SubjectName: p.SubjectName,
			Absent:      absent,
		})
	}
	return SubmissionResponse{
		ClassID:     s.ClassID,
		Date:        s.Date,
		Origin:      string(s.Origin),
		Periods:     periods,
		SubmittedAt: s.SubmittedAt,
	}
}
