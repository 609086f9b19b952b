package attendance

import "time"

type MarkPeriod struct {
	Period    int    `json:"period"`
	SubjectID string `json:"subject_id"`
	Absent    []int  `json:"absent_roll_numbers"`
}

type MarkAttendanceRequest struct {
	Origin  string       `json:"origin"` // default | borrowed | custom
	Periods []MarkPeriod `json:"periods" binding:"required"`
}

type PeriodResponse struct {
	Period      int    `json:"period"`
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	Absent      []int  `json:"absent_roll_numbers"`
}

type SubmissionResponse struct {
	ClassID     string           `json:"class_id"`
	Date        string           `json:"date"`
	Origin      string           `json:"origin"`
	Periods     []PeriodResponse `json:"periods"`
	SubmittedAt time.Time        `json:"submitted_at"`
}

type DatesQuery struct {
	From string
	To   string
}

type DatesResponse struct {
	ClassID string   `json:"class_id"`
	Dates   []string `json:"dates"`
}
