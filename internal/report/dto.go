package report

import "bunkmeter-backend/internal/timetable"

type SubjectReport struct {
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	Stats
}

type StudentReport struct {
	ClassID    string          `json:"class_id"`
	ClassName  string          `json:"class_name"`
	RollNumber int             `json:"roll_number"`
	Subjects   []SubjectReport `json:"subjects"`
}

type SubjectSummary struct {
	SubjectID      string  `json:"subject_id"`
	SubjectName    string  `json:"subject_name"`
	TotalSessions  int     `json:"total_sessions"`
	AverageAttend  float64 `json:"average_percentage"`
	AtRiskStudents []int   `json:"at_risk_roll_numbers"`
}

type ClassReport struct {
	ClassID       string           `json:"class_id"`
	ClassName     string           `json:"class_name"`
	TotalStudents int              `json:"total_students"`
	DaysRecorded  int              `json:"days_recorded"`
	Subjects      []SubjectSummary `json:"subjects"`
}

type BunkEffectRequest struct {
	Dates []string `json:"dates" binding:"required,min=1"`
}

type SkippedDate struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// SubjectEffect compares one subject's stats now and after the planned bunks.
type SubjectEffect struct {
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	Missed      int    `json:"missed_periods"`
	Before      Stats  `json:"before"`
	After       Stats  `json:"after"`
}

type BunkEffect struct {
	ClassID    string          `json:"class_id"`
	RollNumber int             `json:"roll_number"`
	Planned    []string        `json:"planned_dates"`
	Exams      []string        `json:"exam_dates"`
	Skipped    []SkippedDate   `json:"skipped"`
	Subjects   []SubjectEffect `json:"subjects"`
}

type CalendarPeriod struct {
	Period      int    `json:"period"`
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	Present     bool   `json:"present"`
}

type CalendarDay struct {
	Date     string            `json:"date"`
	Weekday  timetable.Weekday `json:"weekday"`
	Origin   timetable.Origin  `json:"origin"`
	Exam     bool              `json:"exam"`
	Attended int               `json:"attended"`
	Missed   int               `json:"missed"`
	Periods  []CalendarPeriod  `json:"periods"`
}

type StudentCalendar struct {
	ClassID    string        `json:"class_id"`
	RollNumber int           `json:"roll_number"`
	From       string        `json:"from,omitempty"`
	To         string        `json:"to,omitempty"`
	Days       []CalendarDay `json:"days"`
	Exams      []string      `json:"exam_dates"`
	Holidays   []string      `json:"holiday_dates"`
}
