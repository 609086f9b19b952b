package classes

import (
	"time"

	"bunkmeter-backend/internal/timetable"
)

const (
	MinPINLength     = 4
	MaxPINLength     = 32
	MaxTotalStudents = 1000
	MaxNameLength    = 128
)

type CreateSubjectRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateClassRequest struct {
	Name          string                 `json:"class_name" binding:"required"`
	TotalStudents int                    `json:"total_students" binding:"required,gt=0"`
	PIN           string                 `json:"admin_pin" binding:"required"`
	Subjects      []CreateSubjectRequest `json:"subjects" binding:"dive"`
}

type CreateClassResponse struct {
	ClassID string `json:"class_id"`
	Token   string `json:"token"`
}

type LoginRequest struct {
	Name string `json:"class_name" binding:"required"`
	PIN  string `json:"admin_pin" binding:"required"`
}

type LoginResponse struct {
	ClassID string `json:"class_id"`
	Token   string `json:"token"`
}

type LookupResponse struct {
	ClassID string `json:"class_id"`
	Name    string `json:"class_name"`
}

type SubjectResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RenameSubjectRequest struct {
	Name string `json:"name" binding:"required"`
}

type ClassResponse struct {
	ClassID       string             `json:"class_id"`
	Name          string             `json:"class_name"`
	TotalStudents int                `json:"total_students"`
	Subjects      []SubjectResponse  `json:"subjects"`
	Timetable     timetable.Template `json:"timetable"`
	SpecialDates  SpecialDates       `json:"special_dates"`
	CreatedAt     time.Time          `json:"created_at"`
}

type UpdateTimetableRequest struct {
	Timetable *timetable.Template `json:"timetable" binding:"required"`
}

type AddPeriodRequest struct {
	SubjectID string `json:"subject_id" binding:"required"`
}

type SpecialDatesRequest struct {
	Exams    []string `json:"exams"`
	Holidays []string `json:"holidays"`
}
