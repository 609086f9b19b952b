package classes

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"bunkmeter-backend/internal/timetable"
)

type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Class is the persisted record: the subject catalog and the weekly
// template are embedded in it.
type Class struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	NameKey       string             `json:"name_key"`
	TotalStudents int                `json:"total_students"`
	PINHash       string             `json:"pin_hash"`
	Subjects      []Subject          `json:"subjects"`
	Timetable     timetable.Template `json:"timetable"`
	SpecialDates  SpecialDates       `json:"special_dates"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func (c Class) Subject(id string) (Subject, bool) {
	for _, s := range c.Subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}

func (c Class) HasSubject(id string) bool {
	_, ok := c.Subject(id)
	return ok
}

// ValidRoll reports whether roll is within [1, TotalStudents].
func (c Class) ValidRoll(roll int) bool {
	return roll >= 1 && roll <= c.TotalStudents
}

// NameKey folds a display name for case-insensitive uniqueness.
func NameKey(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}

func (c Class) toDTO() ClassResponse {
	subjects := make([]SubjectResponse, 0, len(c.Subjects))
	for _, s := range c.Subjects {
		subjects = append(subjects, SubjectResponse(s))
	}
	return ClassResponse{
		ClassID:       c.ID,
		Name:          c.Name,
		TotalStudents: c.TotalStudents,
		Subjects:      subjects,
		Timetable:     c.Timetable,
		SpecialDates:  c.SpecialDates.orEmpty(),
		CreatedAt:     c.CreatedAt,
	}
}
