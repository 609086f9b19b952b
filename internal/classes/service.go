package classes

import (
	"context"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"

	"bunkmeter-backend/internal/platform/apierr"
	"bunkmeter-backend/internal/platform/auth"
	"bunkmeter-backend/internal/timetable"
)

type TokenIssuer interface {
	Issue(classID string) (string, error)
}

type Service struct {
	repo   Repository
	tokens TokenIssuer
	clock  func() time.Time
	newID  func() string
}

func NewService(repo Repository, tokens TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		clock:  time.Now,
		newID:  func() string { return ulid.Make().String() },
	}
}

// CreateClass stores a class with its initial subjects and a blank weekly
// template, then issues an admin token for it.
func (s *Service) CreateClass(ctx context.Context, in CreateClassRequest) (CreateClassResponse, error) {
	name, err := cleanName(in.Name, "class_name")
	if err != nil {
		return CreateClassResponse{}, err
	}
	if in.TotalStudents <= 0 || in.TotalStudents > MaxTotalStudents {
		return CreateClassResponse{}, apierr.Invalidf("total_students must be between 1 and %d", MaxTotalStudents)
	}
	if err := checkPIN(in.PIN); err != nil {
		return CreateClassResponse{}, err
	}

	subjects := make([]Subject, 0, len(in.Subjects))
	for _, sr := range in.Subjects {
		subjectName, err := cleanName(sr.Name, "subject name")
		if err != nil {
			return CreateClassResponse{}, err
		}
		subjects = append(subjects, Subject{ID: s.newID(), Name: subjectName})
	}

	hash, err := auth.HashPIN(in.PIN)
	if err != nil {
		return CreateClassResponse{}, err
	}

	now := s.clock().UTC()
	c := Class{
		ID:            s.newID(),
		Name:          name,
		NameKey:       NameKey(name),
		TotalStudents: in.TotalStudents,
		PINHash:       hash,
		Subjects:      subjects,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return CreateClassResponse{}, err
	}
	log.Printf("[INFO] class created: id=%s name=%q subjects=%d", c.ID, c.Name, len(subjects))

	token, err := s.tokens.Issue(c.ID)
	if err != nil {
		return CreateClassResponse{}, err
	}
	return CreateClassResponse{ClassID: c.ID, Token: token}, nil
}

func (s *Service) LookupByName(ctx context.Context, name string) (LookupResponse, error) {
	if strings.TrimSpace(name) == "" {
		return LookupResponse{}, apierr.ErrInvalid("name is required")
	}
	c, err := s.repo.GetByNameKey(ctx, NameKey(name))
	if err != nil {
		return LookupResponse{}, err
	}
	return LookupResponse{ClassID: c.ID, Name: c.Name}, nil
}

// Login checks the admin PIN of the named class and issues a token.
func (s *Service) Login(ctx context.Context, in LoginRequest) (LoginResponse, error) {
	c, err := s.repo.GetByNameKey(ctx, NameKey(in.Name))
	if err != nil {
		return LoginResponse{}, err
	}
	if err := auth.CheckPIN(c.PINHash, in.PIN); err != nil {
		return LoginResponse{}, apierr.ErrUnauthenticated("invalid pin")
	}
	token, err := s.tokens.Issue(c.ID)
	if err != nil {
		return LoginResponse{}, err
	}
	return LoginResponse{ClassID: c.ID, Token: token}, nil
}

// Get returns the full record; other packages read classes through it.
func (s *Service) Get(ctx context.Context, classID string) (Class, error) {
	return s.repo.Get(ctx, classID)
}

func (s *Service) GetClass(ctx context.Context, classID string) (ClassResponse, error) {
	c, err := s.repo.Get(ctx, classID)
	if err != nil {
		return ClassResponse{}, err
	}
	return c.toDTO(), nil
}

func (s *Service) ListSubjects(ctx context.Context, classID string) ([]Subject, error) {
	c, err := s.repo.Get(ctx, classID)
	if err != nil {
		return nil, err
	}
	return c.Subjects, nil
}

// AddSubject appends a subject. Names need not be unique.
func (s *Service) AddSubject(ctx context.Context, classID, name string) (SubjectResponse, error) {
	name, err := cleanName(name, "subject name")
	if err != nil {
		return SubjectResponse{}, err
	}
	subject := Subject{ID: s.newID(), Name: name}
	_, err = s.repo.Update(ctx, classID, func(c *Class) error {
		c.Subjects = append(c.Subjects, subject)
		c.UpdatedAt = s.clock().UTC()
		return nil
	})
	if err != nil {
		return SubjectResponse{}, err
	}
	return SubjectResponse(subject), nil
}

func (s *Service) RenameSubject(ctx context.Context, classID, subjectID, name string) (SubjectResponse, error) {
	name, err := cleanName(name, "subject name")
	if err != nil {
		return SubjectResponse{}, err
	}
	var out Subject
	_, err = s.repo.Update(ctx, classID, func(c *Class) error {
		for i := range c.Subjects {
			if c.Subjects[i].ID == subjectID {
				c.Subjects[i].Name = name
				c.UpdatedAt = s.clock().UTC()
				out = c.Subjects[i]
				return nil
			}
		}
		return apierr.NotFoundf("subject %s not found", subjectID)
	})
	if err != nil {
		return SubjectResponse{}, err
	}
	return SubjectResponse(out), nil
}

func (s *Service) GetTimetable(ctx context.Context, classID string) (timetable.Template, error) {
	c, err := s.repo.Get(ctx, classID)
	if err != nil {
		return timetable.Template{}, err
	}
	return c.Timetable, nil
}

// UpdateTimetable replaces the whole weekly template. Validation runs
// against the stored catalog before anything is written.
func (s *Service) UpdateTimetable(ctx context.Context, classID string, tmpl timetable.Template) (timetable.Template, error) {
	normalized := tmpl.Normalized()
	c, err := s.repo.Update(ctx, classID, func(c *Class) error {
		if err := normalized.Validate(c.HasSubject); err != nil {
			return err
		}
		c.Timetable = normalized
		c.UpdatedAt = s.clock().UTC()
		return nil
	})
	if err != nil {
		return timetable.Template{}, err
	}
	return c.Timetable, nil
}

func (s *Service) AddPeriod(ctx context.Context, classID string, day timetable.Weekday, subjectID string) (timetable.PeriodSlot, error) {
	var slot timetable.PeriodSlot
	_, err := s.repo.Update(ctx, classID, func(c *Class) error {
		if !c.HasSubject(subjectID) {
			return apierr.Invalidf("unknown subject %s", subjectID)
		}
		var err error
		slot, err = c.Timetable.AddPeriod(day, subjectID)
		c.UpdatedAt = s.clock().UTC()
		return err
	})
	return slot, err
}

func (s *Service) RemovePeriod(ctx context.Context, classID string, day timetable.Weekday, period int) error {
	_, err := s.repo.Update(ctx, classID, func(c *Class) error {
		c.UpdatedAt = s.clock().UTC()
		return c.Timetable.RemovePeriod(day, period)
	})
	return err
}

func cleanName(name, field string) (string, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return "", apierr.Invalidf("%s is required", field)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", apierr.Invalidf("%s must be at most %d characters", field, MaxNameLength)
	}
	return name, nil
}

func checkPIN(pin string) error {
	if n := len(pin); n < MinPINLength || n > MaxPINLength {
		return apierr.Invalidf("admin_pin must be %d to %d bytes", MinPINLength, MaxPINLength)
	}
	return nil
}
