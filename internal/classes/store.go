package classes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"bunkmeter-backend/internal/platform/apierr"
	"bunkmeter-backend/internal/platform/db"
)

// Repository persists class records. Update is an atomic
// read-modify-write: fn sees the current record and its error aborts the
// write.
type Repository interface {
	Create(ctx context.Context, c Class) error
	Get(ctx context.Context, id string) (Class, error)
	GetByNameKey(ctx context.Context, key string) (Class, error)
	Update(ctx context.Context, id string, fn func(c *Class) error) (Class, error)
}

func errClassNotFound(id string) error {
	return apierr.NotFoundf("class %s not found", id)
}

// Store is the MySQL Repository.
type Store struct{ db *sql.DB }

func NewStore(conn *sql.DB) *Store { return &Store{db: conn} }

const selectClass = `
	SELECT class_id, name, name_key, total_students, pin_hash, subjects, timetable, special_dates, created_at, updated_at
	FROM classes`

func (s *Store) Create(ctx context.Context, c Class) error {
	subjects, timetable, special, err := encodeNested(c)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
	INSERT INTO classes (class_id, name, name_key, total_students, pin_hash, subjects, timetable, special_dates, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.NameKey, c.TotalStudents, c.PINHash, subjects, timetable, special, c.CreatedAt, c.UpdatedAt,
	)
	if db.IsDuplicateKey(err) {
		return apierr.ErrConflict("class name already exists")
	}
	if err != nil {
		return fmt.Errorf("insert class: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (Class, error) {
	c, err := scanClass(s.db.QueryRowContext(ctx, selectClass+` WHERE class_id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Class{}, errClassNotFound(id)
	}
	return c, err
}

func (s *Store) GetByNameKey(ctx context.Context, key string) (Class, error) {
	c, err := scanClass(s.db.QueryRowContext(ctx, selectClass+` WHERE name_key = ?`, key))
	if errors.Is(err, sql.ErrNoRows) {
		return Class{}, apierr.ErrNotFound("class not found")
	}
	return c, err
}

func (s *Store) Update(ctx context.Context, id string, fn func(c *Class) error) (Class, error) {
	var out Class
	err := db.Write(ctx, s.db, func(ctx context.Context, tx db.DBTX) error {
		c, err := scanClass(tx.QueryRowContext(ctx, selectClass+` WHERE class_id = ? FOR UPDATE`, id))
		if errors.Is(err, sql.ErrNoRows) {
			return errClassNotFound(id)
		}
		if err != nil {
			return err
		}
		if err := fn(&c); err != nil {
			return err
		}

		subjects, timetable, special, err := encodeNested(c)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
		UPDATE classes
		SET name = ?, name_key = ?, total_students = ?, pin_hash = ?, subjects = ?, timetable = ?, special_dates = ?, updated_at = ?
		WHERE class_id = ?`,
			c.Name, c.NameKey, c.TotalStudents, c.PINHash, subjects, timetable, special, c.UpdatedAt, id,
		); err != nil {
			if db.IsDuplicateKey(err) {
				return apierr.ErrConflict("class name already exists")
			}
			return fmt.Errorf("update class: %w", err)
		}
		out = c
		return nil
	})
	return out, err
}

func scanClass(row *sql.Row) (Class, error) {
	var (
		c         Class
		subjects  []byte
		timetable []byte
		special   []byte
	)
	if err := row.Scan(&c.ID, &c.Name, &c.NameKey, &c.TotalStudents, &c.PINHash,
		&subjects, &timetable, &special, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return Class{}, err
	}
	if err := json.Unmarshal(subjects, &c.Subjects); err != nil {
		return Class{}, fmt.Errorf("decode subjects of %s: %w", c.ID, err)
	}
	if err := json.Unmarshal(timetable, &c.Timetable); err != nil {
		return Class{}, fmt.Errorf("decode timetable of %s: %w", c.ID, err)
	}
	// NULL for rows written before special dates existed.
	if len(special) > 0 {
		if err := json.Unmarshal(special, &c.SpecialDates); err != nil {
			return Class{}, fmt.Errorf("decode special dates of %s: %w", c.ID, err)
		}
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}

func encodeNested(c Class) (subjects, timetable, special []byte, err error) {
	list := c.Subjects
	if list == nil {
		list = []Subject{}
	}
	if subjects, err = json.Marshal(list); err != nil {
		return nil, nil, nil, err
	}
	if timetable, err = json.Marshal(c.Timetable); err != nil {
		return nil, nil, nil, err
	}
	if special, err = json.Marshal(c.SpecialDates.orEmpty()); err != nil {
		return nil, nil, nil, err
	}
	return subjects, timetable, special, nil
}
