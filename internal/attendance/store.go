package attendance

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"bunkmeter-backend/internal/platform/apierr"
	"bunkmeter-backend/internal/platform/db"
	"bunkmeter-backend/internal/timetable"
)

// Repository persists submissions keyed by (class, date). Upsert replaces
// any prior submission for the same key.
type Repository interface {
	Upsert(ctx context.Context, s Submission) (created bool, err error)
	Get(ctx context.Context, classID, date string) (Submission, error)
	ListByClass(ctx context.Context, classID string) ([]Submission, error)
	ListDates(ctx context.Context, classID string, q DatesQuery) ([]string, error)
}

func errSubmissionNotFound(classID, date string) error {
	return apierr.NotFoundf("no attendance for class %s on %s", classID, date)
}

// Store is the MySQL Repository.
type Store struct{ db db.DBTX }

func NewStore(conn db.DBTX) *Store { return &Store{db: conn} }

// Upsert: INSERT ... ON DUPLICATE KEY UPDATE on (class_id, attended_on).
// RowsAffected is 1 for a new row and 2 for a replaced one.
func (s *Store) Upsert(ctx context.Context, sub Submission) (bool, error) {
	periods, err := json.Marshal(sub.Periods)
	if err != nil {
		return false, err
	}
	res, err := s.db.ExecContext(ctx, `
	INSERT INTO attendance_submissions (class_id, attended_on, origin, periods, submitted_at)
	VALUES (?, ?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
	origin       = VALUES(origin),
	periods      = VALUES(periods),
	submitted_at = VALUES(submitted_at)`,
		sub.ClassID, sub.Date, string(sub.Origin), periods, sub.SubmittedAt,
	)
	if err != nil {
		return false, fmt.Errorf("upsert submission: %w", err)
	}
	aff, _ := res.RowsAffected()
	return aff == 1, nil
}

const selectSubmission = `
	SELECT class_id, DATE_FORMAT(attended_on, '%Y-%m-%d') AS attended_on, origin, periods, submitted_at
	FROM attendance_submissions`

func (s *Store) Get(ctx context.Context, classID, date string) (Submission, error) {
	row := s.db.QueryRowContext(ctx, selectSubmission+`
	WHERE class_id = ? AND attended_on = ?`, classID, date)

	var (
		sub     Submission
		origin  string
		periods []byte
	)
	err := row.Scan(&sub.ClassID, &sub.Date, &origin, &periods, &sub.SubmittedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Submission{}, errSubmissionNotFound(classID, date)
	}
	if err != nil {
		return Submission{}, err
	}
	return finishScan(sub, origin, periods)
}

func (s *Store) ListByClass(ctx context.Context, classID string) ([]Submission, error) {
	rows, err := s.db.QueryContext(ctx, selectSubmission+`
	WHERE class_id = ?
	ORDER BY attended_on ASC`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		var (
			sub     Submission
			origin  string
			periods []byte
		)
		if err := rows.Scan(&sub.ClassID, &sub.Date, &origin, &periods, &sub.SubmittedAt); err != nil {
			return nil, err
		}
		sub, err = finishScan(sub, origin, periods)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

// ListDates: dynamic WHERE over an optional [from, to] range.
func (s *Store) ListDates(ctx context.Context, classID string, q DatesQuery) ([]string, error) {
	var (
		buf    bytes.Buffer
		args   = []any{classID}
		wheres = []string{"class_id = ?"}
	)
	buf.WriteString(`
	SELECT DATE_FORMAT(attended_on, '%Y-%m-%d')
	FROM attendance_submissions`)
	if q.From != "" {
		wheres = append(wheres, "attended_on >= ?")
		args = append(args, q.From)
	}
	if q.To != "" {
		wheres = append(wheres, "attended_on <= ?")
		args = append(args, q.To)
	}
	buf.WriteString(" WHERE " + strings.Join(wheres, " AND "))
	buf.WriteString(" ORDER BY attended_on ASC")

	rows, err := s.db.QueryContext(ctx, buf.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

func finishScan(sub Submission, origin string, periods []byte) (Submission, error) {
	sub.Origin = timetable.Origin(origin)
	sub.SubmittedAt = sub.SubmittedAt.UTC()
	if err := json.Unmarshal(periods, &sub.Periods); err != nil {
		return Submission{}, fmt.Errorf("decode periods of %s/%s: %w", sub.ClassID, sub.Date, err)
	}
	return sub, nil
}
