package attendance

import (
	"context"
	"errors"

	"go.etcd.io/bbolt"

	"bunkmeter-backend/internal/platform/kv"
)

var BucketSubmissions = []byte("Submissions")

// BoltStore keys submissions as "<class_id>/<YYYY-MM-DD>", so a class's
// history is one ordered prefix scan.
type BoltStore struct{ kv *kv.Store }

func NewBoltStore(store *kv.Store) *BoltStore { return &BoltStore{kv: store} }

func submissionKey(classID, date string) string {
	return classID + "/" + date
}

func (s *BoltStore) Upsert(_ context.Context, sub Submission) (bool, error) {
	created := false
	err := s.kv.Update(func(tx *bbolt.Tx) error {
		key := submissionKey(sub.ClassID, sub.Date)
		_, err := kv.Get[Submission](tx, BucketSubmissions, key)
		switch {
		case errors.Is(err, kv.ErrKeyNotFound):
			created = true
		case err != nil:
			return err
		}
		return kv.Put(tx, BucketSubmissions, key, sub)
	})
	return created, err
}

func (s *BoltStore) Get(_ context.Context, classID, date string) (Submission, error) {
	var sub Submission
	err := s.kv.View(func(tx *bbolt.Tx) error {
		var err error
		sub, err = kv.Get[Submission](tx, BucketSubmissions, submissionKey(classID, date))
		if errors.Is(err, kv.ErrKeyNotFound) {
			return errSubmissionNotFound(classID, date)
		}
		return err
	})
	return sub, err
}

func (s *BoltStore) ListByClass(_ context.Context, classID string) ([]Submission, error) {
	var out []Submission
	err := s.kv.View(func(tx *bbolt.Tx) error {
		var err error
		out, err = kv.ListByPrefix[Submission](tx, BucketSubmissions, classID+"/")
		return err
	})
	return out, err
}

func (s *BoltStore) ListDates(_ context.Context, classID string, q DatesQuery) ([]string, error) {
	dates := []string{}
	err := s.kv.View(func(tx *bbolt.Tx) error {
		keys, err := kv.KeysByPrefix(tx, BucketSubmissions, classID+"/")
		if err != nil {
			return err
		}
		for _, d := range keys {
			if q.From != "" && d < q.From {
				continue
			}
			if q.To != "" && d > q.To {
				continue
			}
			dates = append(dates, d)
		}
		return nil
	})
	return dates, err
}
