package classes

import (
	"context"
	"errors"

	"go.etcd.io/bbolt"

	"bunkmeter-backend/internal/platform/apierr"
	"bunkmeter-backend/internal/platform/kv"
)

var (
	BucketClasses    = []byte("Classes")
	BucketClassNames = []byte("ClassNames")
)

// BoltStore is the embedded Repository: Classes holds id -> record,
// ClassNames holds name key -> id.
type BoltStore struct{ kv *kv.Store }

func NewBoltStore(store *kv.Store) *BoltStore { return &BoltStore{kv: store} }

func (s *BoltStore) Create(_ context.Context, c Class) error {
	return s.kv.Update(func(tx *bbolt.Tx) error {
		if _, taken, err := kv.GetString(tx, BucketClassNames, c.NameKey); err != nil {
			return err
		} else if taken {
			return apierr.ErrConflict("class name already exists")
		}
		if err := kv.Put(tx, BucketClasses, c.ID, c); err != nil {
			return err
		}
		return kv.PutString(tx, BucketClassNames, c.NameKey, c.ID)
	})
}

func (s *BoltStore) Get(_ context.Context, id string) (Class, error) {
	var c Class
	err := s.kv.View(func(tx *bbolt.Tx) error {
		var err error
		c, err = getClass(tx, id)
		return err
	})
	return c, err
}

func (s *BoltStore) GetByNameKey(_ context.Context, key string) (Class, error) {
	var c Class
	err := s.kv.View(func(tx *bbolt.Tx) error {
		id, ok, err := kv.GetString(tx, BucketClassNames, key)
		if err != nil {
			return err
		}
		if !ok {
			return apierr.ErrNotFound("class not found")
		}
		c, err = getClass(tx, id)
		return err
	})
	return c, err
}

func (s *BoltStore) Update(_ context.Context, id string, fn func(c *Class) error) (Class, error) {
	var out Class
	err := s.kv.Update(func(tx *bbolt.Tx) error {
		c, err := getClass(tx, id)
		if err != nil {
			return err
		}
		oldKey := c.NameKey
		if err := fn(&c); err != nil {
			return err
		}
		if c.NameKey != oldKey {
			if _, taken, err := kv.GetString(tx, BucketClassNames, c.NameKey); err != nil {
				return err
			} else if taken {
				return apierr.ErrConflict("class name already exists")
			}
			if err := tx.Bucket(BucketClassNames).Delete([]byte(oldKey)); err != nil {
				return err
			}
			if err := kv.PutString(tx, BucketClassNames, c.NameKey, c.ID); err != nil {
				return err
			}
		}
		if err := kv.Put(tx, BucketClasses, id, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	return out, err
}

func getClass(tx *bbolt.Tx, id string) (Class, error) {
	c, err := kv.Get[Class](tx, BucketClasses, id)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return Class{}, errClassNotFound(id)
	}
	return c, err
}
