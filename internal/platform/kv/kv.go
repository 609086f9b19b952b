// Package kv is the embedded bbolt backend: one bucket per record kind,
// JSON-encoded values.
package kv

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var ErrKeyNotFound = errors.New("kv: key not found")

type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the file at path and ensures every bucket exists.
func Open(path string, buckets ...[]byte) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range buckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	log.Printf("[INFO] bolt store ready at %s", path)
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Update runs fn in a read-write transaction.
func (s *Store) Update(fn func(tx *bbolt.Tx) error) error {
	return s.db.Update(fn)
}

// View runs fn in a read-only transaction.
func (s *Store) View(fn func(tx *bbolt.Tx) error) error {
	return s.db.View(fn)
}

func bucket(tx *bbolt.Tx, name []byte) (*bbolt.Bucket, error) {
	b := tx.Bucket(name)
	if b == nil {
		return nil, fmt.Errorf("bucket %s not found", name)
	}
	return b, nil
}

// Put encodes value as JSON under key. It must run inside Update.
func Put[T any](tx *bbolt.Tx, bucketName []byte, key string, value T) error {
	b, err := bucket(tx, bucketName)
	if err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return b.Put([]byte(key), data)
}

// Get decodes the value under key, or returns ErrKeyNotFound.
func Get[T any](tx *bbolt.Tx, bucketName []byte, key string) (T, error) {
	var out T
	b, err := bucket(tx, bucketName)
	if err != nil {
		return out, err
	}
	v := b.Get([]byte(key))
	if v == nil {
		return out, ErrKeyNotFound
	}
	err = json.Unmarshal(v, &out)
	return out, err
}

// GetString returns the raw value under key as a string (index buckets).
func GetString(tx *bbolt.Tx, bucketName []byte, key string) (string, bool, error) {
	b, err := bucket(tx, bucketName)
	if err != nil {
		return "", false, err
	}
	v := b.Get([]byte(key))
	if v == nil {
		return "", false, nil
	}
	return string(v), true, nil
}

func PutString(tx *bbolt.Tx, bucketName []byte, key, value string) error {
	b, err := bucket(tx, bucketName)
	if err != nil {
		return err
	}
	return b.Put([]byte(key), []byte(value))
}

// ListByPrefix decodes every value whose key starts with prefix, in key order.
func ListByPrefix[T any](tx *bbolt.Tx, bucketName []byte, prefix string) ([]T, error) {
	b, err := bucket(tx, bucketName)
	if err != nil {
		return nil, err
	}

	var results []T
	c := b.Cursor()
	p := []byte(prefix)
	for k, v := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, v = c.Next() {
		var out T
		if err := json.Unmarshal(v, &out); err != nil {
			return nil, err
		}
		results = append(results, out)
	}
	return results, nil
}

// KeysByPrefix returns the keys starting with prefix, with the prefix cut.
func KeysByPrefix(tx *bbolt.Tx, bucketName []byte, prefix string) ([]string, error) {
	b, err := bucket(tx, bucketName)
	if err != nil {
		return nil, err
	}

	var keys []string
	c := b.Cursor()
	p := []byte(prefix)
	for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
		keys = append(keys, string(k[len(p):]))
	}
	return keys, nil
}
