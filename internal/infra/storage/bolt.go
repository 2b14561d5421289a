// Package storage is the durable client-side state of the console: the
// serialized payments list and the current session token. A single BoltDB
// file backs both, so no external database process is required.
package storage

import (
	"time"

	"payref-console/internal/pkg/errs"

	bolt "github.com/boltdb/bolt"
)

const (
	paymentsBucket = "payments"
	sessionBucket  = "session"

	paymentsKey = "list"
	tokenKey    = "token"
)

type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the database file and ensures both buckets exist.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, errs.Wrap(err, "failed to open storage file")
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{paymentsBucket, sessionBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, errs.Wrap(err, "failed to create storage buckets")
	}

	return &Store{db: db}, nil
}

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.db.Close()
}
