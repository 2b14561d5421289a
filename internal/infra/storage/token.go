package storage

import (
	"payref-console/internal/pkg/errs"

	bolt "github.com/boltdb/bolt"
)

// SaveToken stores the raw bearer token for the current session.
func (s *Store) SaveToken(token string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Put([]byte(tokenKey), []byte(token))
	})
	return errs.Wrap(err, "failed to persist session token")
}

// LoadToken returns the stored token, if any. Absence is not an error.
func (s *Store) LoadToken() (string, bool) {
	var raw []byte
	_ = s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(sessionBucket)).Get([]byte(tokenKey)); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if len(raw) == 0 {
		return "", false
	}
	return string(raw), true
}

// DeleteToken removes the session token. Deleting an absent token is a no-op.
func (s *Store) DeleteToken() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Delete([]byte(tokenKey))
	})
	return errs.Wrap(err, "failed to delete session token")
}
