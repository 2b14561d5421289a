package storage

import (
	"encoding/json"
	"log/slog"

	"payref-console/internal/domain/payment"
	"payref-console/internal/pkg/errs"

	bolt "github.com/boltdb/bolt"
)

// SavePayments serializes the whole list and stores it under a single key.
// Every list mutation rewrites the full value; the list is small enough that
// per-record keys would buy nothing.
func (s *Store) SavePayments(records []payment.Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return errs.Wrap(err, "failed to serialize payments list")
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(paymentsBucket)).Put([]byte(paymentsKey), data)
	})
	return errs.Wrap(err, "failed to persist payments list")
}

// LoadPayments deserializes the stored list. A corrupt or absent value yields
// an empty list, never an error: losing the local copy is recoverable, a
// crash on startup is not.
func (s *Store) LoadPayments() []payment.Record {
	var raw []byte
	_ = s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(paymentsBucket)).Get([]byte(paymentsKey)); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if raw == nil {
		return []payment.Record{}
	}

	var records []payment.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		slog.Warn("discarding corrupt payments list", "error", err.Error())
		return []payment.Record{}
	}
	if records == nil {
		records = []payment.Record{}
	}
	return records
}
