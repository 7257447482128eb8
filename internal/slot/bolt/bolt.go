// Package bolt persists the slot as one key in a bbolt bucket. bbolt gives
// single-file storage with transactional writes, so the slot contract holds
// without any extra locking here.
package bolt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
)

const bucketSlots = "slots"

type Slot struct {
	db   *bolt.DB
	name string
}

func New(dbPath, name string) (*Slot, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := bolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSlots))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create slots bucket: %w", err)
	}

	return &Slot{db: db, name: name}, nil
}

func (s *Slot) Close() error {
	return s.db.Close()
}

func (s *Slot) Read(_ context.Context) ([]byte, error) {
	var payload []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSlots))
		if b == nil {
			return fmt.Errorf("bucket %s not found", bucketSlots)
		}
		if v := b.Get([]byte(s.name)); v != nil {
			payload = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read slot %q: %w", s.name, err)
	}
	return payload, nil
}

func (s *Slot) Write(_ context.Context, payload []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSlots))
		if b == nil {
			return fmt.Errorf("bucket %s not found", bucketSlots)
		}
		return b.Put([]byte(s.name), payload)
	})
	if err != nil {
		return fmt.Errorf("write slot %q: %w", s.name, err)
	}
	return nil
}
