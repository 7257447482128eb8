// Package sqlite persists the slot as a single row in a slots table, keyed
// by slot name. The payload stays one opaque JSON blob so the slot contract
// (full overwrite, atomic per slot) is carried by a row-level upsert.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type Slot struct {
	db   *sql.DB
	name string
}

func New(dbPath, name string) (*Slot, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Slot{db: db, name: name}, nil
}

func (s *Slot) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Slot) Read(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM slots WHERE name = ?`, s.name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %q: %w", s.name, err)
	}
	return payload, nil
}

func (s *Slot) Write(ctx context.Context, payload []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO slots (name, payload, updated_at) VALUES (?, ?, datetime('now'))
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		s.name, payload)
	if err != nil {
		return fmt.Errorf("write slot %q: %w", s.name, err)
	}
	return nil
}
