// Package file persists the slot as a single JSON file on disk. A missing
// file reads as an absent slot; writes go through a temp file and rename so
// a concurrent reader sees either the old or the new payload, never a
// partial write.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type Slot struct {
	path string
}

func New(path string) (*Slot, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create slot directory: %w", err)
	}
	return &Slot{path: path}, nil
}

func (s *Slot) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read slot file: %w", err)
	}
	return data, nil
}

func (s *Slot) Write(_ context.Context, payload []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp slot file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp slot file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp slot file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace slot file: %w", err)
	}
	return nil
}
