package backend

import (
	"fmt"

	"kakeibo/internal/slot"
)

// Type selects which slot backend holds the persisted collection.
type Type string

const (
	MemoryBackend Type = "memory"
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
	BoltBackend   Type = "bolt"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case MemoryBackend, FileBackend, SQLiteBackend, BoltBackend:
		return true
	default:
		return false
	}
}

// Types returns all valid backend types.
func Types() []Type {
	return []Type{MemoryBackend, FileBackend, SQLiteBackend, BoltBackend}
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result holds the created slot and its optional cleanup function.
type Result struct {
	Slot    slot.Slot
	Cleanup CleanupFunc
}

// Config holds everything needed to build a slot backend.
type Config struct {
	Type Type

	// Name of the persisted slot inside the backend
	SlotName string

	// File backend
	FilePath string

	// SQLite backend
	SQLiteDBPath string

	// Bolt backend
	BoltDBPath string
}

// Validate validates the backend configuration.
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}

	switch c.Type {
	case FileBackend:
		if c.FilePath == "" {
			return fmt.Errorf("slot file path is required for file backend")
		}
	case SQLiteBackend:
		if c.SQLiteDBPath == "" {
			return fmt.Errorf("SQLite database path is required for sqlite backend")
		}
	case BoltBackend:
		if c.BoltDBPath == "" {
			return fmt.Errorf("bolt database path is required for bolt backend")
		}
	}
	return nil
}
