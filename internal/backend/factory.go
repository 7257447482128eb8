// Package backend builds the persistence slot the store runs on, selected
// by configuration.
package backend

import (
	"fmt"
	"log/slog"

	"kakeibo/internal/slot/bolt"
	"kakeibo/internal/slot/file"
	"kakeibo/internal/slot/memory"
	"kakeibo/internal/slot/sqlite"
)

// Factory creates slot backends based on configuration.
type Factory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory.
func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// CreateSlot builds the configured slot backend and returns it together
// with a cleanup function for backends holding open resources.
func (f *Factory) CreateSlot(config Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case MemoryBackend:
		f.logger.Info("Initialized memory slot backend", "slot", config.SlotName)
		return &Result{Slot: memory.New()}, nil

	case FileBackend:
		s, err := file.New(config.FilePath)
		if err != nil {
			return nil, fmt.Errorf("initialize file slot: %w", err)
		}
		f.logger.Info("Initialized file slot backend",
			"slot", config.SlotName,
			"path", config.FilePath)
		return &Result{Slot: s}, nil

	case SQLiteBackend:
		s, err := sqlite.New(config.SQLiteDBPath, config.SlotName)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite slot: %w", err)
		}
		f.logger.Info("Initialized sqlite slot backend",
			"slot", config.SlotName,
			"db_path", config.SQLiteDBPath)
		return &Result{Slot: s, Cleanup: s.Close}, nil

	case BoltBackend:
		s, err := bolt.New(config.BoltDBPath, config.SlotName)
		if err != nil {
			return nil, fmt.Errorf("initialize bolt slot: %w", err)
		}
		f.logger.Info("Initialized bolt slot backend",
			"slot", config.SlotName,
			"db_path", config.BoltDBPath)
		return &Result{Slot: s, Cleanup: s.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}
