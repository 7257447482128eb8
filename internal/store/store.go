// Package store implements the expense record store: an ordered in-memory
// collection backed by a single persisted slot, with derived aggregations
// and CSV export.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"kakeibo/internal/core"
	"kakeibo/internal/slot"
)

// Store owns the record collection and the fixed category set. Records keep
// insertion order, newest first. Every mutation persists the full
// collection to the slot, last-writer-wins.
type Store struct {
	mu         sync.Mutex
	slot       slot.Slot
	categories []string
	records    []core.ExpenseRecord
	lastID     int64
}

func New(s slot.Slot, categories []string) *Store {
	if len(categories) == 0 {
		categories = core.DefaultCategories
	}
	return &Store{
		slot:       s,
		categories: append([]string(nil), categories...),
	}
}

// Load reads the persisted slot into memory. An absent or empty slot means
// an empty collection; malformed content is logged and treated as no data,
// never as a fatal error. Only a slot read failure is surfaced, and even
// then the store stays usable with whatever it held before.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.slot.Read(ctx)
	if err != nil {
		return fmt.Errorf("read slot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	s.lastID = 0
	if len(data) == 0 {
		return nil
	}

	var records []core.ExpenseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		slog.WarnContext(ctx, "Discarding malformed slot payload",
			"error", err,
			"payload_bytes", len(data))
		return nil
	}

	s.records = records
	for _, r := range records {
		if r.ID > s.lastID {
			s.lastID = r.ID
		}
	}
	return nil
}

// Save serializes the full collection to the slot.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	data, err := json.Marshal(s.recordsLocked())
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	if err := s.slot.Write(ctx, data); err != nil {
		return fmt.Errorf("write slot: %w", err)
	}
	return nil
}

// Add coerces the amount, assigns a fresh ID, prepends the record and
// persists. Date and category are stored as given; the category set is a
// convention, not an enforced invariant. When persistence fails the record
// is already part of the in-memory collection and is returned along with
// the error.
func (s *Store) Add(ctx context.Context, date, category, amount, memo string) (core.ExpenseRecord, error) {
	cents, err := core.ParseAmount(amount)
	if err != nil {
		return core.ExpenseRecord{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}

	s.mu.Lock()
	rec := core.ExpenseRecord{
		ID:       s.nextIDLocked(),
		Date:     date,
		Category: category,
		Amount:   cents,
		Memo:     memo,
	}
	s.records = append([]core.ExpenseRecord{rec}, s.records...)
	s.mu.Unlock()

	slog.InfoContext(ctx, "Expense recorded",
		"id", rec.ID,
		"date", rec.Date,
		"category", rec.Category,
		"amount", rec.Amount)

	if err := s.Save(ctx); err != nil {
		return rec, fmt.Errorf("persist after add: %w", err)
	}
	return rec, nil
}

// Delete removes every record matching the id (at most one by invariant)
// and persists. A miss is a silent no-op.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	kept := s.records[:0:0]
	for _, r := range s.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	removed := len(kept) != len(s.records)
	s.records = kept
	s.mu.Unlock()

	if !removed {
		slog.DebugContext(ctx, "Delete matched no record", "id", id)
		return nil
	}

	slog.InfoContext(ctx, "Expense deleted", "id", id)

	if err := s.Save(ctx); err != nil {
		return fmt.Errorf("persist after delete: %w", err)
	}
	return nil
}

// CategorySummary sums amounts per fixed category. Records whose category
// is outside the set fall into no bucket; empty buckets report zero.
func (s *Store) CategorySummary() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := make(map[string]int64, len(s.categories))
	for _, c := range s.categories {
		summary[c] = 0
	}
	for _, r := range s.records {
		if _, ok := summary[r.Category]; ok {
			summary[r.Category] += r.Amount
		}
	}
	return summary
}

// Total sums every record's amount, known category or not.
func (s *Store) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, r := range s.records {
		total += r.Amount
	}
	return total
}

// Records returns a copy of the collection, newest first.
func (s *Store) Records() []core.ExpenseRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordsLocked()
}

// Categories returns the fixed category set in bucket order.
func (s *Store) Categories() []string {
	return append([]string(nil), s.categories...)
}

func (s *Store) recordsLocked() []core.ExpenseRecord {
	out := make([]core.ExpenseRecord, len(s.records))
	copy(out, s.records)
	return out
}

// nextIDLocked issues a millisecond-timestamp id, bumped past the last
// issued one so same-instant adds stay unique.
func (s *Store) nextIDLocked() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
