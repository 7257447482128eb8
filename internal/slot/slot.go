// Package slot defines the persistence port for the expense store: one
// named slot holding the entire serialized record collection. Writes are
// full overwrites, last-writer-wins; the backend is expected to be atomic
// at slot granularity so concurrent readers observe either the pre- or
// post-write payload.
package slot

import "context"

// Slot is the port for outbound persistence adapters.
type Slot interface {
	// Read returns the slot payload, or nil when the slot is absent.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the slot payload in full.
	Write(ctx context.Context, payload []byte) error
}
