package optimistic

import (
	"sort"
	"sync"
	"time"
)

// Ledger holds the pending ops of one owning surface, keyed by correlation
// key with insertion order preserved for deterministic replay. All methods
// are safe for concurrent use: settlement runs on whichever goroutine
// awaited the network call.
type Ledger[T Entity] struct {
	mu   sync.Mutex
	recs map[string]Op[T]
	seq  uint64
}

func NewLedger[T Entity]() *Ledger[T] {
	return &Ledger[T]{recs: make(map[string]Op[T])}
}

// Add accepts op into the ledger, stamping CreatedAt and the replay
// sequence. Re-adding an active key replaces the prior record and moves it
// to the newest position (last writer wins; callers may legitimately reuse
// a key after settlement or during rapid retries).
func (l *Ledger[T]) Add(op Op[T]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	op.seq = l.seq
	if op.CreatedAt.IsZero() {
		op.CreatedAt = time.Now().UTC()
	}
	l.recs[op.Key] = op
}

// Remove deletes the op for key if present. Removing an absent key is a
// no-op, so duplicate settle handlers are harmless.
func (l *Ledger[T]) Remove(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.recs, key)
}

// Clear drops all pending ops (surface teardown, discard-all).
func (l *Ledger[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.recs = make(map[string]Op[T])
}

// HasPending reports whether any op remains unsettled.
func (l *Ledger[T]) HasPending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.recs) > 0
}

// Len returns the number of pending ops.
func (l *Ledger[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.recs)
}

// Pending returns a snapshot of the pending ops in insertion order.
func (l *Ledger[T]) Pending() []Op[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Op[T], 0, len(l.recs))
	for _, op := range l.recs {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}
