// FILE: framelog/src/internal/buffer/ring.go
package buffer

import (
	"sync"

	"framelog/src/internal/core"
)

// DefaultCapacity is used when a ring is constructed with a non-positive
// capacity.
const DefaultCapacity = 2000

// Ring is a fixed-capacity circular store for log entries. Once full, every
// insert evicts exactly one entry, the oldest. The slot array is allocated
// once at construction and never resized.
//
// All operations are goroutine-safe: the write pipeline runs on the host
// loop while the debug surface reads from its own goroutine.
type Ring struct {
	mu       sync.RWMutex
	entries  []core.LogEntry
	head     int // next write position
	count    int
	capacity int

	totalWritten  uint64
	overflowCount uint64
	nextSequence  uint64
}

// NewRing creates a ring buffer with the given capacity.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{
		entries:  make([]core.LogEntry, capacity),
		capacity: capacity,
	}
}

// Add stores an entry, stamping it with the next sequence number, and
// returns that sequence. O(1). Once the ring is full the oldest entry is
// overwritten and the overflow counter increments.
func (r *Ring) Add(e core.LogEntry) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextSequence++
	e.Sequence = r.nextSequence

	r.entries[r.head] = e
	r.head = (r.head + 1) % r.capacity
	if r.count < r.capacity {
		r.count++
	} else {
		r.overflowCount++
	}
	r.totalWritten++

	return e.Sequence
}

// Last returns the k most recent entries, strictly newest-first. If k
// exceeds the current size, all stored entries are returned. Non-positive k
// returns nil.
func (r *Ring) Last(k int) []core.LogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if k <= 0 {
		return nil
	}
	if k > r.count {
		k = r.count
	}

	result := make([]core.LogEntry, 0, k)
	for i := 1; i <= k; i++ {
		result = append(result, r.entries[r.indexBack(i)])
	}
	return result
}

// indexBack resolves the slot holding the i-th most recent entry (i >= 1).
// Caller must hold the lock.
func (r *Ring) indexBack(i int) int {
	return ((r.head-i)%r.capacity + r.capacity) % r.capacity
}

// Filter scans entries newest-first and returns up to maxResults entries
// matching pred. A non-positive maxResults means no limit.
func (r *Ring) Filter(pred func(core.LogEntry) bool, maxResults int) []core.LogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []core.LogEntry
	for i := 1; i <= r.count; i++ {
		e := r.entries[r.indexBack(i)]
		if pred(e) {
			result = append(result, e)
			if maxResults > 0 && len(result) >= maxResults {
				break
			}
		}
	}
	return result
}

// All returns every stored entry in chronological (oldest-first) order,
// reconstructed from the circular layout.
func (r *Ring) All() []core.LogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]core.LogEntry, r.count)
	if r.count < r.capacity {
		copy(result, r.entries[:r.count])
	} else {
		// Full ring: oldest entry sits at the write cursor.
		n := copy(result, r.entries[r.head:])
		copy(result[n:], r.entries[:r.head])
	}
	return result
}

// Len returns the current number of stored entries.
func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// Cap returns the fixed capacity.
func (r *Ring) Cap() int {
	return r.capacity
}

// Clear empties the ring and resets the write cursor, overflow counter and
// total-written counter. The sequence counter is NOT reset: sequence numbers
// stay unique for the ring's lifetime across clears. Capacity is unchanged.
func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		r.entries[i] = core.LogEntry{}
	}
	r.head = 0
	r.count = 0
	r.totalWritten = 0
	r.overflowCount = 0
}

// GetStats returns buffer statistics.
func (r *Ring) GetStats() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return map[string]any{
		"size":           r.count,
		"capacity":       r.capacity,
		"total_written":  r.totalWritten,
		"overflow_count": r.overflowCount,
		"next_sequence":  r.nextSequence,
		"utilization":    float64(r.count) / float64(r.capacity),
	}
}
