package trace

import "sync"

// RingBuffer is a concurrent-safe bounded buffer of trace entries, oldest
// evicted first. In watch mode it carries entries across successive batch runs.
type RingBuffer struct {
	mu      sync.RWMutex
	max     int
	entries []Entry
}

// NewRingBuffer creates a buffer that retains up to max entries.
func NewRingBuffer(max int) *RingBuffer {
	if max <= 0 {
		max = 100
	}
	return &RingBuffer{max: max}
}

// Add appends an entry, evicting the oldest when the buffer is full.
func (rb *RingBuffer) Add(e Entry) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	rb.entries = append(rb.entries, e)
	if len(rb.entries) > rb.max {
		overflow := len(rb.entries) - rb.max
		rb.entries = append(rb.entries[:0], rb.entries[overflow:]...)
	}
}

// AddAll appends a whole run's entries in order.
func (rb *RingBuffer) AddAll(entries []Entry) {
	for _, e := range entries {
		rb.Add(e)
	}
}

// Last returns the last n entries in chronological order.
func (rb *RingBuffer) Last(n int) []Entry {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	if n > len(rb.entries) {
		n = len(rb.entries)
	}
	if n <= 0 {
		return nil
	}

	result := make([]Entry, n)
	copy(result, rb.entries[len(rb.entries)-n:])
	return result
}

// Count returns the number of entries currently stored.
func (rb *RingBuffer) Count() int {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return len(rb.entries)
}
