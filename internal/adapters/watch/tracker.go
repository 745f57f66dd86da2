package watch

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Tracker remembers the digest of the last rendered source so saves that
// do not change the content can skip a render.
type Tracker struct {
	mu   sync.Mutex
	last uint64
	seen bool
}

// NewTracker creates an empty tracker. The first observation always
// reports a change.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Changed reports whether data differs from the last observed content and
// records it as the new baseline when it does.
func (t *Tracker) Changed(data []byte) bool {
	sum := xxhash.Sum64(data)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.seen && t.last == sum {
		return false
	}
	t.last = sum
	t.seen = true
	return true
}

// Reset clears the baseline so the next observation reports a change.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seen = false
	t.last = 0
}
