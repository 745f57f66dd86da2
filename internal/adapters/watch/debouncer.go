// Package watch implements file watching and render debouncing.
package watch

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid change notifications into a single callback
// after a quiet window. Each Trigger restarts the window, so a burst of
// saves produces exactly one callback once the burst settles.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	window   time.Duration
	pending  bool
	callback func()

	// runMu is held for the duration of every callback run, so Flush can
	// wait out a run the timer goroutine already started.
	runMu sync.Mutex
}

// NewDebouncer creates a new debouncer with the given window and callback.
func NewDebouncer(window time.Duration, callback func()) *Debouncer {
	return &Debouncer{
		window:   window,
		callback: callback,
	}
}

// Trigger records a change and restarts the debounce window.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = true

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()

	// Protects against a race with Flush.
	if !d.pending {
		d.timer = nil
		d.mu.Unlock()
		return
	}

	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	d.runMu.Lock()
	defer d.runMu.Unlock()
	if d.callback != nil {
		d.callback()
	}
}

// Flush immediately runs the callback if a trigger is pending. It blocks
// until the callback completes, including a run the expired timer has
// already started, making it suitable for graceful shutdown where the
// final render must finish before proceeding.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	// If the timer expired first, fire has already consumed the pending
	// flag and is running the callback; it sees pending false otherwise
	// and backs off, so the callback never runs twice.
	pending := d.pending
	d.pending = false
	d.mu.Unlock()

	d.runMu.Lock()
	defer d.runMu.Unlock()
	if pending && d.callback != nil {
		d.callback()
	}
}

// Stop cancels any pending trigger without running the callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = false
}
