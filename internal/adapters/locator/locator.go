// Package locator resolves the external renderer binary.
package locator

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"go.trai.ch/mmd/internal/core/ports"
)

var _ ports.ToolLocator = (*Locator)(nil)

// Locator holds the single authoritative tool path for one coordinator
// instance. It is safe for concurrent use; a render in flight keeps using
// whatever path it read, so changing the configuration mid-flight does not
// affect already-dispatched invocations.
type Locator struct {
	mu     sync.RWMutex
	binary string
	path   string
}

// New creates a Locator that searches PATH for the given binary name.
func New(binary string) *Locator {
	return &Locator{binary: binary}
}

// Discover searches PATH for the renderer binary and adopts the first match
// that still exists on disk. Returns false without touching the held path
// when nothing is found.
func (l *Locator) Discover() (string, bool) {
	found, err := exec.LookPath(l.binary)
	if err != nil {
		return "", false
	}
	if _, err := os.Stat(found); err != nil {
		return "", false
	}

	l.mu.Lock()
	l.path = found
	l.mu.Unlock()
	return found, true
}

// SetExplicit adopts a user-supplied path only if it exists and is a regular
// file. On failure the existing configuration is left untouched. The path is
// made absolute so later invocations are independent of the working
// directory they run from.
func (l *Locator) SetExplicit(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	l.mu.Lock()
	l.path = path
	l.mu.Unlock()
	return true
}

// Current returns whatever is configured, without re-discovering.
func (l *Locator) Current() (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.path, l.path != ""
}

// IsConfigured reports whether a path is known, discovering lazily if none
// is yet known.
func (l *Locator) IsConfigured() bool {
	if _, ok := l.Current(); ok {
		return true
	}
	_, ok := l.Discover()
	return ok
}
