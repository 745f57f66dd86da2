// Package ports defines the core interfaces for the render engine.
package ports

// ToolLocator resolves the path to the external renderer binary. Absence is
// a normal, representable state; no method reports "not found" as an error.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type ToolLocator interface {
	// Discover searches the executable search path for the renderer binary
	// and adopts the first match that exists on disk.
	Discover() (string, bool)

	// SetExplicit adopts a user-supplied path only if it exists and is a
	// regular file. On failure the existing configuration is left untouched.
	SetExplicit(path string) bool

	// Current returns whatever is configured, without re-discovering.
	Current() (string, bool)

	// IsConfigured reports whether a path is known, performing a lazy
	// Discover if none is yet known.
	IsConfigured() bool
}
