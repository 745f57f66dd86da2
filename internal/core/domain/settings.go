package domain

import "time"

// Settings is the resolved engine configuration. The loader fills every
// field; zero values never reach the adapters.
type Settings struct {
	// ToolName is the binary name searched for on PATH.
	ToolName string

	// ToolPath is an explicit renderer path. Empty means discover lazily.
	ToolPath string

	// CacheDir is the root directory for rendered artifacts.
	CacheDir string

	// Timeout is the hard wall-clock deadline for one invocation.
	Timeout time.Duration

	// DebounceWindow is the idle window before an auto render fires in
	// watch mode.
	DebounceWindow time.Duration

	// Format describes the expected artifact format.
	Format Format
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() *Settings {
	return &Settings{
		ToolName:       DefaultToolName,
		CacheDir:       DefaultCachePath(),
		Timeout:        DefaultTimeout,
		DebounceWindow: DefaultDebounceWindow,
		Format:         SVG,
	}
}
