package domain

import "go.trai.ch/zerr"

var (
	// ErrRenderFailed is returned by the app layer when a render attempt did
	// not produce an artifact. The details live in the RenderResult; this
	// sentinel only drives the process exit code.
	ErrRenderFailed = zerr.New("render failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidDuration is returned when a config duration field does not parse.
	ErrInvalidDuration = zerr.New("invalid duration")

	// ErrCacheCreateFailed is returned internally when the cache root cannot
	// be created. It never surfaces as a render failure.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheWriteFailed is returned internally when a cache entry cannot be
	// written. It never surfaces as a render failure.
	ErrCacheWriteFailed = zerr.New("failed to write cache entry")

	// ErrCleanFailed is returned when the cache root cannot be removed.
	ErrCleanFailed = zerr.New("failed to clean cache")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch file")
)
