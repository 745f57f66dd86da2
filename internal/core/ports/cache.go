package ports

// ArtifactCache maps a fingerprint of (diagram source, tool path) to a
// previously rendered artifact persisted on disk.
//
// Get degrades every read failure to a miss and Put swallows write failures:
// a cache fault must never turn into a render failure.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ArtifactCache interface {
	// Key computes the content fingerprint for a (source, tool) pair. It is
	// pure: identical inputs always produce the identical key.
	Key(source, tool string) string

	// Get returns the cached artifact for the key, or false on any miss,
	// including corrupt or unreadable entries.
	Get(key string) (string, bool)

	// Put persists the artifact under the key, best effort. Failures are
	// logged, never surfaced.
	Put(key, artifact string)
}
