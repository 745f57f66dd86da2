// Package cache implements the content-addressed artifact store.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/mmd/internal/core/domain"
	"go.trai.ch/mmd/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactCache = (*Store)(nil)

// Store persists one artifact file per fingerprint under a root directory.
// The store is append-only: a key is never rewritten with different content,
// so concurrent readers and writers, even across processes, need no locking
// beyond atomic individual writes.
type Store struct {
	root   string
	format domain.Format
	logger ports.Logger
}

// NewStore creates a store rooted at the given directory. The directory is
// created lazily on the first write.
func NewStore(root string, format domain.Format, logger ports.Logger) *Store {
	return &Store{
		root:   filepath.Clean(root),
		format: format,
		logger: logger,
	}
}

// Key computes the fingerprint for a (source, tool) pair: the hex-encoded
// SHA-256 of the source text joined to the tool path with a '|' separator.
// Embedding the tool path invalidates old entries when the renderer changes
// without any explicit eviction.
func (s *Store) Key(source, tool string) string {
	sum := sha256.Sum256([]byte(source + "|" + tool))
	return hex.EncodeToString(sum[:])
}

// Get reads the entry for the key. Every failure mode, from a missing file
// to a permission error to a truncated write, is reported as a plain miss.
func (s *Store) Get(key string) (string, bool) {
	path := s.entryPath(key)

	//nolint:gosec // Path is built from the cache root and a hex fingerprint
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read cache entry " + key + ": " + err.Error())
		}
		return "", false
	}

	// A partial or corrupt entry must be a miss, not a crash.
	if !s.format.Recognizes(data) {
		s.logger.Warn("discarding unrecognizable cache entry " + key)
		return "", false
	}

	return string(data), true
}

// Put writes the artifact under the key, best effort. The caller already
// holds the artifact, so a write failure is logged and swallowed.
func (s *Store) Put(key, artifact string) {
	if err := s.write(key, artifact); err != nil {
		s.logger.Warn("failed to write cache entry " + key + ": " + err.Error())
	}
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) write(key, artifact string) error {
	if err := os.MkdirAll(s.root, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheCreateFailed.Error())
	}

	// Write to a temp file in the same directory and rename it into place so
	// a concurrent reader never observes a partial entry.
	tmp, err := os.CreateTemp(s.root, key+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	if _, err := tmp.WriteString(artifact); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	if err := os.Rename(tmp.Name(), s.entryPath(key)); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	return nil
}

func (s *Store) entryPath(key string) string {
	return filepath.Join(s.root, key+s.format.Extension)
}
