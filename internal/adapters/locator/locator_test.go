package locator_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mmd/internal/adapters/locator"
)

// writeFakeTool drops an executable stub with the given name into dir.
func writeFakeTool(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755)
	require.NoError(t, err)
	return path
}

func TestLocator_SetExplicit(t *testing.T) {
	tmpDir := t.TempDir()
	tool := writeFakeTool(t, tmpDir, "mmdc")

	l := locator.New("mmdc")

	t.Run("adopts an existing regular file", func(t *testing.T) {
		assert.True(t, l.SetExplicit(tool))

		current, ok := l.Current()
		require.True(t, ok)
		assert.Equal(t, tool, current)
	})

	t.Run("rejects a missing path and keeps the old one", func(t *testing.T) {
		assert.False(t, l.SetExplicit(filepath.Join(tmpDir, "does-not-exist")))

		current, ok := l.Current()
		require.True(t, ok)
		assert.Equal(t, tool, current)
	})

	t.Run("rejects a directory", func(t *testing.T) {
		assert.False(t, l.SetExplicit(tmpDir))
	})

	t.Run("stores an absolute path for a relative input", func(t *testing.T) {
		cwd, err := os.Getwd()
		require.NoError(t, err)
		t.Cleanup(func() { _ = os.Chdir(cwd) })
		require.NoError(t, os.Chdir(tmpDir))

		rel := locator.New("mmdc")
		require.True(t, rel.SetExplicit("mmdc"))

		current, ok := rel.Current()
		require.True(t, ok)
		assert.True(t, filepath.IsAbs(current))
	})
}

func TestLocator_Current_Unconfigured(t *testing.T) {
	l := locator.New("mmdc")

	current, ok := l.Current()
	assert.False(t, ok)
	assert.Empty(t, current)
}

func TestLocator_Discover(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH stub scripts are not executable on windows")
	}

	tmpDir := t.TempDir()
	tool := writeFakeTool(t, tmpDir, "fake-renderer")
	t.Setenv("PATH", tmpDir)

	t.Run("finds the binary on PATH", func(t *testing.T) {
		l := locator.New("fake-renderer")

		found, ok := l.Discover()
		require.True(t, ok)
		assert.Equal(t, tool, found)

		current, ok := l.Current()
		require.True(t, ok)
		assert.Equal(t, tool, current)
	})

	t.Run("reports absence without error", func(t *testing.T) {
		l := locator.New("no-such-renderer")

		_, ok := l.Discover()
		assert.False(t, ok)
	})
}

func TestLocator_IsConfigured_LazyDiscovery(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH stub scripts are not executable on windows")
	}

	tmpDir := t.TempDir()
	writeFakeTool(t, tmpDir, "fake-renderer")
	t.Setenv("PATH", tmpDir)

	l := locator.New("fake-renderer")

	// Nothing configured yet; IsConfigured should discover.
	assert.True(t, l.IsConfigured())

	_, ok := l.Current()
	assert.True(t, ok)
}

func TestLocator_IsConfigured_NothingToFind(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	l := locator.New("no-such-renderer")
	assert.False(t, l.IsConfigured())
}
