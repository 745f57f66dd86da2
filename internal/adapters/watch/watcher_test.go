package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/mmd/internal/adapters/watch"
)

func waitForEvent(t *testing.T, events <-chan watch.Event) watch.Event {
	t.Helper()
	select {
	case ev, ok := <-events:
		require.True(t, ok, "event channel closed before an event arrived")
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a watch event")
		return watch.Event{}
	}
}

func TestWatcher_Write(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fsnotify timing is unreliable on windows CI")
	}

	dir := t.TempDir()
	target := filepath.Join(dir, "diagram.mmd")
	require.NoError(t, os.WriteFile(target, []byte("flowchart TD"), 0o644))

	w, err := watch.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	require.NoError(t, w.Start(ctx, target))

	require.NoError(t, os.WriteFile(target, []byte("flowchart LR"), 0o644))

	ev := waitForEvent(t, w.Events())
	abs, err := filepath.Abs(target)
	require.NoError(t, err)
	require.Equal(t, abs, ev.Path)
}

func TestWatcher_RenameOver(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fsnotify timing is unreliable on windows CI")
	}

	dir := t.TempDir()
	target := filepath.Join(dir, "diagram.mmd")
	require.NoError(t, os.WriteFile(target, []byte("flowchart TD"), 0o644))

	w, err := watch.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	require.NoError(t, w.Start(ctx, target))

	// Editor-style atomic save: write a temp file and rename it over the target.
	tmp := filepath.Join(dir, ".diagram.mmd.swp")
	require.NoError(t, os.WriteFile(tmp, []byte("flowchart LR"), 0o644))
	require.NoError(t, os.Rename(tmp, target))

	waitForEvent(t, w.Events())
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fsnotify timing is unreliable on windows CI")
	}

	dir := t.TempDir()
	target := filepath.Join(dir, "diagram.mmd")
	require.NoError(t, os.WriteFile(target, []byte("flowchart TD"), 0o644))

	w, err := watch.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	require.NoError(t, w.Start(ctx, target))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.mmd"), []byte("x"), 0o644))

	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event for sibling file: %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := watch.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	err = w.Start(context.Background(), filepath.Join(t.TempDir(), "missing", "diagram.mmd"))
	require.Error(t, err)
}
