package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReportsDebouncedChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "box.txt")
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(path, []byte("draw\n"), 0o644))

	fw, err := NewFileWatcher(path, 50*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changes := make(chan string, 10)
	done := make(chan error, 1)
	go func() {
		done <- fw.Run(ctx, func(p string) {
			changes <- p
			cancel()
		})
	}()

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("draw\nexit\n"), 0o644))
	}

	select {
	case p := <-changes:
		assert.Equal(t, fw.Path(), p)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Empty(t, changes, "a burst is reported once")
}

func TestNewFileWatcherMissingDirectory(t *testing.T) {
	_, err := NewFileWatcher(filepath.Join(t.TempDir(), "nope", "x.txt"), time.Millisecond, nil)
	assert.Error(t, err)
}
