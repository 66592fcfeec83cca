package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "summa.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	var reloads atomic.Int32
	w, err := NewFileWatcher(path, 50*time.Millisecond, func(ctx context.Context) error {
		reloads.Add(1)
		return nil
	})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`{"structure":{"parts":[]}}`), 0o644))
	}

	require.Eventually(t, func() bool { return reloads.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), reloads.Load())
}

func TestFileWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "summa.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	var reloads atomic.Int32
	w, err := NewFileWatcher(path, 20*time.Millisecond, func(ctx context.Context) error {
		reloads.Add(1)
		return nil
	})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0o644))
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(0), reloads.Load())
}

func TestNewFileWatcher_MissingDirectory(t *testing.T) {
	_, err := NewFileWatcher(filepath.Join(t.TempDir(), "nope", "summa.json"), 0, func(context.Context) error { return nil })
	assert.Error(t, err)
}
