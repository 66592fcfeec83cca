// Package watch reloads the document when its file source changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"summa-reader/internal/logger"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long to wait for further writes before reloading
const DefaultDebounce = 500 * time.Millisecond

// FileWatcher calls OnChange once a burst of writes to one file has settled.
// The parent directory is watched so editors that replace the file are handled.
type FileWatcher struct {
	path     string
	debounce time.Duration
	onChange func(ctx context.Context) error
	watcher  *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer
}

// NewFileWatcher starts watching the directory of path
func NewFileWatcher(path string, debounce time.Duration, onChange func(ctx context.Context) error) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &FileWatcher{path: abs, debounce: debounce, onChange: onChange, watcher: fsw}, nil
}

// Run processes events until ctx is cancelled or the watcher is closed
func (w *FileWatcher) Run(ctx context.Context) {
	defer w.stopTimer()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule(ctx)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Get().Warn("Document watcher error", zap.String("path", w.path), zap.Error(err))
		}
	}
}

// Close stops the underlying watcher
func (w *FileWatcher) Close() error {
	w.stopTimer()
	return w.watcher.Close()
}

func (w *FileWatcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		if ctx.Err() != nil {
			return
		}
		logger.Get().Info("Document file changed, reloading", zap.String("path", w.path))
		if err := w.onChange(ctx); err != nil {
			logger.Get().Error("Failed to reload document after change", zap.String("path", w.path), zap.Error(err))
		}
	})
}

func (w *FileWatcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
