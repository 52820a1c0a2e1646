package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
	"go.trai.ch/seam/ports"
	"go.trai.ch/zerr"
)

// DefaultDebounceWindow coalesces the burst of events editors produce for
// a single save.
const DefaultDebounceWindow = 50 * time.Millisecond

// Watcher watches one settings file and invokes a callback with the
// re-parsed Settings whenever its content actually changes. Rewrites that
// leave the bytes identical are suppressed by content digest.
type Watcher struct {
	path     string
	loader   *Loader
	logger   ports.Logger
	onChange func(Settings)
	window   time.Duration

	fsw *fsnotify.Watcher

	mu     sync.Mutex
	digest uint64
	timer  *time.Timer
}

// NewWatcher creates a watcher for the settings file at path.
func NewWatcher(path string, loader *Loader, logger ports.Logger, onChange func(Settings)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "creating file watcher")
	}
	return &Watcher{
		path:     path,
		loader:   loader,
		logger:   logger,
		onChange: onChange,
		window:   DefaultDebounceWindow,
		fsw:      fsw,
	}, nil
}

// Start records the file's current digest and begins watching. The parent
// directory is watched rather than the file itself so editor
// rename-and-replace saves keep being observed.
func (w *Watcher) Start(ctx context.Context) error {
	if data, err := os.ReadFile(w.path); err == nil {
		w.mu.Lock()
		w.digest = xxhash.Sum64(data)
		w.mu.Unlock()
	}

	if err := w.fsw.Add(filepath.Dir(w.path)); err != nil {
		return zerr.Wrap(err, "watching settings directory")
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases its resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
	return w.fsw.Close()
}

func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Error(zerr.Wrap(err, "settings watcher error"))
			}
		}
	}
}

// scheduleReload debounces rapid event bursts into one reload.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.window, w.reload)
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		if w.logger != nil {
			w.logger.Error(zerr.Wrap(err, "re-reading settings file"))
		}
		return
	}

	sum := xxhash.Sum64(data)
	w.mu.Lock()
	unchanged := sum == w.digest
	w.digest = sum
	w.mu.Unlock()
	if unchanged {
		return
	}

	settings, err := parse(data)
	if err != nil {
		if w.logger != nil {
			w.logger.Error(zerr.Wrap(err, "reloading settings file"))
		}
		return
	}

	if w.logger != nil {
		w.logger.Info("settings reloaded", "path", w.path)
	}
	if w.onChange != nil {
		w.onChange(settings)
	}
}
