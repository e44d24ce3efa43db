package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultReloadDebounce coalesces the burst of events editors emit on save.
const DefaultReloadDebounce = 150 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	fs       *fsnotify.Watcher
}

// NewWatcher watches the directory holding path so that atomic
// rename-on-save is seen as a change to the file itself.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	if debounce <= 0 {
		debounce = DefaultReloadDebounce
	}

	return &Watcher{path: abs, debounce: debounce, fs: fw}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run blocks until ctx is cancelled or the watcher is closed. Every settled
// change to the file triggers a reload whose outcome is passed to onReload.
func (w *Watcher) Run(ctx context.Context, onReload func(*File, error)) error {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			cfg, err := Load(w.path)
			onReload(cfg, err)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			onReload(nil, fmt.Errorf("watch %s: %w", w.path, err))
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
