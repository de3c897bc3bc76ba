// Package watch turns filesystem changes under the project root into
// partial-refresh requests. It never touches dashboard state: it only emits
// the app.Mode that should be refreshed.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/lbrxagents/a2a-dash/internal/app"
	"github.com/lbrxagents/a2a-dash/internal/config"
)

// Watcher monitors the artifact directories for changes.
type Watcher struct {
	paths    *config.Paths
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *zap.Logger

	// dirs maps every directory of interest to the classes it feeds.
	dirs    map[string]app.Mode
	watched map[string]bool
}

// NewWatcher creates a watcher over the artifact directories of paths.
// Directories that do not exist yet are picked up when they appear under
// the project root or the hidden agent directory.
func NewWatcher(paths *config.Paths, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		paths:    paths,
		watcher:  fsw,
		debounce: debounce,
		logger:   logger,
		dirs:     make(map[string]app.Mode),
		watched:  make(map[string]bool),
	}
	for _, wd := range paths.WatchDirs() {
		w.dirs[wd.Dir] |= app.ModeNamed(wd.Name)
	}

	if err := w.add(paths.Root); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch project root %s: %w", paths.Root, err)
	}
	w.addExisting()
	return w, nil
}

// Watch starts watching and returns a channel of refresh modes. Events are
// coalesced for the debounce window so a burst of writes yields one mode.
// The channel is closed when ctx is cancelled or the underlying watcher
// shuts down.
func (w *Watcher) Watch(ctx context.Context) <-chan app.Mode {
	out := make(chan app.Mode, 16)

	go func() {
		defer close(out)

		var pending app.Mode

		// Initialize a stopped timer
		debounceTimer := time.NewTimer(0)
		if !debounceTimer.Stop() {
			<-debounceTimer.C
		}
		defer debounceTimer.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				mode := w.handle(event)
				if mode == app.ModeNone {
					continue
				}
				pending |= mode
				debounceTimer.Stop()
				debounceTimer.Reset(w.debounce)

			case <-debounceTimer.C:
				if pending == app.ModeNone {
					continue
				}
				select {
				case out <- pending:
				case <-ctx.Done():
					return
				}
				pending = app.ModeNone

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				// Log errors but keep watching
				w.logger.Warn("watch error", zap.Error(err))
			}
		}
	}()

	return out
}

// Close stops watching and cleans up resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// handle classifies an event, starts watching directories that have just
// been created and forgets directories that went away so a recreated one
// is watched again.
func (w *Watcher) handle(ev fsnotify.Event) app.Mode {
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			w.addExisting()
		}
	}
	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		w.forget(filepath.Clean(ev.Name))
	}
	if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
		return app.ModeNone
	}
	return w.ModeFor(ev.Name)
}

// ModeFor maps a changed path to the refresh it calls for.
func (w *Watcher) ModeFor(path string) app.Mode {
	path = filepath.Clean(path)
	p := w.paths

	// A whole artifact directory appeared or vanished.
	if mode, ok := w.dirs[path]; ok {
		return mode
	}

	switch dir := filepath.Dir(path); {
	case dir == p.Discovery && strings.HasSuffix(path, ".json"):
		return app.ModeAgents
	case path == p.Queue:
		return app.ModeQueue
	case dir == p.Logs:
		return app.ModeLogs
	case path == p.Memory:
		return app.ModeMemory
	case path == p.Alerts:
		return app.ModeAlerts
	}

	// Ancestors of artifact directories, e.g. .a2a/orchestrator.
	var mode app.Mode
	for dir, m := range w.dirs {
		if strings.HasPrefix(dir, path+string(filepath.Separator)) {
			mode |= m
		}
	}
	return mode
}

// addExisting adds every artifact directory and intermediate directory
// that exists and is not yet watched.
func (w *Watcher) addExisting() {
	for dir := range w.dirs {
		for d := dir; d != w.paths.Root && strings.HasPrefix(d, w.paths.Root); d = filepath.Dir(d) {
			if err := w.add(d); err != nil && !os.IsNotExist(err) {
				w.logger.Debug("cannot watch directory", zap.String("dir", d), zap.Error(err))
			}
		}
	}
}

// forget drops path and everything below it from the watched set. The
// kernel has already released watches on removed directories; a renamed
// one keeps its watch under the new name, so it is removed explicitly.
func (w *Watcher) forget(path string) {
	prefix := path + string(filepath.Separator)
	for dir := range w.watched {
		if dir != path && !strings.HasPrefix(dir, prefix) {
			continue
		}
		delete(w.watched, dir)
		if err := w.watcher.Remove(dir); err != nil {
			w.logger.Debug("release watch", zap.String("dir", dir), zap.Error(err))
		}
	}
}

func (w *Watcher) add(dir string) error {
	if w.watched[dir] {
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	if err := w.watcher.Add(dir); err != nil {
		return err
	}
	w.watched[dir] = true
	return nil
}
