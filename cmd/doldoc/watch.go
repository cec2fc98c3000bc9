package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// watchPaths resolves the inputs that can be watched. Stdin and HTTP inputs
// cannot.
func watchPaths(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("needs at least one input file")
	}
	paths := make([]string, 0, len(args))
	for _, raw := range args {
		if isHTTPURL(raw) {
			return nil, fmt.Errorf("cannot watch URL %q", raw)
		}
		path := raw
		if p, ok := fileURLPath(raw); ok {
			path = p
		}
		paths = append(paths, filepath.Clean(normalizePath(path)))
	}
	return paths, nil
}

// watchAndRender renders once and then again after every change to one of
// paths, until ctx is done. Directories are watched rather than files so
// editors that replace files on save are still seen.
func watchAndRender(ctx context.Context, paths []string, render func() error, logger *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	targets := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		targets[p] = struct{}{}
		dirs[filepath.Dir(p)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		logger.Debug("watching directory", "dir", dir)
	}

	if err := render(); err != nil {
		logger.Error("render failed", "err", err)
	}

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if _, hit := targets[filepath.Clean(ev.Name)]; !hit {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("input changed", "path", ev.Name, "op", ev.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(watchDebounce)
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		case <-fire:
			fire = nil
			logger.Info("re-rendering")
			if err := render(); err != nil {
				logger.Error("render failed", "err", err)
			}
		}
	}
}
