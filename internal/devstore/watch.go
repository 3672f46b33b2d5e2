package devstore

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the bursts of filesystem events an editor or
// atomic rename produces for a single logical change.
const reloadDebounce = 50 * time.Millisecond

// Watch reloads the board document whenever it changes on disk, e.g. when
// edited by hand or synced by another tool. The watcher runs until ctx is
// cancelled. The server's own atomic writes also fire the watcher; the
// resulting reload of identical content is harmless.
func (s *Server) Watch(ctx context.Context) error {
	if s.path == "" {
		return errors.New("watching requires a persistence file")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	// Watch the directory, not the file: atomic renames replace the inode.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(s.path), err)
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer watcher.Close()

		var reload *time.Timer
		for {
			var reloadC <-chan time.Time
			if reload != nil {
				reloadC = reload.C
			}

			select {
			case <-ctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !s.relevantEvent(event) {
					continue
				}
				if reload != nil {
					reload.Stop()
				}
				reload = time.NewTimer(reloadDebounce)

			case <-reloadC:
				reload = nil
				if err := s.loadFile(); err != nil {
					s.log.Error("failed to reload board file", "error", err)
				} else {
					s.log.Debug("board file reloaded", "path", s.path)
				}

			case werr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				s.log.Error("fsnotify error", "error", werr)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		s.log.Error("watcher panic", "error", err)
	}))

	return nil
}

func (s *Server) relevantEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(s.path) {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename)
}
