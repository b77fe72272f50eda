package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Store serves the current site content. When it is backed by a file the
// content can be reloaded while the server runs.
type Store struct {
	fs      afero.Fs
	path    string
	current atomic.Pointer[Site]
}

// NewStore loads the content at path, or the built-in content when path is empty.
func NewStore(fs afero.Fs, path string) (*Store, error) {
	s := &Store{fs: fs, path: path}
	if path == "" {
		s.current.Store(Default())
		return s, nil
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Site returns the current snapshot. Callers must treat it as read-only.
func (s *Store) Site() *Site {
	return s.current.Load()
}

// Path returns the backing file, empty for built-in content.
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the backing file. On failure the previous snapshot stays current.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	site, err := Load(s.fs, s.path)
	if err != nil {
		return err
	}
	s.current.Store(site)
	return nil
}

// Watch reloads the content whenever the backing file is written or
// replaced. It returns once the watcher is running; the watcher stops when
// ctx is canceled.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return fmt.Errorf("content store has no backing file to watch")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating content watcher: %w", err)
	}
	// Editors often replace files instead of writing in place, so watch the
	// directory and filter on the file name.
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	name := filepath.Clean(s.path)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != name || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
					continue
				}
				if err := s.Reload(); err != nil {
					slog.Error("Failed to reload site content, keeping previous version", "path", s.path, "error", err)
					continue
				}
				slog.Info("Reloaded site content", "path", s.path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("Content watcher error", "error", err)
			}
		}
	}()
	return nil
}
