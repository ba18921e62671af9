package file

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/sercha-view/internal/logger"
)

// settleDelay lets editors finish writing before the file is re-read.
const settleDelay = 100 * time.Millisecond

// Watch reloads the store whenever the configuration file changes and then
// calls onChange. It blocks until ctx is cancelled.
//
// The directory is watched rather than the file, so atomic saves (write to
// a temp file, then rename over the original) are seen too.
func (s *ConfigStore) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(s.filePath)); err != nil {
		return err
	}

	name := filepath.Clean(s.filePath)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != name {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}

			select {
			case <-time.After(settleDelay):
			case <-ctx.Done():
				return nil
			}
			drain(watcher.Events, name)

			if err := s.Load(); err != nil {
				logger.Warn("Config reload failed: %v", err)
				continue
			}
			logger.Debug("Config reloaded from %s", s.filePath)
			if onChange != nil {
				onChange()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Config watcher: %v", err)
		}
	}
}

// drain discards events for name that queued up while settling.
func drain(events <-chan fsnotify.Event, name string) {
	for {
		select {
		case event, ok := <-events:
			if !ok || filepath.Clean(event.Name) != name {
				return
			}
		default:
			return
		}
	}
}
