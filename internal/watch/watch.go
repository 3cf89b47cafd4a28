// Package watch regenerates the document whenever the catalog source
// changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"showcase/internal/logger"
)

// debounce window: editors often emit several events per save
const settleDelay = 250 * time.Millisecond

// Run watches sourcePath and calls regenerate after every change until ctx
// is cancelled. The directory is watched rather than the file itself so
// rename-replace saves keep working. A failing regenerate is reported and
// watching continues; the previously written document stays in place.
func Run(ctx context.Context, sourcePath string, regenerate func(context.Context) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(sourcePath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %q: %w", dir, err)
	}

	// Initial generation so the output exists before the first edit
	if err := regenerate(ctx); err != nil {
		logger.Error(ctx, "%v", err)
	}

	logger.Notice(ctx, "Watching {{_File_}}%s{{|-|}} for changes", sourcePath)

	absSource, _ := filepath.Abs(sourcePath)

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	schedule := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(settleDelay, func() {
			select {
			case pending <- struct{}{}:
			default:
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			logger.Trace(ctx, "Watcher event: %s %s", event.Op, event.Name)
			abs, _ := filepath.Abs(event.Name)
			if abs != absSource {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			schedule()

		case <-pending:
			logger.Info(ctx, "Source changed, regenerating")
			if err := regenerate(ctx); err != nil {
				logger.Error(ctx, "%v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}
