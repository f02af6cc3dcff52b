package checker

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces editor save bursts into one re-check.
const debounceDelay = 100 * time.Millisecond

// Watch re-runs the check whenever a matching file under paths changes,
// until ctx is cancelled. onResult is invoked after every run, including
// the initial one.
func (c *Checker) Watch(ctx context.Context, paths []string, onResult func(*Result)) error {
	res, err := c.Run(ctx, paths)
	if err != nil {
		return err
	}
	onResult(res)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	for _, p := range paths {
		if err := watchDirRecursive(watcher, p); err != nil {
			c.log.Error("failed to watch path", "path", p, "error", err)
			// Don't fail - continue without watching this path
		}
	}

	// The re-check runs on this goroutine, from the timer case, so two
	// runs can never overlap. Events only arm or rewind the timer.
	var (
		timer     *time.Timer
		timerC    <-chan time.Time
		lastEvent string
	)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !c.matchesExtension(event.Name) {
				continue
			}

			lastEvent = event.Name
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
				timerC = timer.C
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounceDelay)

		case <-timerC:
			timer = nil
			timerC = nil
			c.log.Debug("file changed, re-checking", "file", lastEvent)
			res, err := c.Run(ctx, paths)
			if err != nil {
				c.log.Error("re-check failed", "error", err)
				continue
			}
			onResult(res)

		case err := <-watcher.Errors:
			c.log.Error("watcher error", "error", err)
		}
	}
}

// watchDirRecursive adds a path and, for directories, all subdirectories
// to the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(dir))
	}
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
