package source

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce coalesces bursts of filesystem events into one reload.
const debounce = 200 * time.Millisecond

// Watch runs an fsnotify watcher over both content roots and reloads the
// snapshot after each burst of changes, until ctx is cancelled.
//
// Directories created at runtime are added to the watch list. Roots that
// do not exist yet are skipped with a warning; creating one later requires
// a restart, which matches how content folders are provisioned.
func (w *Watched) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	for _, root := range []string{w.postsRoot, w.thoughtsRoot} {
		if err := addDirsRecursive(fw, root); err != nil {
			w.logger.Warn("source: watch root unavailable",
				slog.String("root", root),
				slog.String("error", err.Error()))
		}
	}

	w.logger.Info("source: watcher started",
		slog.String("posts_root", w.postsRoot),
		slog.String("thoughts_root", w.thoughtsRoot))

	var timer *time.Timer
	var timerCh <-chan time.Time

	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(debounce)
			timerCh = timer.C
		} else {
			timer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			w.logger.Info("source: watcher stopped")
			return nil

		case <-timerCh:
			w.Reload()

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(fw, ev.Name); addErr != nil {
						w.logger.Warn("source: add new dir failed",
							slog.String("path", ev.Name),
							slog.String("error", addErr.Error()))
					}
					schedule()
					continue
				}
			}
			if !strings.HasSuffix(ev.Name, ".md") {
				continue
			}
			schedule()

		case watchErr, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("source: watcher error", slog.String("error", watchErr.Error()))
		}
	}
}

func addDirsRecursive(fw *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return nil
	}
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			return fw.Add(p)
		}
		return nil
	})
}
