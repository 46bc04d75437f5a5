package bake

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// debounce coalesces the editor write bursts some tools produce.
const debounce = 200 * time.Millisecond

// Watch bakes srcPath once, then rebakes on every change until ctx is
// canceled. Bake failures are logged and watching continues, so a syntax
// error mid-edit doesn't kill the session.
func Watch(ctx context.Context, srcPath, outDir string, logger *log.Logger) error {
	if _, err := Bake(srcPath, outDir); err != nil {
		logger.Error("initial bake failed", "source", srcPath, "error", err)
	} else {
		logger.Info("baked", "source", srcPath, "out", outDir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("bake: cannot create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors that rename-over the file
	// would otherwise drop the watch.
	if err := watcher.Add(filepath.Dir(srcPath)); err != nil {
		return fmt.Errorf("bake: cannot watch %s: %w", srcPath, err)
	}

	target := filepath.Clean(srcPath)
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				timer.Reset(debounce)
			}

		case <-timerC:
			timerC = nil
			timer = nil
			if _, err := Bake(srcPath, outDir); err != nil {
				logger.Error("bake failed", "source", srcPath, "error", err)
				continue
			}
			logger.Info("rebaked", "source", srcPath, "out", outDir)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}
