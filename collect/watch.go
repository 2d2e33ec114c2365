// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package collect

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay swallows the burst of events editors emit for a single save.
const debounceDelay = 200 * time.Millisecond

// Watch calls onChange whenever a file below dir is created, written, removed or
// renamed, until ctx is done. Bursts of events within a short time are reported
// once. Directories created later are not watched.
func Watch(ctx context.Context, dir string, log *slog.Logger, onChange func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	defer watcher.Close()

	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return watcher.Add(p)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	log.Info("watching", "dir", dir)

	var (
		pending = map[string]bool{}
		timer   = time.NewTimer(debounceDelay)
	)

	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			pending[event.Name] = true

			timer.Reset(debounceDelay)
		case <-timer.C:
			for p := range pending {
				onChange(p)
			}

			pending = map[string]bool{}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			log.Error("watcher error", "err", err)
		}
	}
}
