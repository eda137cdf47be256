package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// RunWatchValidate validates the document, then again on every change,
// until ctx is cancelled. Validation failures are reported, not returned.
func RunWatchValidate(ctx context.Context, w io.Writer, opts InspectOptions) error {
	path, err := resolveDefinitions(opts.Path)
	if err != nil {
		return err
	}
	opts.Path = path

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch definitions: %w", err)
	}

	logger := opts.logger()
	_ = RunValidate(w, opts)
	fmt.Fprintf(w, "watching %s for changes\n", path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				logger.Debug("definitions changed", "path", path, "op", event.Op.String())
				_ = RunValidate(w, opts)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		case <-ctx.Done():
			return nil
		}
	}
}
