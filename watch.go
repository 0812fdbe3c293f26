package lispy

import (
	"log/slog"
	"os"

	"github.com/fsnotify/fsnotify"
)

// WatchFile reloads path into env with LoadFile every time it changes
// on disk, until stop is closed. Reload errors are logged but never
// stop the watch: LoadFile already tolerates per-expression errors;
// `--watch` extends that tolerance across reloads.
func WatchFile(env *Environment, path string, log *slog.Logger, stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	reload := func() {
		result := LoadFile(env, path, os.Stderr)
		if result.IsError() {
			log.Error("watch reload failed", slog.String("path", path), slog.String("error", result.String()))
			return
		}
		log.Info("watch reload", slog.String("path", path))
	}

	reload()
	for {
		select {
		case <-stop:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				reload()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watch error", slog.String("error", err.Error()))
		}
	}
}
