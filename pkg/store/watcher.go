package store

import (
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch watches a data directory for record changes and invokes onChange
// after edits settle. External edits (another process, a synced folder, a
// text editor on the YAML files) surface this way. Returns a cleanup
// function stopping the watch.
func Watch(root string, onChange func()) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(root); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})

	go func() {
		var debounceTimer *time.Timer

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				// Only care about record files.
				if !strings.HasSuffix(event.Name, ".yaml") {
					continue
				}

				// Debounce: wait 200ms after the last change.
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(200*time.Millisecond, onChange)

			case <-watcher.Errors:
				// Ignore watcher errors silently

			case <-done:
				return
			}
		}
	}()

	cleanup := func() {
		close(done)
		watcher.Close()
	}

	return cleanup, nil
}
