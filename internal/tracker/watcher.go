package tracker

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the snapshot file for rewrites using fsnotify, so a
// second kcal process editing the same day shows up without a restart.
// Saves are whole-file temp+rename, so a single debounced notification per
// rewrite is enough; our own saves also trip the watcher, and reloading the
// state we just wrote is harmless.
type Watcher struct {
	path    string
	Changes <-chan struct{} // Read-only external channel

	changes chan struct{}
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the snapshot at path.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan struct{}, 4)
	w := &Watcher{
		path:    path,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching the snapshot's directory. The directory rather than
// the file is watched because atomic rename replaces the inode on every save.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: a save produces a create+rename burst; collapse it.
	const debounce = 100 * time.Millisecond
	var pending bool
	var last time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	base := filepath.Base(w.path)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			pending = true
			last = time.Now()

		case <-ticker.C:
			if pending && time.Since(last) >= debounce {
				pending = false
				select {
				case w.changes <- struct{}{}:
				default:
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
