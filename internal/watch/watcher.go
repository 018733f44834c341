package watch

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/carouselkit/carousel/internal/logger"
	carouselerrors "github.com/carouselkit/carousel/pkg/errors"
)

// debounce window after the first event of a burst. Editors commonly emit
// several writes (or a remove/rename followed by a create) per save.
const settleWindow = 100 * time.Millisecond

// Watcher monitors a single deck file for changes using fsnotify. The
// file's parent directory is watched because editors replace files on save.
type Watcher struct {
	path      string
	fsWatcher *fsnotify.Watcher
	changes   chan struct{}
	done      chan struct{}
	log       *logger.Logger
}

// New creates a watcher for the given deck file and starts delivering
// change notifications.
func New(path string, log *logger.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, carouselerrors.NewWatchError(path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, carouselerrors.NewWatchError(path, err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, carouselerrors.NewWatchError(path, err)
	}
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, carouselerrors.NewWatchError(path, err)
	}

	w := &Watcher{
		path:      abs,
		fsWatcher: fsWatcher,
		changes:   make(chan struct{}, 1),
		done:      make(chan struct{}),
		log:       log.Component("watch"),
	}
	go w.loop()
	return w, nil
}

// Path returns the absolute path of the watched deck file.
func (w *Watcher) Path() string { return w.path }

// Wait blocks until the deck file changes or the watcher closes. It reports
// false once the watcher is closed; no notification is delivered after that.
func (w *Watcher) Wait() bool {
	select {
	case _, ok := <-w.changes:
		return ok
	case <-w.done:
		return false
	}
}

// Close tears the watcher down deterministically.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.fsWatcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.settle()
			w.notify()
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Error(err, "deck watcher error")
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Name != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// settle drains the remainder of a save burst.
func (w *Watcher) settle() {
	timer := time.NewTimer(settleWindow)
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
			return
		case <-w.done:
			return
		case <-w.fsWatcher.Events:
		}
	}
}

func (w *Watcher) notify() {
	select {
	case <-w.done:
	case w.changes <- struct{}{}:
	default:
		// A change is already pending; collapsing bursts is fine.
	}
}
