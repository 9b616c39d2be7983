// Package backend watches the menu definition file and publishes reload
// events to the UI.
package backend

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event conveys a reload trigger or a watcher error.
type Event struct {
	Path string
	Err  error
}

// Watcher observes a single file through fsnotify and emits one event per
// burst of filesystem activity. Watching the parent directory keeps
// editors that replace the file on save (rename-over) visible.
type Watcher struct {
	path  string
	quiet time.Duration

	fw     *fsnotify.Watcher
	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching the given file. Bursts of events within the
// quiet interval collapse into a single reload event.
func NewWatcher(path string, quiet time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:   abs,
		quiet:  quiet,
		fw:     fw,
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.run()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// Events returns the channel of reload events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watch goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer w.fw.Close()

	base := filepath.Base(w.path)
	var debounce <-chan time.Time

	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debounce = time.After(w.quiet)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.emit(Event{Path: w.path, Err: err})
		case <-debounce:
			debounce = nil
			w.emit(Event{Path: w.path})
		}
	}
}

func (w *Watcher) emit(evt Event) {
	select {
	case <-w.ctx.Done():
	case w.events <- evt:
	}
}
