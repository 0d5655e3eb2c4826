package keymap

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pion/logging"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a layout file into a Holder whenever it changes on disk.
// A file that fails to parse leaves the previous table in place.
type Watcher struct {
	path   string
	holder *Holder
	log    logging.LeveledLogger

	mu       sync.Mutex
	onChange []func(*Table)
	fsw      *fsnotify.Watcher
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewWatcher prepares a watcher for path. Call Start to begin watching.
func NewWatcher(path string, holder *Holder, log logging.LeveledLogger) *Watcher {
	return &Watcher{path: path, holder: holder, log: log}
}

// OnChange registers a callback invoked after each successful reload.
func (w *Watcher) OnChange(fn func(*Table)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, fn)
}

// Start watches the directory containing the layout file. Editors often
// replace files instead of writing in place, so the file itself is not watched.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		_ = fsw.Close()
		return fmt.Errorf("watch directory: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	w.mu.Lock()
	w.fsw = fsw
	w.cancel = cancel
	w.done = make(chan struct{})
	w.mu.Unlock()

	go w.loop(ctx, fsw, w.done)
	return nil
}

// Close stops watching and waits for the event loop to exit.
func (w *Watcher) Close() error {
	w.mu.Lock()
	fsw, cancel, done := w.fsw, w.cancel, w.done
	w.fsw, w.cancel, w.done = nil, nil, nil
	w.mu.Unlock()
	if fsw == nil {
		return nil
	}
	cancel()
	err := fsw.Close()
	<-done
	return err
}

// Reload parses the layout file and publishes it on success.
func (w *Watcher) Reload() error {
	t, err := Load(w.path)
	if err != nil {
		return err
	}
	w.holder.Store(t)
	rows, cols := t.Dims()
	w.log.Infof("layout %q reloaded (%dx%d)", t.Name(), rows, cols)

	w.mu.Lock()
	callbacks := append([]func(*Table){}, w.onChange...)
	w.mu.Unlock()
	for _, fn := range callbacks {
		fn(t)
	}
	return nil
}

// loop debounces file events for the watched path.
func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, done chan struct{}) {
	defer close(done)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	target := filepath.Clean(w.path)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDebounce, func() {
				if err := w.Reload(); err != nil {
					w.log.Warnf("layout reload failed, keeping previous table: %v", err)
				}
			})
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.log.Warnf("layout watcher: %v", err)
		}
	}
}
