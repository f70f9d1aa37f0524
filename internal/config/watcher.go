package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler is called with freshly loaded options after the watched file
// changes.
type Handler func(Options)

// ErrorHandler is called when a reload fails. The previous options
// stay in effect.
type ErrorHandler func(error)

// Watcher reloads a configuration file when it changes on disk.
// Editors that create classifiers from the options register a handler
// and rebuild on callback.
type Watcher struct {
	path     string
	debounce time.Duration

	mu        sync.Mutex
	handlers  []Handler
	onError   []ErrorHandler
	timer     *time.Timer
	closed    bool
	closeOnce sync.Once

	fsw  *fsnotify.Watcher
	done chan struct{}
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long the watcher waits after the last write
// before reloading. Editors saving via rename-and-replace emit bursts
// of events; the default is 100ms.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// NewWatcher watches the configuration file at path. The watch is on
// the parent directory so saves that replace the file keep working.
func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		debounce: 100 * time.Millisecond,
		fsw:      fsw,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.loop()
	return w, nil
}

// OnChange registers a handler for successful reloads.
func (w *Watcher) OnChange(h Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, h)
}

// OnError registers a handler for failed reloads.
func (w *Watcher) OnError(h ErrorHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onError = append(w.onError, h)
}

// Close stops the watcher. Pending debounced reloads are dropped.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		err = w.fsw.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.fireError(err)
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

// reload loads the file, applies environment overrides, and fires the
// handlers. Called from the debounce timer.
func (w *Watcher) reload() {
	opts, err := Load(w.path)
	if err == nil {
		opts, err = ApplyEnv(opts)
	}
	if err != nil {
		w.fireError(err)
		return
	}

	w.mu.Lock()
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	for _, h := range handlers {
		h(opts)
	}
}

func (w *Watcher) fireError(err error) {
	w.mu.Lock()
	onError := make([]ErrorHandler, len(w.onError))
	copy(onError, w.onError)
	w.mu.Unlock()

	for _, h := range onError {
		h(err)
	}
}
