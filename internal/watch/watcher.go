// Package watch reports changes to the catalog file.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"car-catalog/internal/logger"
)

const DefaultDebounce = 200 * time.Millisecond

// Watcher calls onChange once per burst of filesystem events touching the
// watched file. The parent directory is watched because editors usually
// replace files by renaming a temporary copy over them.
type Watcher struct {
	dir      string
	name     string
	debounce time.Duration
	onChange func()
	logger   logger.Logger

	fsw       *fsnotify.Watcher
	closeOnce sync.Once
}

type Option func(*Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

func New(path string, onChange func(), log logger.Logger, opts ...Option) (*Watcher, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		dir:      filepath.Dir(abs),
		name:     filepath.Base(abs),
		debounce: DefaultDebounce,
		onChange: onChange,
		logger:   log,
		fsw:      fsw,
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", w.dir, err)
	}

	return w, nil
}

// Run dispatches change notifications until ctx is cancelled or the watcher
// is closed.
func (w *Watcher) Run(ctx context.Context) {
	w.logger.Debug("CatalogWatcher", "watching catalog", map[string]interface{}{
		"dir":  w.dir,
		"file": w.name,
	})

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != w.name || !relevant(event) {
				continue
			}
			w.logger.Debug("CatalogWatcher", "catalog event", map[string]interface{}{
				"op": event.Op.String(),
			})
			fire = time.After(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("CatalogWatcher", err, nil)

		case <-fire:
			fire = nil
			w.logger.Info("CatalogWatcher", "catalog changed", map[string]interface{}{
				"file": w.name,
			})
			w.onChange()
		}
	}
}

func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fsw.Close()
	})
	return err
}

// Shutdown lets the shutdown manager release the watcher
func (w *Watcher) Shutdown() {
	if err := w.Close(); err != nil {
		w.logger.Error("CatalogWatcher", err, nil)
	}
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}
