package shader

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a shader file whenever it changes on disk.
//
// The directory is watched rather than the file so editors that save by
// renaming a temporary file over the original are still seen. Only the most
// recent result is kept if the consumer falls behind.
type Watcher struct {
	path    string
	opts    LoadOptions
	log     *slog.Logger
	fsw     *fsnotify.Watcher
	sources chan Source
	errs    chan error
}

// NewWatcher starts watching path. Call Run to process events and Close when
// done.
func NewWatcher(path string, opts LoadOptions, logger *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	return &Watcher{
		path:    abs,
		opts:    opts,
		log:     logger,
		fsw:     fsw,
		sources: make(chan Source, 1),
		errs:    make(chan error, 1),
	}, nil
}

// Sources delivers each successfully reloaded source.
func (w *Watcher) Sources() <-chan Source { return w.sources }

// Errors delivers reload and watch failures.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Run processes file events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.log.Debug("shader file changed", "path", w.path, "op", ev.Op.String())

			src, err := LoadFile(w.path, w.opts)
			if err != nil {
				offer(w.errs, err)
				continue
			}
			offer(w.sources, src)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			offer(w.errs, fmt.Errorf("watch %s: %w", w.path, err))
		}
	}
}

func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// offer replaces any unread value in ch with v.
func offer[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
