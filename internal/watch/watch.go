// Package watch re-triages a request file each time it changes.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/ShayCichocki/tasksplit/internal/decompose"
	"github.com/ShayCichocki/tasksplit/pkg/models"
)

// Event is the decomposition of the file's contents after a change.
type Event struct {
	Request        string
	Classification models.Classification
	Items          []models.TaskItem
	Summary        decompose.Summary
	Err            error
}

// Watcher monitors a single request file.
type Watcher struct {
	path       string
	fsw        *fsnotify.Watcher
	decomposer *decompose.Decomposer
	logger     *zap.Logger
	last       string
}

// New creates a watcher for the file at path. The parent directory is
// watched so editors that replace the file on save are still observed.
func New(path string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:       abs,
		fsw:        fsw,
		decomposer: decompose.New(logger),
		logger:     logger.With(zap.String("file", abs)),
	}, nil
}

// Run emits the current decomposition, then one event per content change.
// The channel is closed and the watcher released once ctx is done.
// Run must be called at most once.
func (w *Watcher) Run(ctx context.Context) <-chan Event {
	out := make(chan Event)

	go func() {
		defer close(out)
		defer w.fsw.Close()

		if !w.refresh(ctx, out) {
			return
		}

		for {
			select {
			case <-ctx.Done():
				w.logger.Debug("watch stopped")
				return

			case event, ok := <-w.fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != w.path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				w.logger.Debug("file changed", zap.String("op", event.Op.String()))
				if !w.refresh(ctx, out) {
					return
				}

			case err, ok := <-w.fsw.Errors:
				if !ok {
					return
				}
				if !send(ctx, out, Event{Err: err}) {
					return
				}
			}
		}
	}()

	return out
}

// refresh re-reads the file and emits an event when its request changed.
// It returns false once ctx is done.
func (w *Watcher) refresh(ctx context.Context, out chan<- Event) bool {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return send(ctx, out, Event{Err: fmt.Errorf("reading %s: %w", w.path, err)})
	}

	request := strings.TrimSpace(string(data))
	if request == "" || request == w.last {
		return ctx.Err() == nil
	}
	w.last = request

	c, items := w.decomposer.Analyze(request)
	summary, err := w.decomposer.Summarize(c, items)
	return send(ctx, out, Event{
		Request:        request,
		Classification: c,
		Items:          items,
		Summary:        summary,
		Err:            err,
	})
}

func send(ctx context.Context, out chan<- Event, e Event) bool {
	select {
	case out <- e:
		return true
	case <-ctx.Done():
		return false
	}
}
