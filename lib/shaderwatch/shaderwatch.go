// Package shaderwatch notices when shader sources are rewritten on disk
// after the program was built. The program itself is never rebuilt; the
// change is only reported.
package shaderwatch

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/trianglix/lib/metrics"
	"github.com/fosdem/trianglix/lib/stats"
	"github.com/jhenstridge/go-inotify"
)

type Watcher struct {
	watcher *inotify.Watcher
	stats   *stats.Stats
	paths   []string
	done    chan struct{}
	started bool
}

func New(st *stats.Stats, paths ...string) (*Watcher, error) {
	watcher, err := inotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not start inotify watcher: %w", err)
	}

	w := &Watcher{
		watcher: watcher,
		stats:   st,
		paths:   paths,
		done:    make(chan struct{}),
	}
	for _, path := range paths {
		_, err = watcher.Watch(path)
		if err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("could not watch %s: %w", path, err)
		}
	}
	return w, nil
}

// Start consumes events in the background until Close.
func (w *Watcher) Start() {
	w.started = true
	go w.watch()
}

func (w *Watcher) watch() {
	defer close(w.done)
	for ev := range w.watcher.Event {
		if ev.Mask&(inotify.IN_CLOSE_WRITE|inotify.IN_MOVE_SELF|inotify.IN_DELETE_SELF) == 0 {
			continue
		}
		if !w.stats.Report().ShadersStale {
			slog.Warn(fmt.Sprintf("%s changed on disk, restart to use it", eventPath(ev)), slog.String("module", "shaderwatch"))
		}
		w.stats.SetShadersStale(true)
		metrics.ShaderSourcesStale.Set(1)
	}
}

func eventPath(ev inotify.Event) string {
	if ev.Watch == nil {
		return ev.Name
	}
	return ev.Watch.Path
}

// Close stops watching. Errors hit by the inotify reader are reported
// here.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	if w.started {
		<-w.done
	}
	if err != nil {
		slog.Error(fmt.Sprintf("inotify error: %s", err), slog.String("module", "shaderwatch"))
	}
	return err
}
