// Package watch re-parses a plan document whenever it changes on disk
// and delivers fresh graph snapshots to the caller. It exists at the
// boundary of the system: the graph code itself never watches
// anything.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/planloom/planloom/internal/taskgraph"
)

// Snapshot is one re-parse of the watched document.
type Snapshot struct {
	Graph       *taskgraph.Graph
	Diagnostics []taskgraph.Diagnostic
	Err         error
}

// Watcher watches a single plan document and emits a Snapshot after
// every write. Events are debounced so editor save bursts produce one
// parse instead of several.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	planID   string
	debounce time.Duration

	snapshots chan Snapshot
	done      chan struct{}
}

// New starts watching the plan document at path. The watch is placed
// on the containing directory because fsnotify handles
// rename-into-place writes (the atomic save pattern) more reliably at
// the directory level.
func New(path, planID string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		watcher:   fsw,
		path:      path,
		planID:    planID,
		debounce:  debounce,
		snapshots: make(chan Snapshot, 1),
		done:      make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Snapshots returns the channel of re-parse results.
func (w *Watcher) Snapshots() <-chan Snapshot {
	return w.snapshots
}

// Close stops watching and releases the underlying watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.emit(Snapshot{Err: err})

		case <-fire:
			timer = nil
			fire = nil
			w.emit(w.reparse())
		}
	}
}

func (w *Watcher) reparse() Snapshot {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return Snapshot{Err: fmt.Errorf("read %s: %w", w.path, err)}
	}
	g, diags := taskgraph.Parse(string(data), w.planID)
	return Snapshot{Graph: g, Diagnostics: diags}
}

// emit delivers a snapshot without blocking: if the caller has not
// drained the previous one, it is replaced by the newer state.
func (w *Watcher) emit(s Snapshot) {
	select {
	case w.snapshots <- s:
	default:
		select {
		case <-w.snapshots:
		default:
		}
		select {
		case w.snapshots <- s:
		default:
		}
	}
}
