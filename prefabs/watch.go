package prefabs

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const settleDelay = 100 * time.Millisecond

// Watcher reports edits to prefab tables and scripts on disk. Editors write
// a file in several steps, so names are collected until the directories have
// been quiet for settleDelay and then handed over as one batch.
type Watcher struct {
	fs      *fsnotify.Watcher
	batches chan []string
	errs    chan error
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("prefabs: watcher: %w", err)
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("prefabs: watch %s: %w", dir, err)
		}
	}

	w := &Watcher{
		fs:      fsw,
		batches: make(chan []string, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	pending := map[string]struct{}{}
	settle := time.NewTimer(settleDelay)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			pending[event.Name] = struct{}{}
			settle.Reset(settleDelay)
		case <-settle.C:
			if len(pending) > 0 {
				w.deliver(pending)
				pending = map[string]struct{}{}
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			// keep the first unread error
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

// deliver merges names into any batch the frame loop has not picked up yet.
// run is the only sender, so the buffered send never blocks.
func (w *Watcher) deliver(names map[string]struct{}) {
	batch := make([]string, 0, len(names))
	for name := range names {
		batch = append(batch, name)
	}
	select {
	case prev := <-w.batches:
		batch = append(batch, prev...)
	default:
	}
	slices.Sort(batch)
	w.batches <- slices.Compact(batch)
}

func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	return isSpecFile(event.Name) || isScriptFile(event.Name)
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}

// Poll returns the files changed since the last call, sorted, or nil. It
// never blocks; the frame loop calls it once per tick.
func (w *Watcher) Poll() []string {
	select {
	case batch := <-w.batches:
		return batch
	default:
		return nil
	}
}

// PollErr returns a pending watch error, if any.
func (w *Watcher) PollErr() error {
	select {
	case err := <-w.errs:
		return err
	default:
		return nil
	}
}
