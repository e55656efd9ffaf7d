package arena

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/milk9111/wraith/prefabs"
)

// Watch starts reporting edits to the tables and scripts under dir.
func (a *Arena) Watch(dir string) error {
	w, err := prefabs.NewWatcher(dir, filepath.Join(dir, "scripts"))
	if err != nil {
		return fmt.Errorf("arena: watch %s: %w", dir, err)
	}
	a.watcher = w
	return nil
}

// PollReload reloads the tables when the watcher saw an edit since the last
// call. A table set that fails to load or validate is logged and ignored.
func (a *Arena) PollReload() bool {
	if a.watcher == nil {
		return false
	}
	if err := a.watcher.PollErr(); err != nil {
		slog.Warn("arena: watcher", "err", err)
	}
	changed := a.watcher.Poll()
	if len(changed) == 0 {
		return false
	}
	tables, err := prefabs.LoadTables()
	if err != nil {
		slog.Error("arena: reload tables", "files", changed, "err", err)
		return false
	}
	if err := a.Reload(tables); err != nil {
		slog.Warn("arena: reload scripts", "err", err)
	}
	slog.Info("arena: tables reloaded", "files", changed)
	return true
}

func (a *Arena) Close() error {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Close()
}
