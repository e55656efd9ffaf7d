package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsTableEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	path := filepath.Join(dir, WeaponsFile)
	for range 3 {
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	}

	var batch []string
	require.Eventually(t, func() bool {
		batch = w.Poll()
		return len(batch) > 0
	}, 2*time.Second, 20*time.Millisecond)

	assert.Equal(t, []string{path}, batch, "a burst of writes arrives once")
	assert.Nil(t, w.Poll())
	assert.NoError(t, w.PollErr())
}

func TestWatchMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "gone"))
	assert.ErrorContains(t, err, "gone")
}

func TestCloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestRelevant(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{name: "yaml write", event: fsnotify.Event{Name: "weapons.yaml", Op: fsnotify.Write}, want: true},
		{name: "yml create", event: fsnotify.Event{Name: "arena.YML", Op: fsnotify.Create}, want: true},
		{name: "script rename", event: fsnotify.Event{Name: "scripts/grux_attack.tengo", Op: fsnotify.Rename}, want: true},
		{name: "chmod only", event: fsnotify.Event{Name: "weapons.yaml", Op: fsnotify.Chmod}},
		{name: "other file", event: fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write}},
		{name: "lua script", event: fsnotify.Event{Name: "ai.lua", Op: fsnotify.Write}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevant(tt.event))
		})
	}
}
