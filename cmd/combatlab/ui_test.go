package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/wraith/arena"
	"github.com/milk9111/wraith/prefabs"
	"github.com/milk9111/wraith/save"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel(t *testing.T) Model {
	t.Helper()
	prefabs.SetDiskRoot("")
	t.Cleanup(func() { prefabs.SetDiskRoot("prefabs") })
	tables, err := prefabs.LoadTables()
	require.NoError(t, err)
	a, err := arena.Load(tables, arena.DefaultFile)
	require.NoError(t, err)
	return New(a, &save.FileStore{Dir: t.TempDir()})
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestSlotIndex(t *testing.T) {
	tests := map[string]int{"f": 0, "1": 1, "3": 3, "5": 5}
	for in, want := range tests {
		assert.Equal(t, want, slotIndex(in), in)
	}
}

func TestKeysSetInputEdges(t *testing.T) {
	m := newModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	assert.True(t, m.firing)
	assert.True(t, m.input().FirePressed)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	assert.False(t, m.firing)
	assert.True(t, m.input().FireReleased)

	m, _ = press(t, m, runes("z"))
	assert.True(t, m.input().AimPressed)

	m, _ = press(t, m, runes("e"))
	assert.True(t, m.input().SelectPressed)

	m, _ = press(t, m, runes("r"))
	assert.True(t, m.input().ReloadPressed)

	m, _ = press(t, m, runes("2"))
	assert.Equal(t, 2, m.input().SlotKey)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, -1.0, m.moveX)
	assert.Equal(t, moveHold, m.moveTicks)
}

func TestStepConsumesEdges(t *testing.T) {
	m := newModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})

	m.step()

	assert.False(t, m.input().FirePressed)
	assert.Equal(t, 29, m.arena.Status().Ammo)
}

func TestPauseAndQuit(t *testing.T) {
	m := newModel(t)

	m, _ = press(t, m, runes("p"))
	assert.True(t, m.paused)

	_, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSaveThenLoadLoadout(t *testing.T) {
	m := newModel(t)

	_, cmd := press(t, m, runes("S"))
	require.NotNil(t, cmd)
	assert.Equal(t, noticeMsg("loadout saved"), cmd())

	_, cmd = press(t, m, runes("L"))
	require.NotNil(t, cmd)
	assert.Equal(t, noticeMsg("loadout restored"), cmd())
}

func TestLoadWithoutSave(t *testing.T) {
	m := newModel(t)

	_, cmd := press(t, m, runes("L"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(noticeMsg)
	require.True(t, ok)
	assert.Contains(t, string(msg), "load failed")
}
