package arena

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
	"github.com/milk9111/wraith/ecs/system"
	"github.com/milk9111/wraith/prefabs"
)

func loadArena(t *testing.T) *Arena {
	t.Helper()
	prefabs.SetDiskRoot("")
	t.Cleanup(func() { prefabs.SetDiskRoot("prefabs") })

	tables, err := prefabs.LoadTables()
	require.NoError(t, err)
	a, err := Load(tables, DefaultFile)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestLoadSpawnsLayout(t *testing.T) {
	a := loadArena(t)

	assert.Equal(t, "courtyard", a.Name)
	assert.Equal(t, 2, ecs.Count(a.World, component.TeleportedTagComponent.Kind()))
	assert.Equal(t, 1, ecs.Count(a.World, component.EnemyComponent.Kind()))
	assert.Equal(t, 3, ecs.Count(a.World, component.WeaponComponent.Kind()))

	st := a.Status()
	assert.InDelta(t, 100, st.Health, 1e-9)
	assert.Equal(t, "sniper", st.Weapon)
	assert.Equal(t, 30, st.Ammo)
	assert.Equal(t, 30, st.Magazine)
	assert.Equal(t, 100, st.Carried)
	assert.Equal(t, []string{"Whip"}, st.Slots)
	assert.Equal(t, 0, st.Equipped)
	assert.Equal(t, component.NoSlot, st.Highlighted)
	assert.Equal(t, component.CombatUnoccupied, st.State)
}

func TestLoadUnknownFile(t *testing.T) {
	prefabs.SetDiskRoot("")
	t.Cleanup(func() { prefabs.SetDiskRoot("prefabs") })
	tables, err := prefabs.LoadTables()
	require.NoError(t, err)

	_, err = Load(tables, "missing.yaml")
	assert.Error(t, err)
}

func TestNewRejectsUnknownRows(t *testing.T) {
	prefabs.SetDiskRoot("")
	t.Cleanup(func() { prefabs.SetDiskRoot("prefabs") })
	tables, err := prefabs.LoadTables()
	require.NoError(t, err)

	_, err = New(tables, prefabs.ArenaSpec{Enemies: []prefabs.SpawnSpec{{Key: "dragon"}}})
	assert.ErrorIs(t, err, prefabs.ErrUnknownRow)
}

func TestStepRecordsFeedAndBeams(t *testing.T) {
	a := loadArena(t)
	// places the camera so the whip lines up with the ar pickup
	a.Step(1.0 / 60)

	system.FireButtonPressed(a.World, a.Player)
	system.FireButtonReleased(a.World, a.Player)

	require.Len(t, a.Beams(), 1)
	feed := a.Feed()
	assert.Contains(t, feed, "combat unoccupied -> fire_timer_in_progress")
	assert.Contains(t, feed, "sound whip_crack")

	for range 12 {
		a.Step(1.0 / 60)
	}
	assert.Empty(t, a.Beams())
	assert.Contains(t, a.Feed(), "combat fire_timer_in_progress -> unoccupied")
	assert.Equal(t, 29, a.Status().Ammo)
}

func TestFeedKeepsMostRecent(t *testing.T) {
	a := loadArena(t)

	for i := range 40 {
		ecs.Publish(a.World, component.EventSound, component.Sound{Cue: string(rune('a' + i%26))})
	}

	feed := a.Feed()
	assert.Len(t, feed, feedSize)
	assert.Equal(t, "sound n", feed[len(feed)-1])
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		evt  ecs.Event
		want string
	}{
		{name: "headshot", evt: ecs.Event{Data: component.Damage{Amount: 50, Remaining: 50, Headshot: true}}, want: "took 50 (headshot), 50 left"},
		{name: "equip", evt: ecs.Event{Data: component.EquipItem{CurrentSlot: 0, NewSlot: 1}}, want: "equip slot 0 -> 1"},
		{name: "stun ended", evt: ecs.Event{Data: component.Stunned{Stunned: false}}},
		{name: "other", evt: ecs.Event{Data: 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := describe(tt.evt)
			if tt.want == "" {
				assert.Empty(t, got)
				return
			}
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestPollReload(t *testing.T) {
	a := loadArena(t)
	assert.False(t, a.PollReload())

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scripts"), 0o755))
	require.NoError(t, a.Watch(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, prefabs.WeaponsFile), []byte("{}"), 0o644))
	assert.Eventually(t, a.PollReload, 2*time.Second, 20*time.Millisecond)
	assert.False(t, a.PollReload())
}
