package system_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
	"github.com/milk9111/wraith/ecs/entity"
	"github.com/milk9111/wraith/ecs/system"
	"github.com/milk9111/wraith/prefabs"
)

const frame = 1.0 / 60

type rig struct {
	w      *ecs.World
	tables *prefabs.Tables
	sys    *system.Systems
	sched  *ecs.Scheduler
	player ecs.Entity
}

// newRig builds a world from the embedded tables with the player at the
// origin holding the starting sniper.
func newRig(t *testing.T) *rig {
	t.Helper()

	prefabs.SetDiskRoot("")
	t.Cleanup(func() { prefabs.SetDiskRoot("prefabs") })

	tables, err := prefabs.LoadTables()
	require.NoError(t, err)

	w := ecs.NewWorld()
	w.SetRand(rand.New(rand.NewPCG(7, 11)))

	player, err := entity.NewPlayer(w, tables, common.Vec3{})
	require.NoError(t, err)

	sys := system.NewSystems(tables)
	return &rig{w: w, tables: tables, sys: sys, sched: sys.Scheduler(), player: player}
}

// run steps sched for at least seconds of game time.
func (r *rig) run(sched *ecs.Scheduler, seconds float64) {
	for elapsed := 0.0; elapsed < seconds; elapsed += frame {
		sched.Step(r.w, frame)
	}
}

func (r *rig) runAll(seconds float64) {
	r.run(r.sched, seconds)
}

func (r *rig) combat(t *testing.T) *component.Combat {
	t.Helper()
	c, ok := ecs.Get(r.w, r.player, component.CombatComponent.Kind())
	require.True(t, ok)
	return c
}

func (r *rig) inventory(t *testing.T) *component.Inventory {
	t.Helper()
	inv, ok := ecs.Get(r.w, r.player, component.InventoryComponent.Kind())
	require.True(t, ok)
	return inv
}

func (r *rig) stock(t *testing.T) *component.AmmoStock {
	t.Helper()
	s, ok := ecs.Get(r.w, r.player, component.AmmoStockComponent.Kind())
	require.True(t, ok)
	return s
}

func (r *rig) weapon(t *testing.T) *component.Weapon {
	t.Helper()
	_, weapon, ok := system.EquippedWeapon(r.w, r.player)
	require.True(t, ok)
	return weapon
}

func (r *rig) spawnWeapon(t *testing.T, key string, at common.Vec3) ecs.Entity {
	t.Helper()
	e, err := entity.NewWeapon(r.w, r.tables, key, at)
	require.NoError(t, err)
	return e
}

func (r *rig) spawnEnemy(t *testing.T, at common.Vec3, yaw float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewEnemy(r.w, r.tables, "grux", at, yaw)
	require.NoError(t, err)
	return e
}

func (r *rig) item(t *testing.T, e ecs.Entity) *component.Item {
	t.Helper()
	it, ok := ecs.Get(r.w, e, component.ItemComponent.Kind())
	require.True(t, ok)
	return it
}

// count subscribes to typ and returns a pointer to the running count.
func count(w *ecs.World, typ string) *int {
	n := new(int)
	w.Events().Subscribe(typ, func(ecs.Event) { *n++ })
	return n
}

func (r *rig) newProp(at common.Vec3) (ecs.Entity, error) {
	return entity.NewTeleportedProp(r.w, r.tables, "explosive_barrel", at)
}
