package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
	"github.com/milk9111/wraith/prefabs"
)

func testTables(t *testing.T) *prefabs.Tables {
	t.Helper()
	prefabs.SetDiskRoot("")
	t.Cleanup(func() { prefabs.SetDiskRoot("prefabs") })
	tables, err := prefabs.LoadTables()
	require.NoError(t, err)
	return tables
}

func TestNewWeaponIsPickup(t *testing.T) {
	tables := testTables(t)
	w := ecs.NewWorld()

	e, err := NewWeapon(w, tables, "ar", common.V3(10, 20, 70))
	require.NoError(t, err)

	item, ok := ecs.Get(w, e, component.ItemComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.ItemPickup, item.State)
	assert.Equal(t, component.NoSlot, item.Slot)
	assert.Equal(t, "Chain Whip", item.Name)
	assert.Equal(t, 4, item.NumberOfStars)
	assert.True(t, item.ActiveStars[4])
	assert.False(t, item.ActiveStars[5])
	assert.NotZero(t, item.ID)

	weapon, _ := ecs.Get(w, e, component.WeaponComponent.Kind())
	assert.Equal(t, 20, weapon.Ammo)
	assert.Equal(t, component.AmmoAR, weapon.AmmoType)

	shape, _ := ecs.Get(w, e, component.TraceShapeComponent.Kind())
	assert.True(t, shape.Enabled)

	volumes, _ := ecs.Get(w, e, component.OverlapComponent.Kind())
	require.Len(t, *volumes, 1)
	assert.Equal(t, component.VolumeItemArea, (*volumes)[0].Name)
	assert.True(t, (*volumes)[0].Enabled)

	interp, _ := ecs.Get(w, e, component.ItemInterpComponent.Kind())
	assert.InDelta(t, 0.7, interp.Duration, 1e-9)
	assert.NotEmpty(t, interp.ZCurve)
}

func TestNewPlayerHoldsStartingWeapon(t *testing.T) {
	tables := testTables(t)
	w := ecs.NewWorld()

	var equips []component.EquipItem
	w.Events().Subscribe(component.EventEquipItem, func(e ecs.Event) {
		equips = append(equips, e.Data.(component.EquipItem))
	})

	p, err := NewPlayer(w, tables, common.Vec3{})
	require.NoError(t, err)

	inv, ok := ecs.Get(w, p, component.InventoryComponent.Kind())
	require.True(t, ok)
	require.Len(t, inv.Slots, 1)
	assert.Equal(t, inv.Slots[0], inv.Equipped)
	assert.Equal(t, 2, inv.Capacity)
	assert.Equal(t, component.NoSlot, inv.HighlightedSlot)

	item, _ := ecs.Get(w, ecs.EntityFromRef(inv.Equipped), component.ItemComponent.Kind())
	assert.Equal(t, component.ItemEquipped, item.State)
	assert.Equal(t, 0, item.Slot)
	assert.Equal(t, p.Ref(), item.Owner)

	require.Len(t, equips, 1)
	assert.Equal(t, component.NoSlot, equips[0].CurrentSlot)
	assert.Equal(t, 0, equips[0].NewSlot)

	stock, _ := ecs.Get(w, p, component.AmmoStockComponent.Kind())
	assert.Equal(t, 100, stock.Count(component.Ammo9mm))
	assert.Equal(t, 100, stock.Count(component.AmmoAR))

	cam, _ := ecs.Get(w, p, component.CameraComponent.Kind())
	assert.InDelta(t, 90, cam.CurrentFOV, 1e-9)

	input, _ := ecs.Get(w, p, component.InputComponent.Kind())
	assert.Equal(t, component.NoSlotKey, input.SlotKey)
}

func TestNewEnemy(t *testing.T) {
	tables := testTables(t)
	w := ecs.NewWorld()

	e, err := NewEnemy(w, tables, "grux", common.V3(100, 0, 0), 90)
	require.NoError(t, err)

	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	require.True(t, ok)
	assert.True(t, enemy.CanAttack)
	assert.True(t, enemy.CanHitReact)
	assert.Equal(t, "head", enemy.HeadBone)
	assert.Len(t, enemy.AttackSections, 7)
	assert.Equal(t, common.V3(90, -40, 30), enemy.LeftWeaponSocket)
	assert.Equal(t, common.V3(90, 40, 30), enemy.RightWeaponSocket)
	assert.Equal(t, common.V3(70, -20, -80), enemy.LeftFootSocket)
	assert.Equal(t, common.V3(70, 20, -80), enemy.RightFootSocket)

	bb, _ := ecs.Get(w, e, component.BlackboardComponent.Kind())
	assert.True(t, bb.CanAttack)
	assert.Zero(t, bb.Target)
	assert.Equal(t, common.V3(-200, 0, 0), bb.PatrolPoint)
	assert.Equal(t, common.V3(400, 0, 0), bb.PatrolPoint2)

	volumes, _ := ecs.Get(w, e, component.OverlapComponent.Kind())
	enabled := map[string]bool{}
	for _, v := range *volumes {
		enabled[v.Name] = v.Enabled
	}
	assert.Equal(t, map[string]bool{
		component.VolumeAgro:        true,
		component.VolumeCombatRange: true,
		component.VolumeLeftWeapon:  false,
		component.VolumeRightWeapon: false,
		component.VolumeLeftFoot:    false,
		component.VolumeRightFoot:   false,
	}, enabled)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.InDelta(t, 90, tr.Yaw, 1e-9)
}

func TestNewTeleportedProp(t *testing.T) {
	tables := testTables(t)
	w := ecs.NewWorld()

	e, err := NewTeleportedProp(w, tables, "explosive_barrel", common.V3(0, 0, 40))
	require.NoError(t, err)
	assert.True(t, ecs.Has(w, e, component.TeleportedTagComponent.Kind()))
	wh, _ := ecs.Get(w, e, component.WhipHittableComponent.Kind())
	assert.Equal(t, "teleport_whoosh", wh.TeleportSound)
}

func TestUnknownKeys(t *testing.T) {
	tables := testTables(t)
	w := ecs.NewWorld()

	_, err := NewWeapon(w, tables, "bazooka", common.Vec3{})
	assert.ErrorIs(t, err, prefabs.ErrUnknownRow)
	_, err = NewEnemy(w, tables, "dragon", common.Vec3{}, 0)
	assert.ErrorIs(t, err, prefabs.ErrUnknownRow)
	_, err = NewTeleportedProp(w, tables, "crate", common.Vec3{})
	assert.ErrorIs(t, err, prefabs.ErrUnknownRow)
}
