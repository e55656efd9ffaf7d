package save

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
	"github.com/milk9111/wraith/ecs/entity"
	"github.com/milk9111/wraith/ecs/system"
	"github.com/milk9111/wraith/prefabs"
)

func newPlayer(t *testing.T) (*ecs.World, *prefabs.Tables, ecs.Entity) {
	t.Helper()
	tables, err := prefabs.LoadTables()
	require.NoError(t, err)
	w := ecs.NewWorld()
	player, err := entity.NewPlayer(w, tables, common.Vec3{})
	require.NoError(t, err)
	return w, tables, player
}

func TestCaptureRestoreRoundTrip(t *testing.T) {
	w, tables, player := newPlayer(t)
	_, weapon, ok := equipped(w, player)
	require.True(t, ok)
	weapon.Ammo = 7
	stock, _ := ecs.Get(w, player, component.AmmoStockComponent.Kind())
	stock.Carried[component.Ammo9mm] = 42
	health, _ := ecs.Get(w, player, component.HealthComponent.Kind())
	health.Current = 55

	profile := uuid.New()
	l, err := Capture(w, player, profile)
	require.NoError(t, err)
	require.Len(t, l.Slots, 1)
	assert.Equal(t, 0, l.Equipped)
	assert.Equal(t, 7, l.Slots[0].Ammo)

	w2, _, player2 := newPlayer(t)
	require.NoError(t, Restore(w2, tables, player2, l))

	_, weapon2, ok := equipped(w2, player2)
	require.True(t, ok)
	assert.Equal(t, 7, weapon2.Ammo)
	stock2, _ := ecs.Get(w2, player2, component.AmmoStockComponent.Kind())
	assert.Equal(t, 42, stock2.Count(component.Ammo9mm))
	health2, _ := ecs.Get(w2, player2, component.HealthComponent.Kind())
	assert.Equal(t, 55.0, health2.Current)
	inv, _ := ecs.Get(w2, player2, component.InventoryComponent.Kind())
	assert.Len(t, inv.Slots, 1)
	item, _ := ecs.Get(w2, ecs.EntityFromRef(inv.Slots[0]), component.ItemComponent.Kind())
	assert.Equal(t, l.Slots[0].ItemID, item.ID)
	assert.Equal(t, component.ItemEquipped, item.State)
}

func TestRestoreRejectsBusyCharacter(t *testing.T) {
	w, tables, player := newPlayer(t)
	l, err := Capture(w, player, uuid.New())
	require.NoError(t, err)

	c, _ := ecs.Get(w, player, component.CombatComponent.Kind())
	c.State = component.CombatReloading
	assert.ErrorIs(t, Restore(w, tables, player, l), ErrBusy)
}

func TestRestoreEquipsFirstSlotWhenNoneRecorded(t *testing.T) {
	tests := []struct {
		name     string
		equipped int
	}{
		{name: "no slot", equipped: component.NoSlot},
		{name: "past the end", equipped: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, tables, player := newPlayer(t)
			l := Loadout{
				ProfileID: uuid.New(),
				Slots:     []SlotRecord{{Weapon: "sniper", Ammo: 1}, {Weapon: "ar", Ammo: 2}},
				Equipped:  tt.equipped,
			}
			require.NoError(t, Restore(w, tables, player, l))

			e, weapon, ok := equipped(w, player)
			require.True(t, ok)
			assert.Equal(t, 1, weapon.Ammo)
			item, _ := ecs.Get(w, e, component.ItemComponent.Kind())
			assert.Equal(t, component.ItemEquipped, item.State)

			system.SlotKeyPressed(w, player, 1)
			_, weapon, _ = equipped(w, player)
			assert.Equal(t, 2, weapon.Ammo, "slot keys work after restore")
		})
	}
}

func TestRestoreEmptyLoadoutLeavesHandsEmpty(t *testing.T) {
	w, tables, player := newPlayer(t)
	require.NoError(t, Restore(w, tables, player, Loadout{ProfileID: uuid.New(), Equipped: component.NoSlot}))

	_, _, ok := equipped(w, player)
	assert.False(t, ok)
}

func TestRestoreRejectsUnknownWeapon(t *testing.T) {
	w, tables, player := newPlayer(t)
	l := Loadout{ProfileID: uuid.New(), Slots: []SlotRecord{{Weapon: "bazooka"}}}
	assert.ErrorIs(t, Restore(w, tables, player, l), prefabs.ErrUnknownRow)
}

func TestStores(t *testing.T) {
	mr := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	redisStore, err := NewRedisStore(ctx, "redis://"+mr.Addr(), 0, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisStore.Close() })

	stores := map[string]Store{
		"file":  NewFileStore(t.TempDir()),
		"redis": redisStore,
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			profile := uuid.New()
			_, err := store.Load(ctx, profile)
			require.ErrorIs(t, err, ErrNotFound)

			want := Loadout{
				ProfileID: profile,
				Health:    80,
				MaxHealth: 100,
				Ammo:      map[string]int{"9mm": 12},
				Slots:     []SlotRecord{{ItemID: uuid.New(), Weapon: "sniper", Ammo: 3}},
				Equipped:  0,
			}
			require.NoError(t, store.Save(ctx, want))

			got, err := store.Load(ctx, profile)
			require.NoError(t, err)
			assert.Equal(t, want.Slots, got.Slots)
			assert.Equal(t, want.Ammo, got.Ammo)
			assert.Equal(t, want.Health, got.Health)

			assert.ErrorIs(t, store.Save(ctx, Loadout{}), ErrNoProfile)
		})
	}
}

func equipped(w *ecs.World, player ecs.Entity) (ecs.Entity, *component.Weapon, bool) {
	inv, ok := ecs.Get(w, player, component.InventoryComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	e := ecs.EntityFromRef(inv.Equipped)
	weapon, ok := ecs.Get(w, e, component.WeaponComponent.Kind())
	return e, weapon, ok
}
