package save

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
	"github.com/milk9111/wraith/ecs/entity"
	"github.com/milk9111/wraith/ecs/system"
	"github.com/milk9111/wraith/prefabs"
)

var (
	ErrNotFound  = errors.New("save: loadout not found")
	ErrBusy      = errors.New("save: character is busy")
	ErrNoProfile = errors.New("save: loadout has no profile id")
)

// Loadout is a checkpoint of the player's inventory, ammo and health.
type Loadout struct {
	ProfileID uuid.UUID      `yaml:"profile_id"`
	SavedAt   time.Time      `yaml:"saved_at"`
	Health    float64        `yaml:"health"`
	MaxHealth float64        `yaml:"max_health"`
	Ammo      map[string]int `yaml:"ammo"`
	Slots     []SlotRecord   `yaml:"slots"`
	Equipped  int            `yaml:"equipped"`
}

type SlotRecord struct {
	ItemID uuid.UUID `yaml:"item_id"`
	Weapon string    `yaml:"weapon"`
	Ammo   int       `yaml:"ammo"`
}

// Capture snapshots player's loadout under profile.
func Capture(w *ecs.World, player ecs.Entity, profile uuid.UUID) (Loadout, error) {
	inv, ok := ecs.Get(w, player, component.InventoryComponent.Kind())
	if !ok {
		return Loadout{}, fmt.Errorf("save: capture %s: no inventory", player)
	}

	l := Loadout{
		ProfileID: profile,
		SavedAt:   time.Now().UTC(),
		Ammo:      map[string]int{},
		Equipped:  component.NoSlot,
	}
	if h, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
		l.Health = h.Current
		l.MaxHealth = h.Max
	}
	if stock, ok := ecs.Get(w, player, component.AmmoStockComponent.Kind()); ok {
		for t, n := range stock.Carried {
			l.Ammo[string(t)] = n
		}
	}
	for i, ref := range inv.Slots {
		item := ecs.EntityFromRef(ref)
		weapon, ok := ecs.Get(w, item, component.WeaponComponent.Kind())
		if !ok {
			return Loadout{}, fmt.Errorf("save: capture slot %d: not a weapon", i)
		}
		rec := SlotRecord{Weapon: weapon.Key, Ammo: weapon.Ammo}
		if it, ok := ecs.Get(w, item, component.ItemComponent.Kind()); ok {
			rec.ItemID = it.ID
		}
		l.Slots = append(l.Slots, rec)
	}
	if inv.Equipped != 0 {
		l.Equipped = inv.IndexOf(inv.Equipped)
	}
	return l, nil
}

// Restore replaces player's inventory, ammo and health with l. The
// character must be idle.
func Restore(w *ecs.World, tables *prefabs.Tables, player ecs.Entity, l Loadout) error {
	inv, ok := ecs.Get(w, player, component.InventoryComponent.Kind())
	if !ok {
		return fmt.Errorf("save: restore %s: no inventory", player)
	}
	if c, ok := ecs.Get(w, player, component.CombatComponent.Kind()); ok && c.State != component.CombatUnoccupied {
		return fmt.Errorf("save: restore %s in state %s: %w", player, c.State, ErrBusy)
	}
	if len(l.Slots) > inv.Capacity {
		return fmt.Errorf("save: restore: %d slots exceed capacity %d", len(l.Slots), inv.Capacity)
	}
	for _, rec := range l.Slots {
		if _, err := tables.Weapon(rec.Weapon); err != nil {
			return fmt.Errorf("save: restore: %w", err)
		}
	}

	for _, ref := range inv.Slots {
		ecs.DestroyEntity(w, ecs.EntityFromRef(ref))
	}
	inv.Slots = nil
	inv.Equipped = 0
	inv.HighlightedSlot = component.NoSlot

	at := component.Transform{}
	if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		at = *t
	}
	for i, rec := range l.Slots {
		weapon, err := entity.NewWeapon(w, tables, rec.Weapon, at.Location())
		if err != nil {
			return fmt.Errorf("save: restore slot %d: %w", i, err)
		}
		if wc, ok := ecs.Get(w, weapon, component.WeaponComponent.Kind()); ok {
			wc.Ammo = min(max(rec.Ammo, 0), wc.MagazineSize)
		}
		if it, ok := ecs.Get(w, weapon, component.ItemComponent.Kind()); ok {
			if rec.ItemID != uuid.Nil {
				it.ID = rec.ItemID
			}
			it.Slot = i
			it.Owner = player.Ref()
		}
		inv.Slots = append(inv.Slots, weapon.Ref())
		system.SetItemState(w, weapon, component.ItemPickedUp)
	}
	if len(inv.Slots) > 0 {
		// a loadout with weapons never leaves the hands empty
		equip := l.Equipped
		if equip < 0 || equip >= len(inv.Slots) {
			equip = 0
		}
		system.EquipWeapon(w, player, ecs.EntityFromRef(inv.Slots[equip]))
	}

	if stock, ok := ecs.Get(w, player, component.AmmoStockComponent.Kind()); ok {
		stock.Carried = map[component.AmmoType]int{}
		for t, n := range l.Ammo {
			stock.Carried[component.AmmoType(t)] = n
		}
	}
	if h, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok && l.MaxHealth > 0 {
		h.Max = l.MaxHealth
		h.Current = min(max(l.Health, 0), l.MaxHealth)
	}
	return nil
}
