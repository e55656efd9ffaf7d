package system

import (
	"log/slog"

	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
)

func itemSlot(w *ecs.World, item ecs.Entity) int {
	if it, ok := ecs.Get(w, item, component.ItemComponent.Kind()); ok {
		return it.Slot
	}
	return component.NoSlot
}

// EquipWeapon puts weapon in the character's hands and tells the inventory
// bar which slot it came from.
func EquipWeapon(w *ecs.World, e ecs.Entity, weapon ecs.Entity) {
	inv, ok := ecs.Get(w, e, component.InventoryComponent.Kind())
	if !ok || !ecs.Has(w, weapon, component.WeaponComponent.Kind()) {
		return
	}

	current := component.NoSlot
	if inv.Equipped != 0 {
		current = itemSlot(w, entityOf(inv.Equipped))
	}
	ecs.Publish(w, component.EventEquipItem, component.EquipItem{
		Character:   e.Ref(),
		CurrentSlot: current,
		NewSlot:     itemSlot(w, weapon),
	})

	inv.Equipped = weapon.Ref()
	if it, ok := ecs.Get(w, weapon, component.ItemComponent.Kind()); ok {
		it.Owner = e.Ref()
	}
	SetItemState(w, weapon, component.ItemEquipped)
}

// DropWeapon lets go of the equipped weapon and throws it clear. The
// inventory slot is left for the caller to reassign.
func DropWeapon(w *ecs.World, e ecs.Entity) {
	inv, ok := ecs.Get(w, e, component.InventoryComponent.Kind())
	if !ok || inv.Equipped == 0 {
		return
	}
	weapon := entityOf(inv.Equipped)
	if it, ok := ecs.Get(w, weapon, component.ItemComponent.Kind()); ok {
		it.Owner = 0
	}
	SetItemState(w, weapon, component.ItemFalling)
	ThrowWeapon(w, weapon)
}

// SwapWeapon replaces the equipped weapon with newWeapon in the same slot.
func SwapWeapon(w *ecs.World, e ecs.Entity, newWeapon ecs.Entity) {
	inv, ok := ecs.Get(w, e, component.InventoryComponent.Kind())
	if !ok || inv.Equipped == 0 {
		return
	}
	slot := itemSlot(w, entityOf(inv.Equipped))
	if slot >= 0 && slot < len(inv.Slots) {
		inv.Slots[slot] = newWeapon.Ref()
		if it, ok := ecs.Get(w, newWeapon, component.ItemComponent.Kind()); ok {
			it.Slot = slot
		}
	}

	DropWeapon(w, e)
	EquipWeapon(w, e, newWeapon)
	if player, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		player.TraceHitItem = 0
		player.TraceHitItemLastFrame = 0
	}
	slog.Info("inventory: swapped weapon", "entity", e, "slot", slot, "weapon", newWeapon)
}

// GetPickupItem files a finished pickup into the inventory, swapping with
// the equipped weapon when every slot is taken. With a full inventory and
// empty hands the pickup replaces slot 0.
func GetPickupItem(w *ecs.World, e ecs.Entity, item ecs.Entity) {
	it, ok := ecs.Get(w, item, component.ItemComponent.Kind())
	if !ok {
		return
	}
	playSound(w, it.EquipSound, locationOf(w, e))

	if !ecs.Has(w, item, component.WeaponComponent.Kind()) {
		return
	}
	inv, ok := ecs.Get(w, e, component.InventoryComponent.Kind())
	if !ok {
		return
	}
	if len(inv.Slots) < inv.Capacity {
		it.Slot = len(inv.Slots)
		it.Owner = e.Ref()
		inv.Slots = append(inv.Slots, item.Ref())
		SetItemState(w, item, component.ItemPickedUp)
		// empty hands take the new weapon straight away
		if inv.Equipped == 0 {
			EquipWeapon(w, e, item)
		}
		return
	}
	if inv.Equipped == 0 || !ecs.IsAlive(w, entityOf(inv.Equipped)) {
		if len(inv.Slots) == 0 {
			SetItemState(w, item, component.ItemPickup)
			return
		}
		inv.Equipped = inv.Slots[0]
	}
	SwapWeapon(w, e, item)
}

// ExchangeInventoryItems switches to the weapon in slot next.
func ExchangeInventoryItems(w *ecs.World, e ecs.Entity, current, next int) {
	c, ok := ecs.Get(w, e, component.CombatComponent.Kind())
	if !ok {
		return
	}
	inv, ok := ecs.Get(w, e, component.InventoryComponent.Kind())
	if !ok {
		return
	}
	if current == next || next < 0 || next >= len(inv.Slots) || c.State != component.CombatUnoccupied {
		slog.Debug("inventory: exchange ignored", "entity", e, "from", current, "to", next, "state", c.State)
		return
	}
	newWeapon := entityOf(inv.Slots[next])
	if !ecs.Has(w, newWeapon, component.WeaponComponent.Kind()) {
		return
	}
	old := entityOf(inv.Equipped)

	EquipWeapon(w, e, newWeapon)
	if ecs.IsAlive(w, old) {
		SetItemState(w, old, component.ItemPickedUp)
	}
	SetItemState(w, newWeapon, component.ItemEquipped)

	setCombatState(w, e, c, component.CombatEquipping)
	PlayMontage(w, e, MontageEquip, SectionEquip, 1)
}

// SlotKeyPressed handles the F and 1-5 hotkeys, which select slots 0-5.
func SlotKeyPressed(w *ecs.World, e ecs.Entity, slot int) {
	inv, ok := ecs.Get(w, e, component.InventoryComponent.Kind())
	if !ok || inv.Equipped == 0 {
		return
	}
	current := itemSlot(w, entityOf(inv.Equipped))
	if current == slot {
		return
	}
	ExchangeInventoryItems(w, e, current, slot)
}

// GetEmptyInventorySlot returns the first free slot or NoSlot when full.
func GetEmptyInventorySlot(w *ecs.World, e ecs.Entity) int {
	inv, ok := ecs.Get(w, e, component.InventoryComponent.Kind())
	if !ok {
		return component.NoSlot
	}
	for i, ref := range inv.Slots {
		if ref == 0 || !ecs.IsAlive(w, entityOf(ref)) {
			return i
		}
	}
	if len(inv.Slots) < inv.Capacity {
		return len(inv.Slots)
	}
	return component.NoSlot
}

func HighlightInventorySlot(w *ecs.World, e ecs.Entity) {
	inv, ok := ecs.Get(w, e, component.InventoryComponent.Kind())
	if !ok {
		return
	}
	slot := GetEmptyInventorySlot(w, e)
	ecs.Publish(w, component.EventHighlightIcon, component.HighlightIcon{Character: e.Ref(), Slot: slot, Start: true})
	inv.HighlightedSlot = slot
}

func UnHighlightInventorySlot(w *ecs.World, e ecs.Entity) {
	inv, ok := ecs.Get(w, e, component.InventoryComponent.Kind())
	if !ok {
		return
	}
	ecs.Publish(w, component.EventHighlightIcon, component.HighlightIcon{Character: e.Ref(), Slot: inv.HighlightedSlot, Start: false})
	inv.HighlightedSlot = component.NoSlot
}

// IncrementOverlappedItemCount tracks how many pickup areas the character
// stands in; item tracing runs only while it is positive.
func IncrementOverlappedItemCount(w *ecs.World, e ecs.Entity, amount int) {
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	if player.OverlappedItemCount+amount <= 0 {
		player.OverlappedItemCount = 0
		player.ShouldTraceForItems = false
		return
	}
	player.OverlappedItemCount += amount
	player.ShouldTraceForItems = true
}

// SelectButtonPressed starts picking up the item under the crosshair.
func SelectButtonPressed(w *ecs.World, e ecs.Entity) {
	c, ok := ecs.Get(w, e, component.CombatComponent.Kind())
	if !ok || c.State != component.CombatUnoccupied {
		return
	}
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || player.TraceHitItem == 0 {
		return
	}
	item := entityOf(player.TraceHitItem)
	player.TraceHitItem = 0
	if !ecs.IsAlive(w, item) {
		return
	}
	StartItemCurve(w, item, e)
	if it, ok := ecs.Get(w, item, component.ItemComponent.Kind()); ok {
		playSound(w, it.PickupSound, locationOf(w, e))
	}
}
