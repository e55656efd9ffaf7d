package system

import (
	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
)

const defaultTraceDistance = 50000.0

// TraceUnderCrosshairs traces from the camera along its forward vector. The
// returned location is the hit point, or the trace end when nothing blocks.
func TraceUnderCrosshairs(w *ecs.World, e ecs.Entity) (TraceHit, common.Vec3, bool) {
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		return TraceHit{}, common.Vec3{}, false
	}
	distance := defaultTraceDistance
	if player, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok && player.TraceDistance > 0 {
		distance = player.TraceDistance
	}
	start := cam.Location
	end := start.Add(cam.Forward().Scale(distance))

	hit, ok := LineTrace(w, start, end, traceIgnores(w, e)...)
	if !ok {
		return TraceHit{}, end, false
	}
	return hit, hit.Location, true
}

// traceIgnores is the character and the weapon in its hands.
func traceIgnores(w *ecs.World, e ecs.Entity) []ecs.Entity {
	ignore := []ecs.Entity{e}
	if weapon, _, ok := EquippedWeapon(w, e); ok {
		ignore = append(ignore, weapon)
	}
	return ignore
}

// TraceForItems updates which item the crosshair rests on while the
// character stands in at least one pickup area.
func TraceForItems(w *ecs.World, e ecs.Entity) {
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	inv, ok := ecs.Get(w, e, component.InventoryComponent.Kind())
	if !ok {
		return
	}

	if !player.ShouldTraceForItems {
		if player.TraceHitItemLastFrame != 0 {
			hidePickupWidget(w, entityOf(player.TraceHitItemLastFrame))
		}
		return
	}

	// a miss clears the target so select cannot grab an item off-screen
	hit, _, _ := TraceUnderCrosshairs(w, e)

	var hitItem ecs.Entity
	if ecs.Has(w, hit.Entity, component.ItemComponent.Kind()) {
		hitItem = hit.Entity
	}
	if ecs.Has(w, hitItem, component.WeaponComponent.Kind()) {
		if inv.HighlightedSlot == component.NoSlot {
			HighlightInventorySlot(w, e)
		}
	} else if inv.HighlightedSlot != component.NoSlot {
		UnHighlightInventorySlot(w, e)
	}

	if it, ok := ecs.Get(w, hitItem, component.ItemComponent.Kind()); ok {
		if it.State == component.ItemEquipInterping {
			hitItem = ecs.NoEntity
		} else {
			setPickupWidget(w, hitItem, it, true)
			it.CharacterInventoryFull = inv.Full()
		}
	}
	player.TraceHitItem = hitItem.Ref()

	if last := player.TraceHitItemLastFrame; last != 0 && last != player.TraceHitItem {
		hidePickupWidget(w, entityOf(last))
	}
	player.TraceHitItemLastFrame = player.TraceHitItem
}

func hidePickupWidget(w *ecs.World, item ecs.Entity) {
	if it, ok := ecs.Get(w, item, component.ItemComponent.Kind()); ok {
		setPickupWidget(w, item, it, false)
	}
}

// ItemTraceSystem runs TraceForItems for every player each frame.
type ItemTraceSystem struct{}

func NewItemTraceSystem() *ItemTraceSystem {
	return &ItemTraceSystem{}
}

func (s *ItemTraceSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, _ *component.Player) {
		TraceForItems(w, e)
	})
}
