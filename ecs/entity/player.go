package entity

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
	"github.com/milk9111/wraith/ecs/system"
	"github.com/milk9111/wraith/prefabs"
)

// NewPlayer spawns the player at at, hands it the starting weapon in slot 0
// and fills its ammo reserve.
func NewPlayer(w *ecs.World, tables *prefabs.Tables, at common.Vec3) (ecs.Entity, error) {
	spec := tables.Player

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		X:     at.X,
		Y:     at.Y,
		Z:     at.Z,
		Scale: 1,
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{
		AutomaticFireRate:     spec.AutomaticFireRate,
		ShootTimeDuration:     spec.ShootTimeDuration,
		StunChance:            spec.StunChance,
		CameraInterpDistance:  spec.CameraInterpDistance,
		CameraInterpElevation: spec.CameraInterpElevation,
		TraceDistance:         spec.TraceDistance,
		MuzzleOffset:          vec3(spec.MuzzleOffset),
		FireSound:             spec.FireSound,
		BeamParticles:         spec.BeamParticles,
		ImpactParticles:       spec.ImpactParticles,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}

	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{SlotKey: component.NoSlotKey}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{
		Current: spec.Health,
		Max:     spec.Health,
	}); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.MovementComponent.Kind(), &component.Movement{}); err != nil {
		return 0, fmt.Errorf("player: add movement: %w", err)
	}

	if err := ecs.Add(w, entity, component.CombatComponent.Kind(), &component.Combat{}); err != nil {
		return 0, fmt.Errorf("player: add combat: %w", err)
	}

	if err := ecs.Add(w, entity, component.CameraComponent.Kind(), &component.Camera{
		DefaultFOV:      spec.DefaultFOV,
		ZoomedFOV:       spec.ZoomedFOV,
		CurrentFOV:      spec.DefaultFOV,
		ZoomInterpSpeed: spec.ZoomInterpSpeed,
		BaseTurnRate:    45,
		BaseLookUpRate:  45,
	}); err != nil {
		return 0, fmt.Errorf("player: add camera: %w", err)
	}

	if err := ecs.Add(w, entity, component.CrosshairComponent.Kind(), &component.Crosshair{}); err != nil {
		return 0, fmt.Errorf("player: add crosshair: %w", err)
	}

	if err := ecs.Add(w, entity, component.AnimPropertiesComponent.Kind(), &component.AnimProperties{}); err != nil {
		return 0, fmt.Errorf("player: add anim properties: %w", err)
	}

	if err := ecs.Add(w, entity, component.ColliderComponent.Kind(), &component.Collider{
		Radius:     spec.ColliderRadius,
		HalfHeight: spec.ColliderHalfHeight,
	}); err != nil {
		return 0, fmt.Errorf("player: add collider: %w", err)
	}

	if err := ecs.Add(w, entity, component.TraceShapeComponent.Kind(), &component.TraceShape{
		Bones:   traceBones(spec.Bones),
		Enabled: true,
	}); err != nil {
		return 0, fmt.Errorf("player: add trace shape: %w", err)
	}

	stock := &component.AmmoStock{Carried: map[component.AmmoType]int{}}
	for ammoType, count := range spec.StartingAmmo {
		stock.Carried[component.AmmoType(ammoType)] = count
	}
	if err := ecs.Add(w, entity, component.AmmoStockComponent.Kind(), stock); err != nil {
		return 0, fmt.Errorf("player: add ammo stock: %w", err)
	}

	if err := ecs.Add(w, entity, component.InventoryComponent.Kind(), &component.Inventory{
		Capacity:        spec.InventoryCapacity,
		HighlightedSlot: component.NoSlot,
	}); err != nil {
		return 0, fmt.Errorf("player: add inventory: %w", err)
	}

	if spec.StartingWeapon != "" {
		if err := GiveStartingWeapon(w, tables, entity, spec.StartingWeapon); err != nil {
			return 0, err
		}
	}

	slog.Info("player: spawned", "entity", entity, "at", at.String())
	return entity, nil
}

// GiveStartingWeapon spawns key, files it in the next slot and equips it.
func GiveStartingWeapon(w *ecs.World, tables *prefabs.Tables, player ecs.Entity, key string) error {
	weapon, err := NewWeapon(w, tables, key, locationOf(w, player))
	if err != nil {
		return fmt.Errorf("player: starting weapon: %w", err)
	}
	inv, ok := ecs.Get(w, player, component.InventoryComponent.Kind())
	if !ok {
		return fmt.Errorf("player: starting weapon: no inventory")
	}
	inv.Slots = append(inv.Slots, weapon.Ref())
	if item, ok := ecs.Get(w, weapon, component.ItemComponent.Kind()); ok {
		item.Slot = len(inv.Slots) - 1
	}
	system.EquipWeapon(w, player, weapon)
	return nil
}

func locationOf(w *ecs.World, e ecs.Entity) common.Vec3 {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		return t.Location()
	}
	return common.Vec3{}
}
