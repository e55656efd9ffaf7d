package entity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
	"github.com/milk9111/wraith/ecs/system"
	"github.com/milk9111/wraith/prefabs"
)

// NewWeapon spawns the weapon row key as a pickup lying at at.
func NewWeapon(w *ecs.World, tables *prefabs.Tables, key string, at common.Vec3) (ecs.Entity, error) {
	spec, err := tables.Weapon(key)
	if err != nil {
		return 0, fmt.Errorf("weapon: %w", err)
	}
	rarity := tables.Rarities[spec.Rarity]

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		X:     at.X,
		Y:     at.Y,
		Z:     at.Z,
		Scale: 1,
	}); err != nil {
		return 0, fmt.Errorf("weapon: add transform: %w", err)
	}

	item := &component.Item{
		ID:             uuid.New(),
		Name:           spec.Name,
		Count:          1,
		Rarity:         component.ItemRarity(spec.Rarity),
		Slot:           component.NoSlot,
		LightColor:     rarity.LightColor.RGBA8(),
		DarkColor:      rarity.DarkColor.RGBA8(),
		IconBackground: rarity.IconBackground,
		Icon:           spec.Icon,
		AmmoIcon:       spec.AmmoIcon,
		PickupSound:    spec.PickupSound,
		EquipSound:     spec.EquipSound,
		NumberOfStars:  rarity.Stars,
	}
	item.SetActiveStars()
	if err := ecs.Add(w, entity, component.ItemComponent.Kind(), item); err != nil {
		return 0, fmt.Errorf("weapon: add item: %w", err)
	}

	if err := ecs.Add(w, entity, component.WeaponComponent.Kind(), &component.Weapon{
		Key:            key,
		Type:           component.WeaponType(spec.Type),
		AmmoType:       component.AmmoType(spec.AmmoType),
		Ammo:           spec.Ammo,
		MagazineSize:   spec.MagazineSize,
		ReloadSection:  spec.ReloadSection,
		ClipBone:       spec.ClipBone,
		Damage:         spec.Damage,
		HeadShotDamage: spec.HeadShotDamage,
		ThrowTime:      spec.ThrowTime,
		ThrowImpulse:   spec.ThrowImpulse,
	}); err != nil {
		return 0, fmt.Errorf("weapon: add weapon: %w", err)
	}

	if err := ecs.Add(w, entity, component.ItemInterpComponent.Kind(), &component.ItemInterp{
		Duration:   spec.InterpTime,
		ZCurve:     curve(tables, spec.ZCurve),
		ScaleCurve: curve(tables, spec.ScaleCurve),
	}); err != nil {
		return 0, fmt.Errorf("weapon: add item interp: %w", err)
	}

	if err := ecs.Add(w, entity, component.TraceShapeComponent.Kind(), &component.TraceShape{
		Bones: []component.TraceBone{{Name: "body", Radius: spec.TraceRadius}},
	}); err != nil {
		return 0, fmt.Errorf("weapon: add trace shape: %w", err)
	}

	volumes := []component.OverlapVolume{{
		Name:   component.VolumeItemArea,
		Radius: spec.AreaRadius,
		Inside: map[uint64]bool{},
	}}
	if err := ecs.Add(w, entity, component.OverlapComponent.Kind(), &volumes); err != nil {
		return 0, fmt.Errorf("weapon: add overlap volumes: %w", err)
	}

	system.SetItemState(w, entity, component.ItemPickup)
	return entity, nil
}
