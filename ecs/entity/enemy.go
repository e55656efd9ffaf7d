package entity

import (
	"fmt"

	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
	"github.com/milk9111/wraith/prefabs"
)

// NewEnemy spawns the enemy row key at at, facing yaw.
func NewEnemy(w *ecs.World, tables *prefabs.Tables, key string, at common.Vec3, yaw float64) (ecs.Entity, error) {
	spec, err := tables.Enemy(key)
	if err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		X:     at.X,
		Y:     at.Y,
		Z:     at.Z,
		Yaw:   yaw,
		Scale: 1,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{
		Current: spec.Health,
		Max:     spec.Health,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add health: %w", err)
	}

	volumes := overlapVolumes(spec.Volumes)
	enemy := &component.Enemy{
		Name:                 spec.Name,
		StunChance:           spec.StunChance,
		HitReactMin:          spec.HitReactMin,
		HitReactMax:          spec.HitReactMax,
		HealthBarDisplayTime: spec.HealthBarDisplayTime,
		DeathTime:            spec.DeathTime,
		BaseDamage:           spec.BaseDamage,
		AttackWaitTime:       spec.AttackWaitTime,
		HitNumberLifetime:    spec.HitNumberLifetime,
		HeadBone:             spec.HeadBone,
		AttackSections:       append([]string(nil), spec.AttackSections...),
		AttackScript:         spec.AttackScript,
		ImpactSound:          spec.ImpactSound,
		ImpactParticles:      spec.ImpactParticles,
		BloodParticles:       spec.BloodParticles,
		CanHitReact:          true,
		CanAttack:            true,
	}
	for _, v := range volumes {
		switch v.Name {
		case component.VolumeLeftWeapon:
			enemy.LeftWeaponSocket = v.Offset
		case component.VolumeRightWeapon:
			enemy.RightWeaponSocket = v.Offset
		case component.VolumeLeftFoot:
			enemy.LeftFootSocket = v.Offset
		case component.VolumeRightFoot:
			enemy.RightFootSocket = v.Offset
		}
	}
	if err := ecs.Add(w, entity, component.EnemyComponent.Kind(), enemy); err != nil {
		return 0, fmt.Errorf("enemy: add enemy: %w", err)
	}

	// patrol points are offsets from the spawn location
	if err := ecs.Add(w, entity, component.BlackboardComponent.Kind(), &component.Blackboard{
		CanAttack:    true,
		PatrolPoint:  at.Add(vec3(spec.PatrolPoint)),
		PatrolPoint2: at.Add(vec3(spec.PatrolPoint2)),
	}); err != nil {
		return 0, fmt.Errorf("enemy: add blackboard: %w", err)
	}

	if err := ecs.Add(w, entity, component.WhipHittableComponent.Kind(), &component.WhipHittable{
		ImpactSound:     spec.ImpactSound,
		ImpactParticles: spec.ImpactParticles,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add whip hittable: %w", err)
	}

	if err := ecs.Add(w, entity, component.TraceShapeComponent.Kind(), &component.TraceShape{
		Bones:   traceBones(spec.Bones),
		Enabled: true,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add trace shape: %w", err)
	}

	if err := ecs.Add(w, entity, component.OverlapComponent.Kind(), &volumes); err != nil {
		return 0, fmt.Errorf("enemy: add overlap volumes: %w", err)
	}

	if err := ecs.Add(w, entity, component.ColliderComponent.Kind(), &component.Collider{
		Radius:     spec.ColliderRadius,
		HalfHeight: spec.ColliderHalfHeight,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add collider: %w", err)
	}

	if err := ecs.Add(w, entity, component.MovementComponent.Kind(), &component.Movement{}); err != nil {
		return 0, fmt.Errorf("enemy: add movement: %w", err)
	}

	if err := ecs.Add(w, entity, component.AnimPropertiesComponent.Kind(), &component.AnimProperties{}); err != nil {
		return 0, fmt.Errorf("enemy: add anim properties: %w", err)
	}

	return entity, nil
}
