package entity

import (
	"fmt"

	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
	"github.com/milk9111/wraith/prefabs"
)

// NewTeleportedProp spawns a prop that vanishes when the whip hits it.
func NewTeleportedProp(w *ecs.World, tables *prefabs.Tables, key string, at common.Vec3) (ecs.Entity, error) {
	spec, err := tables.Prop(key)
	if err != nil {
		return 0, fmt.Errorf("prop: %w", err)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		X:     at.X,
		Y:     at.Y,
		Z:     at.Z,
		Scale: 1,
	}); err != nil {
		return 0, fmt.Errorf("prop: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.TeleportedTagComponent.Kind(), &component.TeleportedTag{}); err != nil {
		return 0, fmt.Errorf("prop: add teleported tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.WhipHittableComponent.Kind(), &component.WhipHittable{
		TeleportSound:     spec.TeleportSound,
		TeleportParticles: spec.TeleportParticles,
	}); err != nil {
		return 0, fmt.Errorf("prop: add whip hittable: %w", err)
	}

	if err := ecs.Add(w, entity, component.TraceShapeComponent.Kind(), &component.TraceShape{
		Bones:   traceBones(spec.Bones),
		Enabled: true,
	}); err != nil {
		return 0, fmt.Errorf("prop: add trace shape: %w", err)
	}

	return entity, nil
}
