package system

import (
	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
)

func entityOf(ref uint64) ecs.Entity {
	return ecs.EntityFromRef(ref)
}

func locationOf(w *ecs.World, e ecs.Entity) common.Vec3 {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		return t.Location()
	}
	return common.Vec3{}
}

// playSound is skipped when no cue is configured.
func playSound(w *ecs.World, cue string, at common.Vec3) {
	if cue == "" {
		return
	}
	ecs.Publish(w, component.EventSound, component.Sound{Cue: cue, Location: at})
}

func spawnParticles(w *ecs.World, system string, at common.Vec3) {
	if system == "" {
		return
	}
	ecs.Publish(w, component.EventParticles, component.Particles{System: system, Location: at})
}
