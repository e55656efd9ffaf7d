package system

import (
	"log/slog"

	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
	"github.com/milk9111/wraith/prefabs"
)

const (
	enemyMoveSpeed    = 300.0
	enemyAttackRate   = 1.0
	enemyStopDistance = 1.0
)

// EnemyBrainSystem is a small stand-in for a behavior tree. It reads the
// blackboard, chases the target until it is in attack range and swings when
// allowed to.
type EnemyBrainSystem struct {
	selectors map[string]AttackSelector
}

func NewEnemyBrainSystem() *EnemyBrainSystem {
	return &EnemyBrainSystem{selectors: map[string]AttackSelector{}}
}

// SetSelector installs the selector used by enemies whose attack script is
// named script.
func (s *EnemyBrainSystem) SetSelector(script string, selector AttackSelector) {
	s.selectors[script] = selector
}

// LoadSelectors compiles every attack script the enemy table references.
// Scripts that fail to compile fall back to uniform picks.
func (s *EnemyBrainSystem) LoadSelectors(tables *prefabs.Tables) error {
	var firstErr error
	for _, key := range tables.EnemyKeys() {
		spec, _ := tables.Enemy(key)
		if spec.AttackScript == "" {
			continue
		}
		if _, ok := s.selectors[spec.AttackScript]; ok {
			continue
		}
		src, err := prefabs.LoadScript(spec.AttackScript)
		if err == nil {
			var sel *ScriptAttackSelector
			sel, err = NewScriptAttackSelector(spec.AttackScript, src)
			if err == nil {
				s.selectors[spec.AttackScript] = sel
				continue
			}
		}
		slog.Warn("enemy: attack script unavailable", "script", spec.AttackScript, "err", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *EnemyBrainSystem) selectorFor(enemy *component.Enemy) AttackSelector {
	if sel, ok := s.selectors[enemy.AttackScript]; ok {
		return sel
	}
	return RandomAttackSelector{}
}

func (s *EnemyBrainSystem) Update(w *ecs.World) {
	var enemies []ecs.Entity
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.BlackboardComponent.Kind(), func(e ecs.Entity, _ *component.Enemy, _ *component.Blackboard) {
		enemies = append(enemies, e)
	})
	for _, e := range enemies {
		s.think(w, e)
	}
}

func (s *EnemyBrainSystem) think(w *ecs.World, e ecs.Entity) {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok {
		return
	}
	bb := blackboardOf(w, e)
	mv, _ := ecs.Get(w, e, component.MovementComponent.Kind())
	halt := func() {
		if mv != nil {
			mv.VelX, mv.VelY = 0, 0
			mv.Accelerating = false
		}
	}

	if enemy.Dying || bb == nil || bb.Dead || bb.CharacterDead || bb.Stunned || bb.Target == 0 {
		halt()
		return
	}
	target := entityOf(bb.Target)
	if !ecs.IsAlive(w, target) {
		bb.Target = 0
		halt()
		return
	}

	if bb.InAttackRange {
		halt()
		if bb.CanAttack {
			if section := GetAttackSectionName(w, e, s.selectorFor(enemy)); section != "" {
				PlayAttackMontage(w, e, section, enemyAttackRate)
			}
		}
		return
	}

	if mv == nil {
		return
	}
	to := locationOf(w, target).Sub(locationOf(w, e))
	to.Z = 0
	if to.Len() < enemyStopDistance {
		halt()
		return
	}
	dir := to.Normalize()
	mv.VelX = dir.X * enemyMoveSpeed
	mv.VelY = dir.Y * enemyMoveSpeed
	mv.Accelerating = true
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.Yaw = common.YawOf(dir)
	}
}
