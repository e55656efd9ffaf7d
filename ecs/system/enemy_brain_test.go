package system_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
	"github.com/milk9111/wraith/ecs/system"
	"github.com/milk9111/wraith/prefabs"
)

const woundedScript = `
choose := func(s, h, r) {
	if h < 0.5 {
		return s[0]
	}
	return s[len(s)-1]
}`

type fixedSelector string

func (f fixedSelector) Choose(*ecs.World, ecs.Entity, []string) string {
	return string(f)
}

func TestBrainChasesTarget(t *testing.T) {
	r := newRig(t)
	grux := r.spawnEnemy(t, common.V3(800, 0, 0), 0)
	bb, _ := ecs.Get(r.w, grux, component.BlackboardComponent.Kind())
	bb.Target = r.player.Ref()

	ecs.NewScheduler(r.sys.Brain).Step(r.w, frame)

	mv, _ := ecs.Get(r.w, grux, component.MovementComponent.Kind())
	assert.InDelta(t, -300, mv.VelX, 1e-9)
	assert.InDelta(t, 0, mv.VelY, 1e-9)
	assert.True(t, mv.Accelerating)
	tr, _ := ecs.Get(r.w, grux, component.TransformComponent.Kind())
	assert.InDelta(t, 180, tr.Yaw, 1e-9)
}

func TestBrainHalts(t *testing.T) {
	tests := []struct {
		name  string
		setup func(bb *component.Blackboard)
	}{
		{name: "no target", setup: func(bb *component.Blackboard) { bb.Target = 0 }},
		{name: "stunned", setup: func(bb *component.Blackboard) { bb.Stunned = true }},
		{name: "dead", setup: func(bb *component.Blackboard) { bb.Dead = true }},
		{name: "target dead", setup: func(bb *component.Blackboard) { bb.CharacterDead = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t)
			grux := r.spawnEnemy(t, common.V3(800, 0, 0), 0)
			bb, _ := ecs.Get(r.w, grux, component.BlackboardComponent.Kind())
			mv, _ := ecs.Get(r.w, grux, component.MovementComponent.Kind())
			bb.Target = r.player.Ref()
			mv.VelX = 123
			tt.setup(bb)

			ecs.NewScheduler(r.sys.Brain).Step(r.w, frame)

			assert.Zero(t, mv.VelX)
			assert.False(t, mv.Accelerating)
		})
	}
}

func TestBrainAttacksInRange(t *testing.T) {
	r := newRig(t)
	grux := r.spawnEnemy(t, common.V3(120, 0, 0), 180)
	r.sys.Brain.SetSelector("grux_attack.tengo", fixedSelector("AttackMeleeB"))

	r.sched.Step(r.w, frame)
	bb, _ := ecs.Get(r.w, grux, component.BlackboardComponent.Kind())
	require.True(t, bb.InAttackRange)
	require.Equal(t, r.player.Ref(), bb.Target)

	r.sched.Step(r.w, frame)
	m, ok := ecs.Get(r.w, grux, component.MontageComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, system.MontageEnemyAttack, m.Name)
	assert.Equal(t, "AttackMeleeB", m.Section)
	assert.False(t, enemyOf(t, r, grux).CanAttack)
	assert.False(t, bb.CanAttack)

	r.runAll(1.05)
	assert.Equal(t, "AttackMeleeB", m.Section)
	assert.Less(t, healthOf(t, r, r.player).Current, 100.0)
}

func TestLoadSelectorsCompilesScripts(t *testing.T) {
	r := newRig(t)
	require.NoError(t, r.sys.Brain.LoadSelectors(r.tables))

	grux := r.spawnEnemy(t, common.V3(2000, 0, 0), 0)
	enemy := enemyOf(t, r, grux)
	for range 20 {
		section := system.GetAttackSectionName(r.w, grux, nil)
		assert.Contains(t, enemy.AttackSections, section)
	}
}

func TestReloadRecompilesSelectors(t *testing.T) {
	r := newRig(t)
	r.sys.Brain.SetSelector("grux_attack.tengo", fixedSelector("AttackMeleeB"))

	tables, err := prefabs.LoadTables()
	require.NoError(t, err)
	require.NoError(t, r.sys.Reload(tables))

	grux := r.spawnEnemy(t, common.V3(120, 0, 0), 180)
	seen := map[string]bool{}
	for range 40 {
		enemyOf(t, r, grux).CanAttack = true
		bb, _ := ecs.Get(r.w, grux, component.BlackboardComponent.Kind())
		bb.CanAttack, bb.InAttackRange, bb.Target = true, true, r.player.Ref()
		ecs.NewScheduler(r.sys.Brain).Step(r.w, frame)
		m, _ := ecs.Get(r.w, grux, component.MontageComponent.Kind())
		seen[m.Section] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestScriptAttackSelector(t *testing.T) {
	sections := []string{"Attack01", "AttackMeleeA", "AttackMeleeCDash"}

	tests := []struct {
		name   string
		src    string
		health float64
		want   string
	}{
		{
			name:   "healthy",
			src:    woundedScript,
			health: 100,
			want:   "AttackMeleeCDash",
		},
		{
			name:   "wounded",
			src:    woundedScript,
			health: 20,
			want:   "Attack01",
		},
		{
			name:   "reads roll",
			src:    `
choose := func(s, h, r) {
	if r >= 0 && r < 1 {
		return s[1]
	}
	return ""
}`,
			health: 100,
			want:   "AttackMeleeA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t)
			grux := r.spawnEnemy(t, common.V3(2000, 0, 0), 0)
			healthOf(t, r, grux).Current = tt.health

			sel, err := system.NewScriptAttackSelector(tt.name, []byte(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, sel.Choose(r.w, grux, sections))
		})
	}
}

func TestScriptAttackSelectorFallsBack(t *testing.T) {
	sections := []string{"Attack01", "AttackMeleeA"}

	tests := []struct {
		name string
		src  string
	}{
		{name: "unknown section", src: `choose := func(s, h, r) { return "Backflip" }`},
		{name: "runtime error", src: `choose := func(s, h, r) { return s[10] + 1 }`},
		{name: "not a string", src: `choose := func(s, h, r) { return 3 }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t)
			grux := r.spawnEnemy(t, common.V3(2000, 0, 0), 0)

			sel, err := system.NewScriptAttackSelector(tt.name, []byte(tt.src))
			require.NoError(t, err)
			got := sel.Choose(r.w, grux, sections)
			assert.True(t, slices.Contains(sections, got), got)
		})
	}
}

func TestScriptAttackSelectorCompileError(t *testing.T) {
	_, err := system.NewScriptAttackSelector("broken", []byte(`choose := func(`))
	assert.ErrorContains(t, err, "broken")
}

func TestGetAttackSectionNameRejectsUnknown(t *testing.T) {
	r := newRig(t)
	grux := r.spawnEnemy(t, common.V3(2000, 0, 0), 0)
	enemy := enemyOf(t, r, grux)

	got := system.GetAttackSectionName(r.w, grux, fixedSelector("Backflip"))
	assert.Contains(t, enemy.AttackSections, got)

	got = system.GetAttackSectionName(r.w, grux, fixedSelector("AttackMeleeC"))
	assert.Equal(t, "AttackMeleeC", got)
}
