package system

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
)

// AttackSelector picks which attack section an enemy swings next.
type AttackSelector interface {
	Choose(w *ecs.World, e ecs.Entity, sections []string) string
}

// RandomAttackSelector picks uniformly.
type RandomAttackSelector struct{}

func (RandomAttackSelector) Choose(w *ecs.World, _ ecs.Entity, sections []string) string {
	if len(sections) == 0 {
		return ""
	}
	return sections[w.Rand().IntN(len(sections))]
}

const attackDispatchScript = `
__result = choose(__sections, __health, __roll)
`

// ScriptAttackSelector asks a tengo script's `choose(sections, health,
// roll)` for the section. Script errors fall back to a uniform pick.
type ScriptAttackSelector struct {
	name     string
	compiled *tengo.Compiled
}

func NewScriptAttackSelector(name string, src []byte) (*ScriptAttackSelector, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + attackDispatchScript))
	_ = script.Add("__sections", []any{})
	_ = script.Add("__health", 1.0)
	_ = script.Add("__roll", 0.0)
	_ = script.Add("__result", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("attack script %s: %w", name, err)
	}
	return &ScriptAttackSelector{name: name, compiled: compiled}, nil
}

func (s *ScriptAttackSelector) Choose(w *ecs.World, e ecs.Entity, sections []string) string {
	if s == nil || s.compiled == nil {
		return RandomAttackSelector{}.Choose(w, e, sections)
	}
	section, err := s.run(w, e, sections)
	if err != nil {
		slog.Warn("attack: script error", "entity", e, "script", s.name, "err", err)
		return RandomAttackSelector{}.Choose(w, e, sections)
	}
	if !slices.Contains(sections, section) {
		slog.Warn("attack: script chose unknown section", "entity", e, "script", s.name, "section", section)
		return RandomAttackSelector{}.Choose(w, e, sections)
	}
	return section
}

func (s *ScriptAttackSelector) run(w *ecs.World, e ecs.Entity, sections []string) (string, error) {
	list := make([]any, len(sections))
	for i, sec := range sections {
		list[i] = sec
	}
	health := 1.0
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		health = h.Fraction()
	}
	if err := s.compiled.Set("__sections", list); err != nil {
		return "", err
	}
	if err := s.compiled.Set("__health", health); err != nil {
		return "", err
	}
	if err := s.compiled.Set("__roll", w.Rand().Float64()); err != nil {
		return "", err
	}
	if err := s.compiled.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(s.compiled.Get("__result").String()), nil
}
