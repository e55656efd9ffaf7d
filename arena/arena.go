package arena

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
	"github.com/milk9111/wraith/ecs/entity"
	"github.com/milk9111/wraith/ecs/system"
	"github.com/milk9111/wraith/prefabs"
)

const (
	DefaultFile = "arena.yaml"
	feedSize    = 12
	beamLife    = 0.15
)

// Beam is a whip trail still on screen.
type Beam struct {
	From common.Vec3
	To   common.Vec3
	TTL  float64
}

// Arena is a populated world plus the combat pipeline that runs it.
type Arena struct {
	World   *ecs.World
	Tables  *prefabs.Tables
	Systems *system.Systems
	Player  ecs.Entity
	Name    string

	feed    []string
	beams   []Beam
	sched   *ecs.Scheduler
	watcher *prefabs.Watcher
}

// Load reads the arena layout file and spawns it.
func Load(tables *prefabs.Tables, file string, pre ...ecs.System) (*Arena, error) {
	spec, err := prefabs.LoadSpec[prefabs.ArenaSpec](file)
	if err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}
	return New(tables, spec, pre...)
}

// New builds a world from spec. pre systems run ahead of the combat
// pipeline each step.
func New(tables *prefabs.Tables, spec prefabs.ArenaSpec, pre ...ecs.System) (*Arena, error) {
	a := &Arena{
		World:   ecs.NewWorld(),
		Tables:  tables,
		Systems: system.NewSystems(tables),
		Name:    spec.Name,
	}
	if err := a.Systems.Brain.LoadSelectors(tables); err != nil {
		slog.Warn("arena: attack selectors", "err", err)
	}
	a.sched = a.Systems.Scheduler(pre...)
	a.World.Events().Subscribe("", a.onEvent)

	player, err := entity.NewPlayer(a.World, tables, vec(spec.Player))
	if err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}
	a.Player = player

	for _, s := range spec.Weapons {
		if _, err := entity.NewWeapon(a.World, tables, s.Key, vec(s.At)); err != nil {
			return nil, fmt.Errorf("arena: %w", err)
		}
	}
	for _, s := range spec.Enemies {
		if _, err := entity.NewEnemy(a.World, tables, s.Key, vec(s.At), s.Yaw); err != nil {
			return nil, fmt.Errorf("arena: %w", err)
		}
	}
	for _, s := range spec.Props {
		if _, err := entity.NewTeleportedProp(a.World, tables, s.Key, vec(s.At)); err != nil {
			return nil, fmt.Errorf("arena: %w", err)
		}
	}

	slog.Info("arena: loaded", "name", spec.Name, "entities", len(ecs.Entities(a.World)))
	return a, nil
}

func vec(v prefabs.Vec3Spec) common.Vec3 {
	return common.V3(v.X, v.Y, v.Z)
}

// Step advances the arena by dt seconds.
func (a *Arena) Step(dt float64) {
	a.sched.Step(a.World, dt)
	kept := a.beams[:0]
	for _, b := range a.beams {
		b.TTL -= dt
		if b.TTL > 0 {
			kept = append(kept, b)
		}
	}
	a.beams = kept
}

// Reload swaps in freshly loaded tables. Entities already spawned keep the
// values they were built with.
func (a *Arena) Reload(tables *prefabs.Tables) error {
	a.Tables = tables
	return a.Systems.Reload(tables)
}

// Feed returns the most recent gameplay events, oldest first.
func (a *Arena) Feed() []string {
	return append([]string(nil), a.feed...)
}

func (a *Arena) Beams() []Beam {
	return append([]Beam(nil), a.beams...)
}

func (a *Arena) onEvent(evt ecs.Event) {
	if b, ok := evt.Data.(component.Beam); ok {
		a.beams = append(a.beams, Beam{From: b.From, To: b.To, TTL: beamLife})
	}
	line := describe(evt)
	if line == "" {
		return
	}
	a.feed = append(a.feed, line)
	if len(a.feed) > feedSize {
		a.feed = a.feed[len(a.feed)-feedSize:]
	}
}

func describe(evt ecs.Event) string {
	switch d := evt.Data.(type) {
	case component.Damage:
		if d.Headshot {
			return fmt.Sprintf("%s took %.0f (headshot), %.0f left", ecs.EntityFromRef(d.Target), d.Amount, d.Remaining)
		}
		return fmt.Sprintf("%s took %.0f, %.0f left", ecs.EntityFromRef(d.Target), d.Amount, d.Remaining)
	case component.Died:
		return fmt.Sprintf("%s died", ecs.EntityFromRef(d.Entity))
	case component.Stunned:
		if d.Stunned {
			return fmt.Sprintf("%s stunned", ecs.EntityFromRef(d.Entity))
		}
		return ""
	case component.CombatStateChanged:
		return fmt.Sprintf("combat %s -> %s", d.From, d.To)
	case component.EquipItem:
		return fmt.Sprintf("equip slot %d -> %d", d.CurrentSlot, d.NewSlot)
	case component.MontagePlayed:
		return fmt.Sprintf("%s plays %s/%s", ecs.EntityFromRef(d.Entity), d.Montage, d.Section)
	case component.ItemStateChanged:
		return fmt.Sprintf("item %s %s -> %s", ecs.EntityFromRef(d.Item), d.From, d.To)
	case component.Sound:
		return "sound " + d.Cue
	default:
		return ""
	}
}

// Status is a snapshot of the player for HUDs.
type Status struct {
	Health      float64
	MaxHealth   float64
	State       component.CombatState
	Weapon      string
	Ammo        int
	Magazine    int
	Carried     int
	Slots       []string
	Equipped    int
	Highlighted int
	Spread      float64
	FOV         float64
	Dead        bool
	Stunned     bool
	Looking     string
}

func (a *Arena) Status() Status {
	w, p := a.World, a.Player
	st := Status{Equipped: component.NoSlot, Highlighted: component.NoSlot}
	if h, ok := ecs.Get(w, p, component.HealthComponent.Kind()); ok {
		st.Health, st.MaxHealth = h.Current, h.Max
	}
	if c, ok := ecs.Get(w, p, component.CombatComponent.Kind()); ok {
		st.State = c.State
	}
	if pl, ok := ecs.Get(w, p, component.PlayerComponent.Kind()); ok {
		st.Dead, st.Stunned = pl.Dead, pl.Stunned
		if it, ok := ecs.Get(w, ecs.EntityFromRef(pl.TraceHitItem), component.ItemComponent.Kind()); ok {
			st.Looking = it.Name
		}
	}
	if _, weapon, ok := system.EquippedWeapon(w, p); ok {
		st.Weapon = weapon.Key
		st.Ammo, st.Magazine = weapon.Ammo, weapon.MagazineSize
		if stock, ok := ecs.Get(w, p, component.AmmoStockComponent.Kind()); ok {
			st.Carried = stock.Count(weapon.AmmoType)
		}
	}
	if inv, ok := ecs.Get(w, p, component.InventoryComponent.Kind()); ok {
		st.Highlighted = inv.HighlightedSlot
		for i, ref := range inv.Slots {
			name := "?"
			if it, ok := ecs.Get(w, ecs.EntityFromRef(ref), component.ItemComponent.Kind()); ok {
				name = it.Name
			}
			st.Slots = append(st.Slots, name)
			if ref == inv.Equipped {
				st.Equipped = i
			}
		}
	}
	if ch, ok := ecs.Get(w, p, component.CrosshairComponent.Kind()); ok {
		st.Spread = ch.SpreadMultiplier
	}
	if cam, ok := ecs.Get(w, p, component.CameraComponent.Kind()); ok {
		st.FOV = cam.CurrentFOV
	}
	return st
}
