package ecs

import (
	"math/rand/v2"
	"time"

	"github.com/milk9111/wraith/ecs/component"
	"github.com/milk9111/wraith/timer"
)

// World owns every entity, its component stores, the frame clock and the
// event bus. It is not safe for concurrent use; drive it from one loop.
type World struct {
	generations []generation
	alive       []bool
	free        []entityID
	count       int

	stores map[component.ComponentID]*sparseSet

	events *EventBus
	timers *timer.Manager
	rng    *rand.Rand
	dt     float64
	frame  uint64
}

func NewWorld() *World {
	seed := uint64(time.Now().UnixNano())
	return &World{
		// slot 0 is reserved so the zero Entity is never alive
		generations: []generation{0},
		alive:       []bool{false},
		stores:      make(map[component.ComponentID]*sparseSet),
		events:      NewEventBus(),
		timers:      timer.NewManager(),
		rng:         rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

// Events returns the world's event bus.
func (w *World) Events() *EventBus {
	return w.events
}

// Timers returns the world's scheduled-callback manager.
func (w *World) Timers() *timer.Manager {
	return w.timers
}

// Rand returns the world's random source.
func (w *World) Rand() *rand.Rand {
	return w.rng
}

// SetRand replaces the random source. Tests use this to make rolls repeatable.
func (w *World) SetRand(r *rand.Rand) {
	if r != nil {
		w.rng = r
	}
}

// DeltaTime is the duration of the frame currently being simulated, in seconds.
func (w *World) DeltaTime() float64 {
	return w.dt
}

// Frame is the number of completed Step calls.
func (w *World) Frame() uint64 {
	return w.frame
}

// Now is the simulated time in seconds.
func (w *World) Now() float64 {
	return w.timers.Now()
}

func CreateEntity(w *World) Entity {
	var id entityID
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		id = entityID(len(w.generations))
		w.generations = append(w.generations, 1)
		w.alive = append(w.alive, false)
	}
	w.alive[id] = true
	w.count++
	return makeEntity(id, w.generations[id])
}

func IsAlive(w *World, e Entity) bool {
	if w == nil || !e.Valid() {
		return false
	}
	id := e.id()
	if int(id) >= len(w.generations) {
		return false
	}
	return w.alive[id] && w.generations[id] == e.generation()
}

// DestroyEntity removes every component of e and recycles its slot with a
// bumped generation, so stale handles stop resolving.
func DestroyEntity(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	id := e.id()
	for _, store := range w.stores {
		store.remove(id)
	}
	w.alive[id] = false
	w.generations[id]++
	w.free = append(w.free, id)
	w.count--
	w.events.Publish(Event{Type: EventEntityDestroyed, Data: e})
	return true
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	out := make([]Entity, 0, w.count)
	for id := 1; id < len(w.generations); id++ {
		if w.alive[id] {
			out = append(out, makeEntity(entityID(id), w.generations[id]))
		}
	}
	return out
}

func (w *World) entityFor(id entityID) (Entity, bool) {
	if int(id) >= len(w.generations) || !w.alive[id] {
		return NoEntity, false
	}
	return makeEntity(id, w.generations[id]), true
}

func (w *World) store(id component.ComponentID, create bool) *sparseSet {
	s := w.stores[id]
	if s == nil && create {
		s = newSparseSet()
		w.stores[id] = s
	}
	return s
}
