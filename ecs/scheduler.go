package ecs

type System interface {
	Update(w *World)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

// Step simulates one frame of dt seconds: systems run first, then any timers
// that came due during the frame fire in due order.
func (s *Scheduler) Step(w *World, dt float64) {
	if dt < 0 {
		dt = 0
	}
	w.dt = dt
	s.Update(w)
	w.timers.Advance(dt)
	w.frame++
}

func (s *Scheduler) Systems() []System {
	return append([]System(nil), s.systems...)
}
