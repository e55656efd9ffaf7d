// Package timer schedules one-shot callbacks against a simulated clock.
//
// A Handle names at most one pending callback. Scheduling through a handle
// that is already pending replaces the old callback, which is the only way a
// pending callback is ever superseded besides Cancel.
package timer

import (
	"math"
	"sort"
)

// epsilon absorbs float drift from summing frame deltas.
const epsilon = 1e-9

// Handle identifies a scheduled callback. The zero Handle is never pending.
type Handle struct {
	id uint64
}

// Valid reports whether the handle has ever been scheduled.
func (h Handle) Valid() bool {
	return h.id != 0
}

type entry struct {
	id    uint64
	start float64
	due   float64
	fn    func()
}

type Manager struct {
	now     float64
	nextID  uint64
	pending map[uint64]*entry
}

func NewManager() *Manager {
	return &Manager{pending: make(map[uint64]*entry)}
}

// Now is the manager's current time in seconds.
func (m *Manager) Now() float64 {
	return m.now
}

// Set schedules fn to run delay seconds from now and stores the new handle in
// h. Whatever h pointed at before is cancelled. A non-positive delay fires on
// the next Advance.
func (m *Manager) Set(h *Handle, delay float64, fn func()) {
	if h == nil || fn == nil {
		return
	}
	m.Cancel(h)
	if delay < 0 || math.IsNaN(delay) {
		delay = 0
	}
	m.nextID++
	m.pending[m.nextID] = &entry{id: m.nextID, start: m.now, due: m.now + delay, fn: fn}
	h.id = m.nextID
}

// After schedules fn without a caller-held handle.
func (m *Manager) After(delay float64, fn func()) Handle {
	var h Handle
	m.Set(&h, delay, fn)
	return h
}

// Cancel drops the pending callback for h, if any.
func (m *Manager) Cancel(h *Handle) {
	if h == nil || h.id == 0 {
		return
	}
	delete(m.pending, h.id)
}

// Pending reports whether h still has a callback waiting to fire.
func (m *Manager) Pending(h Handle) bool {
	_, ok := m.pending[h.id]
	return ok
}

// Elapsed returns the seconds since h was scheduled, or -1 when h is not
// pending.
func (m *Manager) Elapsed(h Handle) float64 {
	e, ok := m.pending[h.id]
	if !ok {
		return -1
	}
	return m.now - e.start
}

// Remaining returns the seconds until h fires, or -1 when h is not pending.
func (m *Manager) Remaining(h Handle) float64 {
	e, ok := m.pending[h.id]
	if !ok {
		return -1
	}
	return math.Max(0, e.due-m.now)
}

// Len is the number of pending callbacks.
func (m *Manager) Len() int {
	return len(m.pending)
}

// Advance moves the clock forward by dt and fires every callback that came
// due, earliest first. Callbacks scheduled while firing wait for a later
// Advance even when their delay is zero.
func (m *Manager) Advance(dt float64) {
	if dt > 0 {
		m.now += dt
	}
	var due []*entry
	for _, e := range m.pending {
		if e.due <= m.now+epsilon {
			due = append(due, e)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})
	for _, e := range due {
		// an earlier callback in this batch may have cancelled or replaced it
		if _, ok := m.pending[e.id]; !ok {
			continue
		}
		delete(m.pending, e.id)
		e.fn()
	}
}
