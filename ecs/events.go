package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	// EventEntityDestroyed carries the destroyed Entity.
	EventEntityDestroyed = "entity_destroyed"
)

// Handler receives published events.
type Handler func(Event)

type subscription struct {
	id  uint64
	typ string
	fn  Handler
}

// EventBus delivers events synchronously to subscribers in subscription
// order. It also keeps a FIFO log of everything published since the last
// Drain so frontends can poll instead of subscribing.
type EventBus struct {
	subs   []subscription
	nextID uint64
	log    []Event
	keep   bool
}

func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers fn for events of typ. An empty typ receives every
// event. The returned func removes the subscription.
func (b *EventBus) Subscribe(typ string, fn Handler) func() {
	if b == nil || fn == nil {
		return func() {}
	}
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, typ: typ, fn: fn})
	return func() {
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Record turns the poll log on or off.
func (b *EventBus) Record(on bool) {
	if b == nil {
		return
	}
	b.keep = on
	if !on {
		b.log = nil
	}
}

func (b *EventBus) Publish(evt Event) {
	if b == nil {
		return
	}
	if b.keep {
		b.log = append(b.log, evt)
	}
	// handlers may subscribe or unsubscribe while we deliver
	subs := append([]subscription(nil), b.subs...)
	for _, s := range subs {
		if s.typ == "" || s.typ == evt.Type {
			s.fn(evt)
		}
	}
}

// Drain returns all recorded events and clears the log.
func (b *EventBus) Drain() []Event {
	if b == nil || len(b.log) == 0 {
		return nil
	}
	out := b.log
	b.log = nil
	return out
}

// Publish is shorthand for w.Events().Publish.
func Publish(w *World, typ string, data any) {
	w.events.Publish(Event{Type: typ, Data: data})
}
