package component

// Thrown carries the launch impulse of a dropped item until the throw
// simulation picks it up.
type Thrown struct {
	ImpulseX float64
	ImpulseY float64
	Launched bool
}

var ThrownComponent = NewComponent[Thrown]()
