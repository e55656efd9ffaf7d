package component

// Movement is written by whatever drives the character (host physics, the
// brain system, a frontend) and read by combat, crosshair and animation.
type Movement struct {
	VelX         float64
	VelY         float64
	VelZ         float64
	Falling      bool
	Accelerating bool
	Stopped      bool
}

var MovementComponent = NewComponent[Movement]()
