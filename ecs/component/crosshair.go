package component

// Crosshair holds the spread factors combined into SpreadMultiplier each
// frame.
type Crosshair struct {
	SpreadMultiplier float64
	VelocityFactor   float64
	InAirFactor      float64
	AimFactor        float64
	ShootingFactor   float64
}

var CrosshairComponent = NewComponent[Crosshair]()
