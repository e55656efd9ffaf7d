package component

import "github.com/milk9111/wraith/common"

// Player holds the character's tuning values and per-frame item state.
type Player struct {
	AutomaticFireRate     float64
	ShootTimeDuration     float64
	StunChance            float64
	CameraInterpDistance  float64
	CameraInterpElevation float64
	TraceDistance         float64
	MuzzleOffset          common.Vec3
	FireSound             string
	BeamParticles         string
	ImpactParticles       string

	Dead          bool
	InputDisabled bool
	Stunned       bool

	OverlappedItemCount   int
	ShouldTraceForItems   bool
	TraceHitItem          uint64
	TraceHitItemLastFrame uint64
}

var PlayerComponent = NewComponent[Player]()
