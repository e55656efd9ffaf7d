package component

// WhipHittable marks entities that react when the whip beam hits them.
type WhipHittable struct {
	ImpactSound     string
	ImpactParticles string
	// Teleport props vanish in a puff instead of taking damage.
	TeleportSound     string
	TeleportParticles string
}

var WhipHittableComponent = NewComponent[WhipHittable]()
