package component

// AnimProperties are the values an animation graph samples each frame.
type AnimProperties struct {
	Speed                 float64
	InAir                 bool
	Accelerating          bool
	Aiming                bool
	Reloading             bool
	Equipping             bool
	ShouldUseFABRIK       bool
	MovementOffsetYaw     float64
	LastMovementOffsetYaw float64
	EquippedWeaponType    WeaponType
	CombatState           CombatState
}

var AnimPropertiesComponent = NewComponent[AnimProperties]()
