package component

// NoSlotKey means no inventory hotkey was pressed this frame.
const NoSlotKey = -1

// Input stores per-frame input state for an entity. Pressed/Released fields
// are edges and are cleared once the player input system consumes them.
type Input struct {
	FirePressed   bool
	FireReleased  bool
	AimPressed    bool
	AimReleased   bool
	SelectPressed bool
	ReloadPressed bool
	SlotKey       int
	LookYaw       float64
	LookPitch     float64
	MoveX         float64
	MoveY         float64
}

var InputComponent = NewComponent[Input]()
