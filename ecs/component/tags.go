package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// TeleportedTag marks props that vanish when struck by the whip.
type TeleportedTag struct{}

var TeleportedTagComponent = NewComponent[TeleportedTag]()
