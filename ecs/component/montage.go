package component

// Montage is the animation montage currently requested on an entity. The
// host (or MontageSystem) plays it and answers with AnimNotifies.
type Montage struct {
	Name     string
	Section  string
	PlayRate float64
	Elapsed  float64
	Playing  bool
	Paused   bool
	// fired notify indices for the current section
	Fired map[int]bool
}

var MontageComponent = NewComponent[Montage]()

// AnimNotifies queues notify names raised by animation playback for the
// entity. AnimNotifySystem drains it each frame.
type AnimNotifies struct {
	Names []string
}

var AnimNotifiesComponent = NewComponent[AnimNotifies]()
