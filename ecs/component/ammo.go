package component

type AmmoType string

const (
	Ammo9mm AmmoType = "9mm"
	AmmoAR  AmmoType = "ar"
)

// AmmoStock is the reserve ammunition carried by a character, by type.
type AmmoStock struct {
	Carried map[AmmoType]int
}

func (a *AmmoStock) Count(t AmmoType) int {
	if a == nil || a.Carried == nil {
		return 0
	}
	return a.Carried[t]
}

var AmmoStockComponent = NewComponent[AmmoStock]()
