package component

import (
	"image/color"

	"github.com/google/uuid"
)

type ItemState int

const (
	ItemPickup ItemState = iota
	ItemEquipInterping
	ItemPickedUp
	ItemEquipped
	ItemFalling
)

func (s ItemState) String() string {
	switch s {
	case ItemPickup:
		return "pickup"
	case ItemEquipInterping:
		return "equip_interping"
	case ItemPickedUp:
		return "picked_up"
	case ItemEquipped:
		return "equipped"
	case ItemFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// ItemProperties is the visibility and collision profile an item takes on
// in a given state.
type ItemProperties struct {
	Visible         bool
	SimulatePhysics bool
	AreaQuery       bool
	TraceBlocking   bool
	PawnBlocking    bool
}

// Properties returns the profile for s.
func (s ItemState) Properties() ItemProperties {
	switch s {
	case ItemPickup:
		return ItemProperties{Visible: true, AreaQuery: true, TraceBlocking: true}
	case ItemEquipInterping, ItemEquipped:
		return ItemProperties{Visible: true}
	case ItemFalling:
		return ItemProperties{Visible: true, SimulatePhysics: true, PawnBlocking: true}
	default:
		return ItemProperties{}
	}
}

type ItemRarity string

const (
	RarityDamaged   ItemRarity = "damaged"
	RarityCommon    ItemRarity = "common"
	RarityUncommon  ItemRarity = "uncommon"
	RarityRare      ItemRarity = "rare"
	RarityLegendary ItemRarity = "legendary"
)

// MaxStars is the size of the star display; slot 0 is unused.
const MaxStars = 6

type Item struct {
	ID    uuid.UUID
	Name  string
	Count int

	State  ItemState
	Rarity ItemRarity
	Owner  uint64
	Slot   int

	Visible       bool
	PickupWidget  bool
	ActiveStars   [MaxStars]bool
	NumberOfStars int

	LightColor     color.RGBA
	DarkColor      color.RGBA
	IconBackground string
	Icon           string
	AmmoIcon       string

	PickupSound string
	EquipSound  string

	// CharacterInventoryFull drives the "inventory full" hint in the pickup
	// widget.
	CharacterInventoryFull bool
}

var ItemComponent = NewComponent[Item]()

// RarityStars is how many stars each rarity lights.
func RarityStars(r ItemRarity) int {
	switch r {
	case RarityDamaged:
		return 1
	case RarityCommon:
		return 2
	case RarityUncommon:
		return 3
	case RarityRare:
		return 4
	case RarityLegendary:
		return 5
	default:
		return 0
	}
}

// SetActiveStars lights stars 1..n for the item's rarity.
func (it *Item) SetActiveStars() {
	it.ActiveStars = [MaxStars]bool{}
	for i := 1; i <= RarityStars(it.Rarity) && i < MaxStars; i++ {
		it.ActiveStars[i] = true
	}
}
