package component

// NoSlot is the "nothing highlighted / nothing found" slot index.
const NoSlot = -1

// Inventory is the character's ordered item slots. Slots holds item entity
// refs; index 0 is the starting weapon.
type Inventory struct {
	Slots           []uint64
	Capacity        int
	Equipped        uint64
	HighlightedSlot int
}

// IndexOf returns the slot holding item or NoSlot.
func (inv *Inventory) IndexOf(item uint64) int {
	for i, ref := range inv.Slots {
		if ref == item {
			return i
		}
	}
	return NoSlot
}

func (inv *Inventory) Full() bool {
	return len(inv.Slots) >= inv.Capacity
}

var InventoryComponent = NewComponent[Inventory]()
