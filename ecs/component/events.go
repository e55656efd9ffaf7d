package component

import "github.com/milk9111/wraith/common"

// Event type names published on the world's event bus.
const (
	EventEquipItem     = "equip_item"
	EventHighlightIcon = "highlight_icon"
	EventMontagePlayed = "montage_played"
	EventSound         = "sound"
	EventParticles     = "particles"
	EventBeam          = "beam"
	EventDamage        = "damage"
	EventDied          = "died"
	EventStunned       = "stunned"
	EventHealthBar     = "health_bar"
	EventCombatState   = "combat_state"
	EventItemState     = "item_state"
	EventWeaponThrown  = "weapon_thrown"
	EventHitNumber     = "hit_number"
	EventPickupWidget  = "pickup_widget"
)

// EquipItem tells the inventory bar which slot lost and gained the weapon.
// CurrentSlot is -1 when nothing was equipped before.
type EquipItem struct {
	Character   uint64
	CurrentSlot int
	NewSlot     int
}

// HighlightIcon starts or stops the slot highlight animation.
type HighlightIcon struct {
	Character uint64
	Slot      int
	Start     bool
}

type MontagePlayed struct {
	Entity   uint64
	Montage  string
	Section  string
	PlayRate float64
}

type Sound struct {
	Cue      string
	Location common.Vec3
}

type Particles struct {
	System   string
	Location common.Vec3
}

// Beam is the whip's visible trail from the socket to its end point.
type Beam struct {
	System string
	From   common.Vec3
	To     common.Vec3
}

type Damage struct {
	Target     uint64
	Instigator uint64
	Amount     float64
	Remaining  float64
	Headshot   bool
}

type Died struct {
	Entity uint64
}

type Stunned struct {
	Entity  uint64
	Stunned bool
}

type HealthBar struct {
	Entity  uint64
	Visible bool
}

type CombatStateChanged struct {
	Entity uint64
	From   CombatState
	To     CombatState
}

type ItemStateChanged struct {
	Item uint64
	From ItemState
	To   ItemState
}

type HitNumberChanged struct {
	Enemy  uint64
	Number HitNumber
	Added  bool
}

type PickupWidget struct {
	Item    uint64
	Visible bool
}
