package component

import (
	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/timer"
)

type Enemy struct {
	Name string

	StunChance           float64
	HitReactMin          float64
	HitReactMax          float64
	HealthBarDisplayTime float64
	DeathTime            float64
	BaseDamage           float64
	AttackWaitTime       float64
	HitNumberLifetime    float64
	HeadBone             string
	AttackSections       []string
	AttackScript         string
	LeftWeaponSocket     common.Vec3
	RightWeaponSocket    common.Vec3
	LeftFootSocket       common.Vec3
	RightFootSocket      common.Vec3
	ImpactSound          string
	ImpactParticles      string
	BloodParticles       string

	Stunned          bool
	Dying            bool
	InAttackRange    bool
	CanHitReact      bool
	CanAttack        bool
	HealthBarVisible bool
	HitNumbers       []HitNumber
	HitNumberSeq     uint64

	HealthBarTimer  timer.Handle
	HitReactTimer   timer.Handle
	AttackWaitTimer timer.Handle
	DeathTimer      timer.Handle
}

// HitNumber is a floating damage readout anchored where the hit landed.
type HitNumber struct {
	ID       uint64
	Amount   float64
	Location common.Vec3
	Headshot bool
}

var EnemyComponent = NewComponent[Enemy]()
