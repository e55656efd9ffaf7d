package component

import "github.com/milk9111/wraith/common"

// Blackboard is the enemy's shared memory with the external AI. The core
// writes it; decisions made from it happen elsewhere.
type Blackboard struct {
	Target        uint64
	InAttackRange bool
	Dead          bool
	CharacterDead bool
	Stunned       bool
	CanAttack     bool
	PatrolPoint   common.Vec3
	PatrolPoint2  common.Vec3
}

var BlackboardComponent = NewComponent[Blackboard]()
