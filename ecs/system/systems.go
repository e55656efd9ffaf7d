package system

import (
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/prefabs"
)

// Systems is the combat pipeline shared by every frontend. A frontend runs
// its own input reader first and then these in order.
type Systems struct {
	Controller *PlayerControllerSystem
	Brain      *EnemyBrainSystem
	Movement   *MovementSystem
	Throw      *ThrowSystem
	Interp     *ItemInterpSystem
	Overlap    *OverlapSystem
	Camera     *CameraSystem
	ItemTrace  *ItemTraceSystem
	Crosshair  *CrosshairSystem
	Montage    *MontageSystem
	Notify     *AnimNotifySystem
	AnimProps  *AnimPropertiesSystem
}

func NewSystems(tables *prefabs.Tables) *Systems {
	return &Systems{
		Controller: NewPlayerControllerSystem(),
		Brain:      NewEnemyBrainSystem(),
		Movement:   NewMovementSystem(),
		Throw:      NewThrowSystem(),
		Interp:     NewItemInterpSystem(),
		Overlap:    NewOverlapSystem(),
		Camera:     NewCameraSystem(),
		ItemTrace:  NewItemTraceSystem(),
		Crosshair:  NewCrosshairSystem(),
		Montage:    NewMontageSystem(tables),
		Notify:     NewAnimNotifySystem(),
		AnimProps:  NewAnimPropertiesSystem(),
	}
}

// Reload swaps table-driven state after the data files change on disk.
func (s *Systems) Reload(tables *prefabs.Tables) error {
	s.Montage.SetTables(tables)
	s.Brain.selectors = map[string]AttackSelector{}
	return s.Brain.LoadSelectors(tables)
}

// Scheduler returns a scheduler running pre first and then the pipeline.
func (s *Systems) Scheduler(pre ...ecs.System) *ecs.Scheduler {
	sched := ecs.NewScheduler(pre...)
	for _, sys := range s.list() {
		sched.Add(sys)
	}
	return sched
}

func (s *Systems) list() []ecs.System {
	return []ecs.System{
		s.Controller,
		s.Brain,
		s.Movement,
		s.Throw,
		s.Interp,
		s.Overlap,
		s.Camera,
		s.ItemTrace,
		s.Crosshair,
		s.Montage,
		s.Notify,
		s.AnimProps,
	}
}
