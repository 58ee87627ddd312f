package sim

import "github.com/plus3/meadow/ecs"

// GravitySystem accelerates airborne entities downwards and lands them once
// they reach the ground moving down. Landing snaps the entity to the ground
// height, zeroes vertical velocity and clears the FreeFall tag.
type GravitySystem struct {
	Tuning ecs.Singleton[Tuning]

	Falling ecs.Query[struct {
		ecs.EntityId
		*FreeFall
		*Movement
		*Transform
	}]
}

func (s *GravitySystem) Execute(frame *ecs.UpdateFrame) {
	tuning := s.Tuning.Get()

	for id, item := range s.Falling.Iter() {
		if item.Transform.Position.Z <= tuning.GroundHeight && item.Movement.Velocity.Z < 0 {
			item.Transform.Position.Z = tuning.GroundHeight
			item.Movement.Velocity.Z = 0
			ecs.Remove[FreeFall](frame.Commands, id)
			continue
		}
		item.Movement.Velocity.Z -= tuning.Gravity * frame.DeltaTime
	}
}
