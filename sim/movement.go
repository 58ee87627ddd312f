package sim

import "github.com/plus3/meadow/ecs"

// MovementSystem translates entities by their velocity each frame. The
// ground-plane component is clamped to the entity's max movement speed; the
// vertical component is applied as-is since gravity owns it.
type MovementSystem struct {
	Moving ecs.Query[struct {
		*Movement
		*Transform
	}]
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Moving.Values() {
		vel := item.Movement.Velocity

		planar := vel.XY()
		if max := item.Movement.MaxMovementSpeed; max > 0 && planar.Length() > max {
			planar = planar.Normalize().Scale(max)
		}

		item.Transform.Position.X += planar.X * frame.DeltaTime
		item.Transform.Position.Y += planar.Y * frame.DeltaTime
		item.Transform.Position.Z += vel.Z * frame.DeltaTime
	}
}
