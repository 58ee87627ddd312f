package sim

import "github.com/plus3/meadow/ecs"

// DespawnSystem deletes topplegrass that has drifted past the world bounds
// by more than the despawn margin, keeping the entity population bounded.
type DespawnSystem struct {
	Bounds ecs.Singleton[WorldBounds]
	Tuning ecs.Singleton[Tuning]

	Entities ecs.Query[struct {
		ecs.EntityId
		*Topplegrass
		*Transform
	}]
}

func (s *DespawnSystem) Execute(frame *ecs.UpdateFrame) {
	bounds := *s.Bounds.Get()
	margin := s.Tuning.Get().DespawnMargin

	for id, item := range s.Entities.Iter() {
		if !bounds.Contains(item.Transform.Position.XY(), margin) {
			frame.Commands.Delete(id)
		}
	}
}
