package sim

import (
	"github.com/plus3/meadow/ecs"
	"github.com/plus3/meadow/geom"
)

// Wind is the global wind vector. Its direction decides where topplegrass
// enters the world and its magnitude sets the initial rolling speed.
type Wind struct {
	Vec geom.Vec2
}

// WorldBounds is the axis-aligned ground-plane rectangle entities live in.
type WorldBounds struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
}

// Contains reports whether p lies within the bounds extended by margin on
// all sides.
func (b WorldBounds) Contains(p geom.Vec2, margin float64) bool {
	return p.X >= b.Left-margin && p.X <= b.Right+margin &&
		p.Y >= b.Bottom-margin && p.Y <= b.Top+margin
}

// ActionEvent is a named input action delivered to interested systems.
type ActionEvent struct {
	Action string
}

// ActionChangeWindDirection rotates the wind counterclockwise by one step.
const ActionChangeWindDirection = "ChangeWindDirection"

// ActionEvents is the event channel input actions are published on.
type ActionEvents = ecs.Channel[ActionEvent]

// SpawnEvent announces a newly spawned creature.
type SpawnEvent struct {
	Kind   string
	Entity ecs.EntityId
}

// SpawnEvents is the event channel creature spawns are published on.
type SpawnEvents = ecs.Channel[SpawnEvent]
