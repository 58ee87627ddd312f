// Package sim implements the meadow gameplay systems: topplegrass spawning,
// rolling and toppling, gravity, wind control, movement and despawning.
package sim

import "github.com/plus3/meadow/geom"

// Transform holds an entity's position, euler rotation and uniform scale.
// Position X/Y are ground-plane coordinates; Z is height above the ground.
type Transform struct {
	Position geom.Vec3
	Rotation geom.Vec3
	Scale    float64
}

// RotateX appends a rotation about the X axis, in radians.
func (t *Transform) RotateX(angle float64) {
	t.Rotation.X += angle
}

// RotateY appends a rotation about the Y axis, in radians.
func (t *Transform) RotateY(angle float64) {
	t.Rotation.Y += angle
}

// Movement holds an entity's velocity. The XY components are clamped to
// MaxMovementSpeed when applied; Z is owned by gravity and unclamped.
type Movement struct {
	Velocity         geom.Vec3
	MaxMovementSpeed float64
}

// Topplegrass tags a tumbleweed entity.
type Topplegrass struct{}

// FreeFall tags an entity that is currently airborne and subject to gravity.
type FreeFall struct{}

// Creature identifies a spawned creature by kind.
type Creature struct {
	Kind string
}

// KindTopplegrass is the creature kind of topplegrass entities.
const KindTopplegrass = "Topplegrass"
