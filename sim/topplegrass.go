package sim

import (
	"math"
	"math/rand/v2"

	"github.com/plus3/meadow/ecs"
	"github.com/plus3/meadow/geom"
)

// SpawnSystem periodically spawns a topplegrass entity on the border of the
// world that lies upwind of the center, so the wind carries it across the
// visible area.
type SpawnSystem struct {
	Wind   ecs.Singleton[Wind]
	Bounds ecs.Singleton[WorldBounds]
	Tuning ecs.Singleton[Tuning]
	Spawns ecs.Singleton[SpawnEvents]

	secsToNextSpawn float64
}

func (s *SpawnSystem) Execute(frame *ecs.UpdateFrame) {
	s.secsToNextSpawn -= frame.DeltaTime
	if s.secsToNextSpawn > 0 {
		return
	}

	tuning := *s.Tuning.Get()
	s.secsToNextSpawn = tuning.SpawnInterval

	wind := s.Wind.Get().Vec
	position := upwindBorderPosition(wind, *s.Bounds.Get(), tuning.GroundHeight)
	velocity := geom.Vec3{X: wind.X, Y: wind.Y}

	// Spawned through a deferred function rather than Commands.Spawn so the
	// new id can travel on the spawn event.
	frame.Commands.Defer(func() {
		id := frame.Storage.Spawn(
			Transform{Position: position, Scale: tuning.BaseScale},
			Movement{Velocity: velocity, MaxMovementSpeed: tuning.MaxMovementSpeed},
			Topplegrass{},
			Creature{Kind: KindTopplegrass},
		)
		s.Spawns.Get().Write(SpawnEvent{Kind: KindTopplegrass, Entity: id})
	})
}

// upwindBorderPosition picks a random point on the world border upwind of the
// center. The border is the one opposite the cardinal direction the wind is
// within a pi/4 tolerance of. A zero wind vector has no angle to any cardinal
// and falls through to the top border.
func upwindBorderPosition(wind geom.Vec2, bounds WorldBounds, height float64) geom.Vec3 {
	const tolerance = math.Pi / 4

	x := uniform(bounds.Left, bounds.Right)
	y := uniform(bounds.Bottom, bounds.Top)

	switch {
	case wind.AngleBetween(geom.Vec2{X: 1}) < tolerance:
		x = bounds.Left
	case wind.AngleBetween(geom.Vec2{Y: 1}) < tolerance:
		y = bounds.Bottom
	case wind.AngleBetween(geom.Vec2{X: -1}) < tolerance:
		x = bounds.Right
	default:
		y = bounds.Top
	}

	return geom.Vec3{X: x, Y: y, Z: height}
}

func uniform(low, high float64) float64 {
	return low + rand.Float64()*(high-low)
}

// TopplingSystem rolls topplegrass in its direction of travel and
// occasionally kicks a grounded one into the air so it hops over obstacles.
type TopplingSystem struct {
	Tuning ecs.Singleton[Tuning]

	Rolling ecs.Query[struct {
		*Topplegrass
		*Movement
		*Transform
	}]
	Grounded ecs.Query[struct {
		ecs.EntityId
		*Topplegrass
		*Movement
		FreeFall *FreeFall `ecs:"exclude"`
	}]
}

func (s *TopplingSystem) Execute(frame *ecs.UpdateFrame) {
	tuning := s.Tuning.Get()
	k := tuning.AngularVelocityFactor

	for item := range s.Rolling.Values() {
		vel := item.Movement.Velocity
		item.Transform.RotateX(-k * vel.Y * frame.DeltaTime)
		item.Transform.RotateY(k * vel.X * frame.DeltaTime)
	}

	for id, item := range s.Grounded.Iter() {
		if rand.Float64() >= tuning.FreeFallChance {
			continue
		}
		speed := item.Movement.Velocity.Length()
		item.Movement.Velocity.Z = speed * uniform(tuning.KickMin, tuning.KickMax)
		frame.Commands.AddComponent(id, FreeFall{})
	}
}
