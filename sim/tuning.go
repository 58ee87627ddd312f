package sim

import "github.com/plus3/meadow/geom"

// Tuning collects the simulation parameters. It lives as a singleton so the
// frontend can adjust values between frames.
type Tuning struct {
	// SpawnInterval is the time between topplegrass spawns, in seconds.
	SpawnInterval float64
	// BaseScale is the uniform scale new topplegrass spawns with.
	BaseScale float64
	// MaxMovementSpeed caps ground-plane movement speed, in units/second.
	MaxMovementSpeed float64
	// GroundHeight is the Z coordinate topplegrass spawns at and lands on.
	GroundHeight float64
	// AngularVelocityFactor relates rolling rotation speed to velocity.
	AngularVelocityFactor float64
	// FreeFallChance is the per-frame probability of a grounded topplegrass
	// being kicked airborne.
	FreeFallChance float64
	// KickMin and KickMax bound the upward kick as a fraction of speed.
	KickMin float64
	KickMax float64
	// Gravity is the downward acceleration on airborne entities.
	Gravity float64
	// DespawnMargin is how far outside the world bounds topplegrass may
	// drift before deletion.
	DespawnMargin float64
}

// DefaultTuning returns the stock simulation parameters.
func DefaultTuning() Tuning {
	return Tuning{
		SpawnInterval:         1.0,
		BaseScale:             0.002,
		MaxMovementSpeed:      1.75,
		GroundHeight:          0.5,
		AngularVelocityFactor: 2.0,
		FreeFallChance:        0.05,
		KickMin:               0.4,
		KickMax:               0.7,
		Gravity:               4.0,
		DespawnMargin:         2.0,
	}
}

// DefaultWind returns the wind the world starts with.
func DefaultWind() Wind {
	return Wind{Vec: geom.Vec2{X: 1.0, Y: 0.0}}
}

// DefaultWorldBounds returns the stock world rectangle.
func DefaultWorldBounds() WorldBounds {
	return WorldBounds{Left: -10, Right: 10, Bottom: -10, Top: 10}
}
