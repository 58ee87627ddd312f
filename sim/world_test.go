package sim_test

import (
	"github.com/plus3/meadow/ecs"
	"github.com/plus3/meadow/geom"
	"github.com/plus3/meadow/sim"
)

func newWorld(wind sim.Wind, tuning sim.Tuning) *ecs.Storage {
	registry := ecs.NewComponentRegistry()
	sim.RegisterComponents(registry)

	storage := ecs.NewStorage(registry)
	sim.AddResources(storage, wind, sim.DefaultWorldBounds(), tuning)
	return storage
}

func spawnTopplegrass(storage *ecs.Storage, position geom.Vec3, velocity geom.Vec3) ecs.EntityId {
	tuning := sim.DefaultTuning()
	return storage.Spawn(
		sim.Transform{Position: position, Scale: tuning.BaseScale},
		sim.Movement{Velocity: velocity, MaxMovementSpeed: tuning.MaxMovementSpeed},
		sim.Topplegrass{},
		sim.Creature{Kind: sim.KindTopplegrass},
	)
}
