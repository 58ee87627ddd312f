package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/meadow/ecs"
	"github.com/plus3/meadow/geom"
	"github.com/plus3/meadow/sim"
)

func TestDespawnOutsideMargin(t *testing.T) {
	tuning := sim.DefaultTuning()
	storage := newWorld(sim.DefaultWind(), tuning)
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&sim.DespawnSystem{})

	bounds := sim.DefaultWorldBounds()
	inside := spawnTopplegrass(storage, geom.Vec3{X: 0, Y: 0}, geom.Vec3{})
	onMargin := spawnTopplegrass(storage, geom.Vec3{X: bounds.Right + tuning.DespawnMargin, Y: 0}, geom.Vec3{})
	outside := spawnTopplegrass(storage, geom.Vec3{X: bounds.Right + tuning.DespawnMargin + 0.1, Y: 0}, geom.Vec3{})
	farBelow := spawnTopplegrass(storage, geom.Vec3{X: 0, Y: bounds.Bottom - tuning.DespawnMargin - 1}, geom.Vec3{})

	scheduler.Once(1.0 / 60.0)

	assert.True(t, storage.Alive(inside))
	assert.True(t, storage.Alive(onMargin))
	assert.False(t, storage.Alive(outside))
	assert.False(t, storage.Alive(farBelow))
}

func TestDespawnIgnoresOtherCreatures(t *testing.T) {
	storage := newWorld(sim.DefaultWind(), sim.DefaultTuning())
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&sim.DespawnSystem{})

	bystander := storage.Spawn(
		sim.Transform{Position: geom.Vec3{X: 1000}},
		sim.Creature{Kind: "Bee"},
	)

	scheduler.Once(1.0 / 60.0)

	assert.True(t, storage.Alive(bystander))
}
