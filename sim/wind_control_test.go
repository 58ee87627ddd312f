package sim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/meadow/ecs"
	"github.com/plus3/meadow/geom"
	"github.com/plus3/meadow/sim"
)

func windAfterActions(t *testing.T, start geom.Vec2, actions ...string) geom.Vec2 {
	t.Helper()

	storage := newWorld(sim.Wind{Vec: start}, sim.DefaultTuning())
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&sim.WindControlSystem{})

	channel := ecs.NewSingleton[sim.ActionEvents](storage).Get()
	for _, action := range actions {
		channel.Write(sim.ActionEvent{Action: action})
	}
	scheduler.Once(1.0 / 60.0)

	return ecs.NewSingleton[sim.Wind](storage).Get().Vec
}

func TestWindRotatesOneStep(t *testing.T) {
	start := geom.Vec2{X: 2, Y: 0}
	got := windAfterActions(t, start, sim.ActionChangeWindDirection)

	assert.InDelta(t, math.Pi/8, got.Angle(), 1e-9)
	assert.InDelta(t, start.Length(), got.Length(), 1e-9)
}

func TestWindRotatesPerAction(t *testing.T) {
	start := geom.Vec2{X: 1, Y: 1}
	got := windAfterActions(t, start,
		sim.ActionChangeWindDirection,
		sim.ActionChangeWindDirection,
		sim.ActionChangeWindDirection,
	)

	assert.InDelta(t, start.Angle()+3*math.Pi/8, got.Angle(), 1e-9)
	assert.InDelta(t, start.Length(), got.Length(), 1e-9)
}

func TestWindIgnoresUnknownActions(t *testing.T) {
	start := geom.Vec2{X: 1, Y: 0}
	got := windAfterActions(t, start, "Jump", "OpenInventory")

	assert.Equal(t, start, got)
}

func TestWindFullCircle(t *testing.T) {
	start := geom.Vec2{X: 1.5, Y: -0.5}

	actions := make([]string, 16)
	for i := range actions {
		actions[i] = sim.ActionChangeWindDirection
	}
	got := windAfterActions(t, start, actions...)

	assert.InDelta(t, start.X, got.X, 1e-9)
	assert.InDelta(t, start.Y, got.Y, 1e-9)
}

func TestZeroWindStaysZero(t *testing.T) {
	got := windAfterActions(t, geom.Vec2{}, sim.ActionChangeWindDirection)
	assert.Equal(t, geom.Vec2{}, got)
}
