package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/meadow/ecs"
)

func TestViewIterRequired(t *testing.T) {
	storage := newTestStorage()

	moving := storage.Spawn(Position{X: 1, Y: 1}, Velocity{DX: 2, DY: 2})
	storage.Spawn(Position{X: 5, Y: 5})

	view := ecs.NewView[struct {
		ecs.EntityId
		*Position
		*Velocity
	}](storage)

	seen := 0
	for id, item := range view.Iter() {
		seen++
		assert.Equal(t, moving, id)
		assert.Equal(t, moving, item.EntityId)
		assert.Equal(t, 1.0, item.Position.X)
		assert.Equal(t, 2.0, item.Velocity.DX)
	}
	assert.Equal(t, 1, seen)
	assert.Equal(t, 1, view.Count())
}

func TestViewMutationPersists(t *testing.T) {
	storage := newTestStorage()
	id := storage.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 1, DY: 2})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	for _, item := range view.Iter() {
		item.Position.X += item.Velocity.DX
		item.Position.Y += item.Velocity.DY
	}

	pos := ecs.ReadComponent[Position](storage, id)
	assert.Equal(t, 1.0, pos.X)
	assert.Equal(t, 2.0, pos.Y)
}

func TestViewOptional(t *testing.T) {
	storage := newTestStorage()

	withHealth := storage.Spawn(Position{X: 1, Y: 1}, Health{Current: 3, Max: 3})
	withoutHealth := storage.Spawn(Position{X: 2, Y: 2})

	view := ecs.NewView[struct {
		ecs.EntityId
		Position *Position
		Health   *Health `ecs:"optional"`
	}](storage)

	got := make(map[ecs.EntityId]bool)
	for id, item := range view.Iter() {
		got[id] = item.Health != nil
	}

	require.Len(t, got, 2)
	assert.True(t, got[withHealth])
	assert.False(t, got[withoutHealth])
}

func TestViewExclude(t *testing.T) {
	storage := newTestStorage()

	frozen := storage.Spawn(Position{X: 1, Y: 1}, Frozen{})
	free := storage.Spawn(Position{X: 2, Y: 2})

	view := ecs.NewView[struct {
		ecs.EntityId
		Position *Position
		Frozen   *Frozen `ecs:"exclude"`
	}](storage)

	var matched []ecs.EntityId
	for id, item := range view.Iter() {
		assert.Nil(t, item.Frozen)
		matched = append(matched, id)
	}

	require.Len(t, matched, 1)
	assert.Equal(t, free, matched[0])
	assert.NotContains(t, matched, frozen)

	// Attaching the excluded component removes the entity from the view.
	storage.AddComponent(free, Frozen{})
	assert.Equal(t, 0, view.Count())
}

func TestViewFillAndGet(t *testing.T) {
	storage := newTestStorage()
	id := storage.Spawn(Position{X: 4, Y: 5}, Velocity{DX: 1, DY: 1})
	bare := storage.Spawn(Position{X: 9, Y: 9})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	item := view.Get(id)
	require.NotNil(t, item)
	assert.Equal(t, 4.0, item.Position.X)

	assert.Nil(t, view.Get(bare))

	storage.Delete(id)
	assert.Nil(t, view.Get(id))
}

func TestViewSpawn(t *testing.T) {
	storage := newTestStorage()

	view := ecs.NewView[struct {
		Position *Position
		Velocity *Velocity
		Health   *Health `ecs:"optional"`
	}](storage)

	id := view.Spawn(struct {
		Position *Position
		Velocity *Velocity
		Health   *Health `ecs:"optional"`
	}{
		Position: &Position{X: 1, Y: 2},
		Velocity: &Velocity{DX: 3, DY: 4},
	})

	require.True(t, id.Valid())
	assert.Equal(t, 1.0, ecs.ReadComponent[Position](storage, id).X)
	assert.Nil(t, ecs.ReadComponent[Health](storage, id))
}

func TestViewInvalidStructPanics(t *testing.T) {
	storage := newTestStorage()

	assert.Panics(t, func() {
		ecs.NewView[struct {
			Position Position // not a pointer
		}](storage)
	})

	assert.Panics(t, func() {
		ecs.NewView[struct {
			Position *Position `ecs:"sometimes"`
		}](storage)
	})
}

func TestQuerySnapshotAllowsStructuralChanges(t *testing.T) {
	storage := newTestStorage()

	for i := 0; i < 4; i++ {
		storage.Spawn(Position{X: float64(i)}, Health{Current: 1, Max: 1})
	}

	query := ecs.NewQuery[struct {
		ecs.EntityId
		*Health
	}](storage)

	// Deleting while iterating must not skip or repeat entities.
	visited := 0
	for id := range query.Iter() {
		visited++
		storage.Delete(id)
	}

	assert.Equal(t, 4, visited)
	assert.Equal(t, 0, storage.EntityCount())
	assert.Equal(t, 0, query.Count())
}
