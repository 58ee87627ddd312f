package ecs_test

import (
	"testing"

	"github.com/plus3/meadow/ecs"
)

type testSpawnSystem struct{}

func (s *testSpawnSystem) Execute(frame *ecs.UpdateFrame) {
	if frame.Storage.EntityCount() > 0 {
		return
	}
	frame.Commands.Spawn(Position{X: 1, Y: 2}, Health{Current: 10, Max: 10})
	frame.Commands.Spawn(Position{X: 3, Y: 4})
}

type testDeleteSystem struct {
	Entities ecs.Query[struct {
		ecs.EntityId
		*Health
	}]
}

func (s *testDeleteSystem) Execute(frame *ecs.UpdateFrame) {
	for id, item := range s.Entities.Iter() {
		if item.Health.Current <= 0 {
			frame.Commands.Delete(id)
		}
	}
}

func TestCommandsSpawnDeferred(t *testing.T) {
	storage := newTestStorage()
	commands := ecs.NewCommands()

	commands.Spawn(Position{X: 5, Y: 6}, Velocity{DX: 1, DY: 1})

	if storage.EntityCount() != 0 {
		t.Fatal("spawn should not apply before flush")
	}

	commands.Flush(storage)

	if storage.EntityCount() != 1 {
		t.Fatalf("expected 1 entity after flush, got %d", storage.EntityCount())
	}
}

func TestCommandsDeleteWinsOverComponentOps(t *testing.T) {
	storage := newTestStorage()
	commands := ecs.NewCommands()

	id := storage.Spawn(Position{X: 1, Y: 1})

	commands.AddComponent(id, Health{Current: 5, Max: 5})
	commands.Delete(id)
	commands.Flush(storage)

	if storage.Alive(id) {
		t.Fatal("entity should be deleted")
	}
}

func TestCommandsAddRemoveComponent(t *testing.T) {
	storage := newTestStorage()
	commands := ecs.NewCommands()

	id := storage.Spawn(Position{X: 1, Y: 1}, Frozen{})

	commands.AddComponent(id, Health{Current: 3, Max: 3})
	ecs.Remove[Frozen](commands, id)
	commands.Flush(storage)

	health := ecs.ReadComponent[Health](storage, id)
	if health == nil || health.Current != 3 {
		t.Fatal("expected Health component after flush")
	}
	if ecs.ReadComponent[Frozen](storage, id) != nil {
		t.Fatal("expected Frozen component removed after flush")
	}
}

func TestCommandsDeferRunsAfterStructuralChanges(t *testing.T) {
	storage := newTestStorage()
	commands := ecs.NewCommands()

	observed := -1
	commands.Spawn(Position{X: 1, Y: 1})
	commands.Defer(func() {
		observed = storage.EntityCount()
	})
	commands.Flush(storage)

	if observed != 1 {
		t.Fatalf("defer should observe post-spawn state, got %d", observed)
	}
}

func TestCommandsFlushResetsBuffer(t *testing.T) {
	storage := newTestStorage()
	commands := ecs.NewCommands()

	commands.Spawn(Position{X: 1, Y: 1})
	commands.Flush(storage)
	commands.Flush(storage)

	if storage.EntityCount() != 1 {
		t.Fatalf("second flush should be a no-op, got %d entities", storage.EntityCount())
	}
}

func TestCommandsDeleteDuringIteration(t *testing.T) {
	storage := newTestStorage()
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&testDeleteSystem{})

	storage.Spawn(Health{Current: 0, Max: 10})
	storage.Spawn(Health{Current: 7, Max: 10})
	storage.Spawn(Health{Current: 0, Max: 10})

	scheduler.Once(1.0 / 60.0)

	if storage.EntityCount() != 1 {
		t.Fatalf("expected 1 survivor, got %d", storage.EntityCount())
	}
}
