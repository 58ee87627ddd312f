package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/meadow/ecs"
)

type moveSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
	ExecuteCount int
}

func (s *moveSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for item := range s.Entities.Values() {
		item.Position.X += item.Velocity.DX * frame.DeltaTime
		item.Position.Y += item.Velocity.DY * frame.DeltaTime
	}
}

type healthTotalSystem struct {
	Entities    ecs.Query[struct{ *Health }]
	TotalHealth int
}

func (s *healthTotalSystem) Execute(frame *ecs.UpdateFrame) {
	s.TotalHealth = 0
	for item := range s.Entities.Values() {
		s.TotalHealth += item.Health.Current
	}
}

type orderProbeSystem struct {
	name  string
	trace *[]string
}

func (s *orderProbeSystem) Execute(frame *ecs.UpdateFrame) {
	*s.trace = append(*s.trace, s.name)
}

type singletonProbeSystem struct {
	Name    ecs.Singleton[Name]
	lastSee string
}

func (s *singletonProbeSystem) Execute(frame *ecs.UpdateFrame) {
	s.lastSee = s.Name.Get().Value
}

func TestSchedulerInitializesFields(t *testing.T) {
	storage := newTestStorage()
	ecs.NewSingleton[Name](storage, Name{Value: "initial"})

	scheduler := ecs.NewScheduler(storage)

	movement := &moveSystem{}
	probe := &singletonProbeSystem{}
	scheduler.Register(movement)
	scheduler.Register(probe)

	storage.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 2, DY: 4})

	scheduler.Once(0.5)

	if movement.ExecuteCount != 1 {
		t.Fatalf("expected 1 execution, got %d", movement.ExecuteCount)
	}
	if probe.lastSee != "initial" {
		t.Fatalf("singleton field not initialized, saw %q", probe.lastSee)
	}

	var pos *Position
	found := false
	for item := range ecs.NewView[struct{ *Position }](storage).Values() {
		pos = item.Position
		found = true
	}
	if !found {
		t.Fatal("expected one positioned entity")
	}
	if pos.X != 1.0 || pos.Y != 2.0 {
		t.Fatalf("expected (1, 2) after dt=0.5, got (%v, %v)", pos.X, pos.Y)
	}
}

func TestSchedulerExecutionOrder(t *testing.T) {
	storage := newTestStorage()
	scheduler := ecs.NewScheduler(storage)

	var trace []string
	scheduler.Register(&orderProbeSystem{name: "first", trace: &trace})
	scheduler.Register(&orderProbeSystem{name: "second", trace: &trace})
	scheduler.Register(&orderProbeSystem{name: "third", trace: &trace})

	scheduler.Once(1.0 / 60.0)

	want := []string{"first", "second", "third"}
	if len(trace) != len(want) {
		t.Fatalf("expected %d executions, got %d", len(want), len(trace))
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], trace[i])
		}
	}
}

func TestSchedulerFlushesCommands(t *testing.T) {
	storage := newTestStorage()
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&testSpawnSystem{})

	scheduler.Once(1.0 / 60.0)

	if storage.EntityCount() != 2 {
		t.Fatalf("expected 2 spawned entities after flush, got %d", storage.EntityCount())
	}
}

func TestSchedulerStats(t *testing.T) {
	storage := newTestStorage()
	scheduler := ecs.NewScheduler(storage)

	movement := &moveSystem{}
	health := &healthTotalSystem{}
	scheduler.Register(movement)
	scheduler.Register(health)

	for i := 0; i < 3; i++ {
		scheduler.Once(1.0 / 60.0)
	}

	stats := scheduler.GetStats()
	if stats.SystemCount != 2 {
		t.Fatalf("expected 2 systems, got %d", stats.SystemCount)
	}
	if stats.TotalExecutions != 6 {
		t.Fatalf("expected 6 total executions, got %d", stats.TotalExecutions)
	}
	if stats.Systems[0].Name != "moveSystem" {
		t.Fatalf("expected system name moveSystem, got %q", stats.Systems[0].Name)
	}
	if stats.Systems[0].ExecutionCount != 3 {
		t.Fatalf("expected 3 executions, got %d", stats.Systems[0].ExecutionCount)
	}
	if stats.Systems[0].MaxDuration < stats.Systems[0].MinDuration {
		t.Fatal("max duration below min duration")
	}
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	storage := newTestStorage()
	scheduler := ecs.NewScheduler(storage)

	movement := &moveSystem{}
	scheduler.Register(movement)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}

	if movement.ExecuteCount == 0 {
		t.Fatal("expected at least one execution before cancellation")
	}
}
