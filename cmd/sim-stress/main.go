// Command sim-stress runs the meadow simulation headless and reports update
// timing and memory behavior.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/meadow/config"
	"github.com/plus3/meadow/ecs"
	"github.com/plus3/meadow/geom"
	"github.com/plus3/meadow/sim"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "how long to run the simulation")
	entityCount := flag.Int("entities", 10000, "number of topplegrass entities to seed")
	dt := flag.Float64("dt", 1.0/60.0, "fixed delta time per update, in seconds")
	windX := flag.Float64("wind-x", 1.0, "wind vector x component")
	windY := flag.Float64("wind-y", 0.25, "wind vector y component")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "include GC pause metrics in the report")
	flag.Parse()

	log.Println("Starting meadow stress run...")

	cfg := config.Default()

	registry := ecs.NewComponentRegistry()
	sim.RegisterComponents(registry)

	storage := ecs.NewStorage(registry)
	wind := sim.Wind{Vec: geom.Vec2{X: *windX, Y: *windY}}
	sim.AddResources(storage, wind, cfg.BoundsResource(), cfg.Tuning())

	scheduler := ecs.NewScheduler(storage)
	sim.RegisterSystems(scheduler)

	log.Printf("Seeding %d topplegrass entities...", *entityCount)
	seedTopplegrass(storage, wind, cfg, *entityCount)

	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		DeltaTime:      *dt,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(*dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = int64(len(report.UpdateTime.Samples))
	report.FinalEntities = storage.EntityCount()
	report.Systems = scheduler.GetStats().Systems
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n--- Meadow Stress Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// seedTopplegrass scatters entities across the world so iteration cost is
// representative from the first frame, instead of waiting on the spawn timer.
func seedTopplegrass(storage *ecs.Storage, wind sim.Wind, cfg config.Config, count int) {
	tuning := cfg.Tuning()
	bounds := cfg.BoundsResource()

	for i := 0; i < count; i++ {
		fx := float64(i%1000) / 1000.0
		fy := float64(i/1000%1000) / 1000.0
		storage.Spawn(
			sim.Transform{
				Position: geom.Vec3{
					X: bounds.Left + fx*(bounds.Right-bounds.Left),
					Y: bounds.Bottom + fy*(bounds.Top-bounds.Bottom),
					Z: tuning.GroundHeight,
				},
				Scale: tuning.BaseScale,
			},
			sim.Movement{
				Velocity:         geom.Vec3{X: wind.Vec.X, Y: wind.Vec.Y},
				MaxMovementSpeed: tuning.MaxMovementSpeed,
			},
			sim.Topplegrass{},
			sim.Creature{Kind: sim.KindTopplegrass},
		)
	}
}
