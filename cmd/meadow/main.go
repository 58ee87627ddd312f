// Command meadow runs the tumbleweed simulation with an Ebiten frontend and
// an optional Dear ImGui debug overlay.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/meadow/config"
	"github.com/plus3/meadow/ecs"
	"github.com/plus3/meadow/ecs/debugui"
	"github.com/plus3/meadow/sim"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

func main() {
	configPath := flag.String("config", "", "path to a YAML tuning file (watched for changes)")
	debug := flag.Bool("debug", false, "show the Dear ImGui debug overlay")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("meadow: %v", err)
		}
		cfg = loaded
	}

	registry := ecs.NewComponentRegistry()
	sim.RegisterComponents(registry)
	debugui.RegisterComponents(registry)

	storage := ecs.NewStorage(registry)
	sim.AddResources(storage, cfg.WindResource(), cfg.BoundsResource(), cfg.Tuning())

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&InputSystem{})
	sim.RegisterSystems(scheduler)

	renderSystem := &RenderSystem{}
	scheduler.Register(renderSystem)

	game := &Game{
		Storage:      storage,
		Scheduler:    scheduler,
		RenderSystem: renderSystem,
	}

	if *debug {
		backend := debugui.NewImguiBackend("Meadow", ScreenWidth, ScreenHeight)
		game.ImguiBackend = ecs.NewSingleton[debugui.ImguiBackend](storage, backend)
		ecs.NewSingleton[debugui.ImguiInputState](storage)
		scheduler.Register(&debugui.ImguiSystem{})
		spawnDebugWindows(storage, scheduler)
	}

	if *configPath != "" {
		watcher, err := config.NewWatcher(*configPath)
		if err != nil {
			log.Fatalf("meadow: watch config: %v", err)
		}
		defer watcher.Close()
		game.ConfigWatcher = watcher
		game.ConfigPath = *configPath
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Meadow")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("meadow: %v", err)
	}
}
