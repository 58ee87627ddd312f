package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/meadow/config"
	"github.com/plus3/meadow/ecs"
	"github.com/plus3/meadow/ecs/debugui"
	"github.com/plus3/meadow/sim"
)

// Game drives the scheduler from the Ebiten game loop and applies config
// reloads between frames.
type Game struct {
	Storage      *ecs.Storage
	Scheduler    *ecs.Scheduler
	RenderSystem *RenderSystem
	ImguiBackend *ecs.Singleton[debugui.ImguiBackend]

	ConfigWatcher *config.Watcher
	ConfigPath    string
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.applyConfigChanges()

	if g.ImguiBackend != nil {
		g.ImguiBackend.Get().BeginFrame()
	}

	g.Scheduler.Once(1.0 / 60.0)

	if g.ImguiBackend != nil {
		g.ImguiBackend.Get().EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.RenderSystem.Draw(screen)

	if g.ImguiBackend != nil {
		g.ImguiBackend.Get().Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.ImguiBackend != nil {
		g.ImguiBackend.Get().Layout(outsideWidth, outsideHeight)
	}
	return ScreenWidth, ScreenHeight
}

// applyConfigChanges drains watcher notifications and swaps the tuning,
// wind and bounds singletons to the reloaded values. A file that fails to
// load keeps the running configuration.
func (g *Game) applyConfigChanges() {
	if g.ConfigWatcher == nil {
		return
	}

	changed := false
	for {
		select {
		case _, ok := <-g.ConfigWatcher.Events:
			if !ok {
				return
			}
			changed = true
		case err, ok := <-g.ConfigWatcher.Errors:
			if ok {
				log.Printf("meadow: config watcher: %v", err)
			}
		default:
			if !changed {
				return
			}

			cfg, err := config.Load(g.ConfigPath)
			if err != nil {
				log.Printf("meadow: reload skipped: %v", err)
				return
			}

			*ecs.NewSingleton[sim.Tuning](g.Storage).Get() = cfg.Tuning()
			*ecs.NewSingleton[sim.Wind](g.Storage).Get() = cfg.WindResource()
			*ecs.NewSingleton[sim.WorldBounds](g.Storage).Get() = cfg.BoundsResource()
			log.Printf("meadow: reloaded %s", g.ConfigPath)
			return
		}
	}
}
