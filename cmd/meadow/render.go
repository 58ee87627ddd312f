package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/meadow/ecs"
	"github.com/plus3/meadow/geom"
	"github.com/plus3/meadow/sim"
)

var (
	groundColor = color.RGBA{104, 134, 70, 255}
	borderColor = color.RGBA{70, 92, 48, 255}
	grassColor  = color.RGBA{196, 168, 90, 255}
	shadowColor = color.RGBA{60, 80, 42, 140}
	windColor   = color.RGBA{230, 240, 255, 255}
)

// RenderSystem draws the world during Update only to snapshot what it needs;
// actual drawing happens in Draw, outside the scheduler.
type RenderSystem struct {
	Bounds ecs.Singleton[sim.WorldBounds]
	Wind   ecs.Singleton[sim.Wind]
	Tuning ecs.Singleton[sim.Tuning]

	Entities ecs.Query[struct {
		*sim.Topplegrass
		*sim.Transform
	}]
}

// Execute is a no-op; the system only carries initialized queries for Draw.
func (r *RenderSystem) Execute(frame *ecs.UpdateFrame) {}

func (r *RenderSystem) Draw(screen *ebiten.Image) {
	bounds := *r.Bounds.Get()
	screen.Fill(borderColor)

	toScreen := func(p geom.Vec2) (float32, float32) {
		sx := (p.X - bounds.Left) / (bounds.Right - bounds.Left) * float64(screen.Bounds().Dx())
		sy := (bounds.Top - p.Y) / (bounds.Top - bounds.Bottom) * float64(screen.Bounds().Dy())
		return float32(sx), float32(sy)
	}

	// Ground rectangle.
	gx, gy := toScreen(geom.Vec2{X: bounds.Left, Y: bounds.Top})
	gw, gh := toScreen(geom.Vec2{X: bounds.Right, Y: bounds.Bottom})
	vector.DrawFilledRect(screen, gx, gy, gw-gx, gh-gy, groundColor, false)

	ground := r.Tuning.Get().GroundHeight
	for item := range r.Entities.Values() {
		pos := item.Transform.Position
		sx, sy := toScreen(pos.XY())

		// Height above ground lifts the disc and fades a shadow under it.
		lift := float32(pos.Z-ground) * 18
		radius := float32(8 + 1200*item.Transform.Scale)

		vector.DrawFilledCircle(screen, sx, sy, radius*0.8, shadowColor, false)
		vector.DrawFilledCircle(screen, sx, sy-lift, radius, grassColor, false)

		// A spoke showing the rolling phase.
		phase := item.Transform.Rotation.Y
		ex := sx + radius*float32(math.Cos(phase))
		ey := sy - lift + radius*float32(math.Sin(phase))
		vector.StrokeLine(screen, sx, sy-lift, ex, ey, 1.5, shadowColor, false)
	}

	r.drawWindArrow(screen)
	ebitenutil.DebugPrintAt(screen, "W: rotate wind  Esc: quit", 8, screen.Bounds().Dy()-18)
}

func (r *RenderSystem) drawWindArrow(screen *ebiten.Image) {
	wind := r.Wind.Get().Vec

	const cx, cy, size = 60.0, 60.0, 40.0
	vector.DrawFilledCircle(screen, cx, cy, size+6, color.RGBA{0, 0, 0, 90}, false)

	dir := wind.Normalize()
	tipX := cx + float32(dir.X)*size
	tipY := cy - float32(dir.Y)*size
	vector.StrokeLine(screen, cx, cy, tipX, tipY, 3, windColor, false)
	vector.DrawFilledCircle(screen, tipX, tipY, 4, windColor, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("wind %.2f", wind.Length()), 24, 108)
}
