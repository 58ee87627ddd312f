package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/meadow/ecs"
)

// SimStatsPanel renders entity, component and per-system timing statistics
// with a rolling frame-time graph.
type SimStatsPanel struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewSimStatsPanel(historyFrames int) *SimStatsPanel {
	return &SimStatsPanel{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (p *SimStatsPanel) Render(storage *ecs.Storage, scheduler *ecs.Scheduler, deltaTime float32) {
	if !imgui.BeginV("Simulation Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	p.frameHistory[p.frameIndex] = deltaTime * 1000.0
	p.frameIndex = (p.frameIndex + 1) % p.historyFrames

	stats := storage.CollectStats()

	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Component Types: %d", len(stats.ComponentCounts)))
	imgui.Text(fmt.Sprintf("Singletons: %d", len(stats.SingletonTypes)))

	var avgFrameTime float32
	for _, ft := range p.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(p.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &p.frameHistory[0], int32(len(p.frameHistory)))

	if imgui.TreeNodeStr("Component Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ComponentStatsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Component")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()

			for _, count := range stats.ComponentCounts {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(count.Type)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", count.Count))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("System Timings") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableHeadersRow()

			for _, system := range scheduler.GetStats().Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(system.Name)
				imgui.TableNextColumn()
				imgui.Text(formatDuration(system.LastDuration))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(system.AvgDuration))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singleton Details") {
		for _, singletonType := range stats.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}

	imgui.End()
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.2f us", float64(d.Nanoseconds())/1000.0)
}

// FrameTimer measures wall-clock delta time between frames.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
