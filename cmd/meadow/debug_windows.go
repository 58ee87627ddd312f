package main

import (
	"fmt"
	"math"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/meadow/ecs"
	"github.com/plus3/meadow/ecs/debugui"
	"github.com/plus3/meadow/sim"
)

func spawnDebugWindows(storage *ecs.Storage, scheduler *ecs.Scheduler) {
	spawnWindWindow(storage)
	spawnStatsWindow(storage, scheduler)
}

func spawnWindWindow(storage *ecs.Storage) {
	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			var wind *sim.Wind
			if !storage.ReadSingleton(&wind) {
				return
			}
			var tuning *sim.Tuning
			if !storage.ReadSingleton(&tuning) {
				return
			}

			imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(280, 220), imgui.CondOnce)

			if imgui.BeginV("Wind & Tuning", nil, 0) {
				angle := wind.Vec.Angle() * 180 / math.Pi
				imgui.Text(fmt.Sprintf("Direction: %.1f deg", angle))
				imgui.Text(fmt.Sprintf("Magnitude: %.2f", wind.Vec.Length()))

				if imgui.Button("Rotate Wind") {
					var actions *sim.ActionEvents
					if storage.ReadSingleton(&actions) {
						actions.Write(sim.ActionEvent{Action: sim.ActionChangeWindDirection})
					}
				}

				imgui.Separator()

				interval := float32(tuning.SpawnInterval)
				if imgui.SliderFloat("Spawn Interval", &interval, 0.1, 10.0) {
					tuning.SpawnInterval = float64(interval)
				}

				chance := float32(tuning.FreeFallChance)
				if imgui.SliderFloat("Hop Chance", &chance, 0.0, 1.0) {
					tuning.FreeFallChance = float64(chance)
				}

				speed := float32(tuning.MaxMovementSpeed)
				if imgui.SliderFloat("Max Speed", &speed, 0.1, 10.0) {
					tuning.MaxMovementSpeed = float64(speed)
				}
			}
			imgui.End()
		},
	})
}

func spawnStatsWindow(storage *ecs.Storage, scheduler *ecs.Scheduler) {
	panel := debugui.NewSimStatsPanel(100)
	timer := debugui.NewFrameTimer()

	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			panel.Render(storage, scheduler, timer.GetDeltaTime())
		},
	})
}
