package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/meadow/ecs"
	"github.com/plus3/meadow/ecs/debugui"
	"github.com/plus3/meadow/sim"
)

// InputSystem translates key presses into action events. Runs first in the
// frame so systems downstream see this frame's actions.
type InputSystem struct {
	Actions    ecs.Singleton[sim.ActionEvents]
	InputState ecs.Singleton[debugui.ImguiInputState]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	if s.InputState.Exists() && s.InputState.Get().WantCaptureKeyboard {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		s.Actions.Get().Write(sim.ActionEvent{Action: sim.ActionChangeWindDirection})
	}
}
