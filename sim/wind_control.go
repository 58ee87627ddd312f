package sim

import (
	"log"
	"math"

	"github.com/plus3/meadow/ecs"
)

// WindRotationStep is how far one ChangeWindDirection action rotates the
// wind, counterclockwise in radians.
const WindRotationStep = math.Pi / 8

// WindControlSystem reacts to ChangeWindDirection actions by rotating the
// wind vector one step counterclockwise, preserving its magnitude. Other
// actions are ignored.
type WindControlSystem struct {
	Wind    ecs.Singleton[Wind]
	Actions ecs.Reader[ActionEvent]
}

func (s *WindControlSystem) Execute(frame *ecs.UpdateFrame) {
	for _, event := range s.Actions.Read() {
		if event.Action != ActionChangeWindDirection {
			continue
		}

		wind := s.Wind.Get()
		oldAngle := wind.Vec.Angle()
		wind.Vec = wind.Vec.Rotate(WindRotationStep)
		log.Printf("sim: wind direction changed from %.3f to %.3f rad", oldAngle, wind.Vec.Angle())
	}
}
