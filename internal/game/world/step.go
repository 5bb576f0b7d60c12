package world

import (
	"go.uber.org/zap"

	"github.com/Faultbox/landscape/internal/engine/character"
	"github.com/Faultbox/landscape/internal/engine/lighting"
	"github.com/Faultbox/landscape/pkg/math"
)

// Frame is the pose and lighting a renderer needs for one tick.
type Frame struct {
	Tick       uint64
	Hero       math.Vec3
	HeroYaw    float64
	Camera     math.Vec3
	View       math.Mat4
	Projection math.Mat4
	Mode       lighting.Mode
	Sun        lighting.Sun
	SunTerms   lighting.Terms
	Torch      lighting.Torch
	ClearColor float64
}

// Step applies one command and returns the resulting frame.
func (w *World) Step(cmd Command) Frame {
	switch cmd {
	case Forward:
		w.Hero.MoveForward()
	case Backward:
		w.Hero.MoveBackward()
	case TurnLeft:
		w.Hero.TurnLeft()
	case TurnRight:
		w.Hero.TurnRight()
	case ToggleNight:
		w.ToggleNight()
	}
	w.tick++
	w.Lights.Update(w.Hero.Position(), w.Hero.Yaw())

	f := w.Frame()
	if cmd != Idle {
		w.log.Debug("step",
			zap.Uint64("tick", f.Tick),
			zap.Stringer("command", cmd),
			zap.Float64("x", f.Hero.X),
			zap.Float64("y", f.Hero.Y),
			zap.Float64("z", f.Hero.Z),
			zap.String("facing", character.CompassNames[character.Compass(f.HeroYaw)]),
		)
	}
	return f
}

// Run applies the commands in order and returns the last frame.
func (w *World) Run(cmds []Command) Frame {
	f := w.Frame()
	for _, c := range cmds {
		f = w.Step(c)
	}
	return f
}

// Frame returns the current frame without advancing the world.
func (w *World) Frame() Frame {
	return Frame{
		Tick:       w.tick,
		Hero:       w.Hero.Position(),
		HeroYaw:    w.Hero.Yaw(),
		Camera:     w.Camera.Position(),
		View:       w.Camera.ViewMatrix(),
		Projection: w.Camera.Projection(w.aspect),
		Mode:       w.Lights.Mode,
		Sun:        w.Lights.Sun,
		SunTerms:   w.Lights.SunTerms(),
		Torch:      w.Lights.Torch,
		ClearColor: lighting.ClearColor(w.Lights.Mode),
	}
}
