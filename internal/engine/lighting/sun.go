// Package lighting describes the scene lights: a directional sun and a torch
// carried by the hero at night.
package lighting

import (
	"github.com/Faultbox/landscape/pkg/math"
)

// Mode selects the lighting preset.
type Mode int

// Lighting modes.
const (
	Day Mode = iota
	Night
)

func (m Mode) String() string {
	switch m {
	case Day:
		return "day"
	case Night:
		return "night"
	default:
		return "unknown"
	}
}

// Terms are the grey-scale ambient, diffuse and specular intensities of a light.
type Terms struct {
	Ambient  float64
	Diffuse  float64
	Specular float64
}

// Off is a light that contributes nothing.
var Off = Terms{}

// Sun is a directional light. Direction points towards the sun.
type Sun struct {
	Direction math.Vec3
}

// NewSun creates a sun from a level's sunlight vector.
func NewSun(dir [3]float64) Sun {
	return Sun{Direction: math.Vec3{X: dir[0], Y: dir[1], Z: dir[2]}}
}

// Homogeneous returns the direction with w = 0, marking the light as
// directional.
func (s Sun) Homogeneous() [4]float64 {
	return [4]float64{s.Direction.X, s.Direction.Y, s.Direction.Z, 0}
}

// Terms returns the sun's intensities for a mode.
func (s Sun) Terms(m Mode) Terms {
	if m == Night {
		return Terms{Ambient: 0.1, Diffuse: 0.1, Specular: 0.1}
	}
	return Terms{Ambient: 0.5, Diffuse: 1, Specular: 1}
}

// ClearColor returns the grey level of the sky for a mode.
func ClearColor(m Mode) float64 {
	if m == Night {
		return 0.2
	}
	return 0.9
}
