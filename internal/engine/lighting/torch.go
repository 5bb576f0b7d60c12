package lighting

import (
	gomath "math"

	"github.com/Faultbox/landscape/pkg/math"
)

// Torch spot light parameters.
const (
	TorchCutoff            = 30.0 // Half-angle of the cone in degrees
	TorchExponent          = 2.0
	TorchLinearAttenuation = 1.0
	TorchOffset            = 0.1 // Distance behind and above the hero
)

// Torch is a spot light carried by the hero.
type Torch struct {
	Position  math.Vec3 // World position
	Direction math.Vec3 // Spot direction, horizontal
	Cutoff    float64
	Exponent  float64
	Linear    float64
	Terms     Terms
}

// TorchFor places the torch just behind and above a hero at pos facing yaw
// degrees. The torch is lit only at night.
func TorchFor(pos math.Vec3, yaw float64, m Mode) Torch {
	rad := yaw * gomath.Pi / 180
	sin, cos := gomath.Sin(rad), gomath.Cos(rad)

	t := Torch{
		Position: math.Vec3{
			X: pos.X - sin*TorchOffset,
			Y: pos.Y + TorchOffset,
			Z: pos.Z - cos*TorchOffset,
		},
		Direction: math.Vec3{X: sin, Y: 0, Z: cos},
		Cutoff:    TorchCutoff,
		Exponent:  TorchExponent,
		Linear:    TorchLinearAttenuation,
		Terms:     Off,
	}
	if m == Night {
		t.Terms = Terms{Ambient: 0.9, Diffuse: 0.9, Specular: 0.9}
	}
	return t
}

// Lit reports whether the torch contributes any light.
func (t Torch) Lit() bool {
	return t.Terms != Off
}

// Homogeneous returns the position with w = 1, marking the light as
// positional.
func (t Torch) Homogeneous() [4]float64 {
	return [4]float64{t.Position.X, t.Position.Y, t.Position.Z, 1}
}

// Rig is the complete light setup for one frame.
type Rig struct {
	Mode  Mode
	Sun   Sun
	Torch Torch
}

// NewRig creates a daytime rig with the given sun.
func NewRig(sun Sun) *Rig {
	return &Rig{Mode: Day, Sun: sun}
}

// Toggle switches between day and night.
func (r *Rig) Toggle() {
	if r.Mode == Day {
		r.Mode = Night
	} else {
		r.Mode = Day
	}
}

// Update re-attaches the torch to the hero.
func (r *Rig) Update(heroPos math.Vec3, heroYaw float64) {
	r.Torch = TorchFor(heroPos, heroYaw, r.Mode)
}

// SunTerms returns the sun's intensities for the current mode.
func (r *Rig) SunTerms() Terms {
	return r.Sun.Terms(r.Mode)
}
