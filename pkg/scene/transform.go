// Package scene implements the transform hierarchy that places the hero, the
// camera and other moving objects in world space.
package scene

import "github.com/Faultbox/landscape/pkg/math"

// Transform is a translation, Euler rotation and uniform scale.
type Transform struct {
	Translation math.Vec3
	Rotation    math.Vec3 // Degrees, applied X then Y then Z
	Scale       float64   // Uniform, nonnegative
}

// NewTransform returns an identity transform.
func NewTransform() Transform {
	return Transform{Scale: 1}
}

// LocalMatrix returns Translate * Rotate * Scale.
// It is computed on every call.
func (t Transform) LocalMatrix() math.Mat4 {
	return math.Translate(t.Translation).
		Mul4(math.RotateEuler(t.Rotation)).
		Mul4(math.Scale(t.Scale))
}
