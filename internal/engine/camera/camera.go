// Package camera provides the third-person camera that follows the hero.
package camera

import (
	"github.com/Faultbox/landscape/pkg/math"
	"github.com/Faultbox/landscape/pkg/scene"
)

// Default follow camera settings.
const (
	DefaultFovY = 60.0
	DefaultNear = 0.5
	DefaultFar  = 20.0
)

// Settings places the camera relative to its target and sets up the lens.
type Settings struct {
	Offset   math.Vec3 // Translation in the target's frame
	Rotation math.Vec3 // Euler angles in degrees in the target's frame
	FovY     float64   // Vertical field of view in degrees
	Near     float64
	Far      float64
}

// DefaultSettings returns a camera behind and above the target, turned to
// face the same way the target does.
func DefaultSettings() Settings {
	return Settings{
		Offset:   math.Vec3{X: 0, Y: 0.5, Z: -2},
		Rotation: math.Vec3{X: 0, Y: 180, Z: 0},
		FovY:     DefaultFovY,
		Near:     DefaultNear,
		Far:      DefaultFar,
	}
}

// FollowCamera is a scene node parented to a target. It inherits the
// target's motion through the graph and never moves on its own.
type FollowCamera struct {
	graph *scene.Graph
	node  scene.Node

	FovY float64
	Near float64
	Far  float64
}

// NewFollowCamera adds a camera node below target.
func NewFollowCamera(g *scene.Graph, target scene.Node, s Settings) (*FollowCamera, error) {
	t := scene.NewTransform()
	t.Translation = s.Offset
	t.Rotation = s.Rotation
	node, err := g.Add(t, target)
	if err != nil {
		return nil, err
	}
	return &FollowCamera{
		graph: g,
		node:  node,
		FovY:  s.FovY,
		Near:  s.Near,
		Far:   s.Far,
	}, nil
}

// Node returns the camera's scene node.
func (c *FollowCamera) Node() scene.Node {
	return c.node
}

// Position returns the camera position in world space.
func (c *FollowCamera) Position() math.Vec3 {
	return c.graph.GlobalTranslation(c.node)
}

// Rotation returns the camera's world Euler angles in degrees.
func (c *FollowCamera) Rotation() math.Vec3 {
	return c.graph.GlobalRotation(c.node)
}

// ViewMatrix returns the world-to-camera transform: the inverse rotations
// applied X, Y, Z in turn, then the inverse translation.
func (c *FollowCamera) ViewMatrix() math.Mat4 {
	r := c.Rotation()
	return math.RotateX(-r.X).
		Mul4(math.RotateY(-r.Y)).
		Mul4(math.RotateZ(-r.Z)).
		Mul4(math.Translate(c.Position().Neg()))
}

// Projection returns the perspective projection for a viewport aspect ratio.
func (c *FollowCamera) Projection(aspect float64) math.Mat4 {
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}
