package character

import (
	"errors"

	"github.com/Faultbox/landscape/pkg/math"
	"github.com/Faultbox/landscape/pkg/scene"
)

// ErrNoTerrain is returned when a hero is created without terrain.
var ErrNoTerrain = errors.New("hero needs terrain")

// Hero is the player-controlled scene node. Its yaw is rotation Y in degrees;
// yaw 0 faces +z.
type Hero struct {
	graph    *scene.Graph
	node     scene.Node
	terrain  TerrainQuery
	settings Settings
}

// NewHero adds the hero to the graph as a root node standing on the terrain
// at the origin.
func NewHero(g *scene.Graph, terrain TerrainQuery, settings Settings) (*Hero, error) {
	if terrain == nil {
		return nil, ErrNoTerrain
	}
	node, err := g.Add(scene.NewTransform(), scene.Nil)
	if err != nil {
		return nil, err
	}
	h := &Hero{
		graph:    g,
		node:     node,
		terrain:  terrain,
		settings: settings,
	}
	h.Place(0, 0)
	return h, nil
}

// Node returns the hero's scene node.
func (h *Hero) Node() scene.Node {
	return h.node
}

// Settings returns the movement settings.
func (h *Hero) Settings() Settings {
	return h.settings
}

// Position returns the hero's translation.
func (h *Hero) Position() math.Vec3 {
	return h.graph.Transform(h.node).Translation
}

// Yaw returns the hero's rotation about y in degrees.
func (h *Hero) Yaw() float64 {
	return h.graph.Transform(h.node).Rotation.Y
}

// SetYaw sets the hero's rotation about y in degrees.
func (h *Hero) SetYaw(deg float64) {
	h.graph.Transform(h.node).Rotation.Y = deg
}

// TurnLeft rotates the hero counter-clockwise by one turn angle.
func (h *Hero) TurnLeft() {
	h.graph.Transform(h.node).Rotation.Y += h.settings.TurnAngle
}

// TurnRight rotates the hero clockwise by one turn angle.
func (h *Hero) TurnRight() {
	h.graph.Transform(h.node).Rotation.Y -= h.settings.TurnAngle
}

// MoveForward steps along the heading.
func (h *Hero) MoveForward() {
	h.step(h.settings.StepLength)
}

// MoveBackward steps against the heading.
func (h *Hero) MoveBackward() {
	h.step(-h.settings.StepLength)
}

// Place moves the hero to (x, z), clamped to the terrain, and stands it on
// the ground.
func (h *Hero) Place(x, z float64) {
	width, depth := h.terrain.Size()
	t := h.graph.Transform(h.node)
	t.Translation.X = math.Clamp(x, 0, float64(max(width-1, 0)))
	t.Translation.Z = math.Clamp(z, 0, float64(max(depth-1, 0)))
	t.Translation.Y = h.settings.Size + h.terrain.Altitude(t.Translation.X, t.Translation.Z)
}

func (h *Hero) step(length float64) {
	d := Heading(h.Yaw()).Scale(length)
	p := h.Position()
	h.Place(p.X+d.X, p.Z+d.Y)
}
