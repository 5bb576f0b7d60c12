// Package world assembles a playable landscape from a level description.
package world

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/landscape/internal/config"
	"github.com/Faultbox/landscape/internal/engine/camera"
	"github.com/Faultbox/landscape/internal/engine/character"
	"github.com/Faultbox/landscape/internal/engine/lighting"
	"github.com/Faultbox/landscape/internal/engine/road"
	"github.com/Faultbox/landscape/internal/engine/terrain"
	"github.com/Faultbox/landscape/internal/logger"
	"github.com/Faultbox/landscape/pkg/formats"
	"github.com/Faultbox/landscape/pkg/math"
	"github.com/Faultbox/landscape/pkg/scene"
)

// EnemyScale shrinks the scale given in a level to world size.
const EnemyScale = 0.2

// Tree is a tree standing on the terrain.
type Tree struct {
	Position math.Vec3
}

// Road is a spine and the ribbon generated from it.
type Road struct {
	Spine  *road.Spine
	Ribbon *road.Ribbon
}

// Enemy is a root scene node placed on the terrain.
type Enemy struct {
	Node scene.Node
}

// World holds everything built from one level.
type World struct {
	Terrain *terrain.HeightField
	Mesh    *terrain.Mesh
	Roads   []Road
	Trees   []Tree
	Enemies []Enemy

	Graph  *scene.Graph
	Hero   *character.Hero
	Camera *camera.FollowCamera
	Lights *lighting.Rig

	aspect float64
	tick   uint64
	log    *zap.Logger
}

// New builds the terrain mesh and road ribbons once and places the hero,
// its camera and the level's objects.
func New(level *formats.Level, cfg *config.Config) (*World, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}
	log := logger.Named("world")

	field, err := terrain.FromAltitudes(level.AltitudeGrid())
	if err != nil {
		return nil, fmt.Errorf("building terrain: %w", err)
	}
	mesh, err := field.GenerateMesh()
	if err != nil {
		return nil, fmt.Errorf("building terrain mesh: %w", err)
	}
	log.Info("terrain built",
		zap.Int("width", level.Width),
		zap.Int("depth", level.Depth),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Float64("min_altitude", mesh.Bounds.Min.Y),
		zap.Float64("max_altitude", mesh.Bounds.Max.Y),
	)

	w := &World{
		Terrain: field,
		Mesh:    mesh,
		Graph:   scene.NewGraph(),
		Lights:  lighting.NewRig(lighting.NewSun(level.SunDirection())),
		aspect:  cfg.Camera.Aspect,
		log:     log,
	}

	opts := road.RibbonOptions{
		SamplesPerSegment:  cfg.Road.SamplesPerSegment,
		TexturesPerSegment: cfg.Road.TexturesPerSegment,
		SurfaceOffset:      cfg.Road.SurfaceOffset,
	}
	for i, spec := range level.Roads {
		spine, err := road.FromControlPoints(spec.Width, spec.Spine)
		if err != nil {
			return nil, fmt.Errorf("road %d: %w", i, err)
		}
		ribbon, err := spine.GenerateRibbon(field, opts)
		if err != nil {
			return nil, fmt.Errorf("road %d: %w", i, err)
		}
		w.Roads = append(w.Roads, Road{Spine: spine, Ribbon: ribbon})
		log.Debug("road built",
			zap.Int("road", i),
			zap.Int("segments", spine.SegmentCount()),
			zap.Int("vertices", ribbon.Len()),
		)
	}

	for _, spec := range level.Trees {
		w.AddTree(spec.X, spec.Z)
	}
	for _, spec := range level.Enemies {
		if _, err := w.AddEnemy(spec.X, spec.Z, spec.Rotation, spec.Scale); err != nil {
			return nil, err
		}
	}

	w.Hero, err = character.NewHero(w.Graph, field, character.Settings{
		StepLength: cfg.Hero.StepLength,
		TurnAngle:  cfg.Hero.TurnAngle,
		Size:       cfg.Hero.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("placing hero: %w", err)
	}
	w.Camera, err = camera.NewFollowCamera(w.Graph, w.Hero.Node(), camera.Settings{
		Offset:   vec3(cfg.Camera.Offset),
		Rotation: vec3(cfg.Camera.Rotation),
		FovY:     cfg.Camera.FovY,
		Near:     cfg.Camera.Near,
		Far:      cfg.Camera.Far,
	})
	if err != nil {
		return nil, fmt.Errorf("attaching camera: %w", err)
	}

	if cfg.Simulation.Night {
		w.Lights.Toggle()
	}
	w.Lights.Update(w.Hero.Position(), w.Hero.Yaw())

	log.Info("world ready",
		zap.Int("roads", len(w.Roads)),
		zap.Int("trees", len(w.Trees)),
		zap.Int("enemies", len(w.Enemies)),
		zap.Int("nodes", w.Graph.Len()),
		zap.Stringer("mode", w.Lights.Mode),
	)
	return w, nil
}

// AddTree places a tree on the terrain at (x, z).
func (w *World) AddTree(x, z float64) Tree {
	t := Tree{Position: math.Vec3{X: x, Y: w.Terrain.Altitude(x, z), Z: z}}
	w.Trees = append(w.Trees, t)
	return t
}

// AddEnemy places an enemy at (x, z) with a yaw in degrees. The level scale
// is reduced by EnemyScale and the enemy is lifted by its scaled size.
func (w *World) AddEnemy(x, z, rotation, scale float64) (Enemy, error) {
	scale *= EnemyScale
	t := scene.NewTransform()
	t.Translation = math.Vec3{X: x, Y: scale + w.Terrain.Altitude(x, z), Z: z}
	t.Rotation.Y = rotation
	t.Scale = scale

	node, err := w.Graph.Add(t, scene.Nil)
	if err != nil {
		return Enemy{}, fmt.Errorf("placing enemy: %w", err)
	}
	e := Enemy{Node: node}
	w.Enemies = append(w.Enemies, e)
	return e, nil
}

// EnemyMatrix returns an enemy's model matrix.
func (w *World) EnemyMatrix(e Enemy) math.Mat4 {
	return w.Graph.GlobalMatrix(e.Node)
}

// Tick returns the number of steps taken.
func (w *World) Tick() uint64 {
	return w.tick
}

// ToggleNight switches between day and night lighting.
func (w *World) ToggleNight() {
	w.Lights.Toggle()
	w.Lights.Update(w.Hero.Position(), w.Hero.Yaw())
	w.log.Debug("lighting mode", zap.Stringer("mode", w.Lights.Mode))
}

func vec3(v [3]float64) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
