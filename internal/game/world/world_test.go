package world

import (
	"bytes"
	"errors"
	gomath "math"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/landscape/internal/config"
	"github.com/Faultbox/landscape/internal/engine/lighting"
	"github.com/Faultbox/landscape/internal/engine/road"
	"github.com/Faultbox/landscape/pkg/formats"
	"github.com/Faultbox/landscape/pkg/math"
)

// planarLevel returns a 5x4 level whose altitude is 0.5x + 0.25z, so every
// interpolated height is exact.
func planarLevel() *formats.Level {
	l := &formats.Level{
		Width:    5,
		Depth:    4,
		Sunlight: []float64{-1, 1, 0},
		Trees:    []formats.TreeSpec{{X: 1, Z: 1}, {X: 3.5, Z: 2.5}},
		Roads: []formats.RoadSpec{
			{Width: 0.5, Spine: []float64{0, 0, 1, 0, 1, 1, 2, 1}},
		},
		Enemies: []formats.EnemySpec{{X: 2, Z: 1, Rotation: 45, Scale: 1}},
	}
	for z := 0; z < l.Depth; z++ {
		for x := 0; x < l.Width; x++ {
			l.Altitudes = append(l.Altitudes, 0.5*float64(x)+0.25*float64(z))
		}
	}
	return l
}

func planar(x, z float64) float64 {
	return 0.5*x + 0.25*z
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := New(planarLevel(), config.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func near(a, b float64) bool {
	return gomath.Abs(a-b) < 1e-9
}

func nearVec(a, b math.Vec3) bool {
	return a.Distance(b) < 1e-9
}

func TestNewBuildsGeometry(t *testing.T) {
	w := newTestWorld(t)

	if got := w.Mesh.TriangleCount(); got != 2*4*3 {
		t.Errorf("terrain triangles = %d, want 24", got)
	}
	if len(w.Roads) != 1 {
		t.Fatalf("roads = %d, want 1", len(w.Roads))
	}
	if got := w.Roads[0].Ribbon.Len(); got != 2*(64+1) {
		t.Errorf("ribbon vertices = %d, want 130", got)
	}
	// Hero, camera and one enemy
	if got := w.Graph.Len(); got != 3 {
		t.Errorf("scene nodes = %d, want 3", got)
	}
}

func TestNewPlacesTrees(t *testing.T) {
	w := newTestWorld(t)
	if len(w.Trees) != 2 {
		t.Fatalf("trees = %d, want 2", len(w.Trees))
	}
	for _, tree := range w.Trees {
		p := tree.Position
		if !near(p.Y, planar(p.X, p.Z)) {
			t.Errorf("tree at (%v, %v) has y %v, want %v", p.X, p.Z, p.Y, planar(p.X, p.Z))
		}
	}
}

func TestNewPlacesEnemies(t *testing.T) {
	w := newTestWorld(t)
	if len(w.Enemies) != 1 {
		t.Fatalf("enemies = %d, want 1", len(w.Enemies))
	}
	tr := w.Graph.Transform(w.Enemies[0].Node)
	if !near(tr.Scale, 0.2) {
		t.Errorf("enemy scale = %v, want 0.2", tr.Scale)
	}
	if !nearVec(tr.Translation, math.Vec3{X: 2, Y: 0.2 + planar(2, 1), Z: 1}) {
		t.Errorf("enemy at %+v", tr.Translation)
	}
	if tr.Rotation.Y != 45 {
		t.Errorf("enemy yaw = %v, want 45", tr.Rotation.Y)
	}

	// Model matrix scales about the enemy's origin
	m := w.EnemyMatrix(w.Enemies[0])
	got := math.TransformPoint(m, math.Vec3{Y: 1})
	if !nearVec(got, tr.Translation.Add(math.Vec3{Y: 0.2})) {
		t.Errorf("enemy top = %+v", got)
	}
}

func TestNewPlacesHeroAndCamera(t *testing.T) {
	w := newTestWorld(t)

	hero := w.Hero.Position()
	if !nearVec(hero, math.Vec3{Y: 0.1}) {
		t.Errorf("hero at %+v, want (0, 0.1, 0)", hero)
	}
	if w.Graph.Parent(w.Camera.Node()) != w.Hero.Node() {
		t.Error("camera is not a child of the hero")
	}
	if !nearVec(w.Camera.Position(), hero.Add(math.Vec3{Y: 0.5, Z: -2})) {
		t.Errorf("camera at %+v", w.Camera.Position())
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	l := planarLevel()
	l.Altitudes = l.Altitudes[:3]
	if _, err := New(l, config.Default()); !errors.Is(err, formats.ErrAltitudeCount) {
		t.Errorf("err = %v, want ErrAltitudeCount", err)
	}

	l = planarLevel()
	l.Roads[0].Spine = []float64{0, 0, 1, 1}
	if _, err := New(l, config.Default()); !errors.Is(err, road.ErrMalformedSpine) {
		t.Errorf("err = %v, want ErrMalformedSpine", err)
	}
}

func TestStepMovesHeroAndCamera(t *testing.T) {
	w := newTestWorld(t)
	w.Hero.Place(2, 1)

	f := w.Step(Forward)
	if f.Tick != 1 || w.Tick() != 1 {
		t.Errorf("tick = %d", f.Tick)
	}
	want := math.Vec3{X: 2, Y: 0.1 + planar(2, 1.4), Z: 1.4}
	if !nearVec(f.Hero, want) {
		t.Errorf("hero at %+v, want %+v", f.Hero, want)
	}
	if !nearVec(f.Camera, f.Hero.Add(math.Vec3{Y: 0.5, Z: -2})) {
		t.Errorf("camera at %+v", f.Camera)
	}
	if !nearVec(math.TransformPoint(f.View, f.Camera), math.Vec3{}) {
		t.Error("view does not center the camera")
	}

	f = w.Step(TurnLeft)
	if f.HeroYaw != 5 {
		t.Errorf("yaw = %v, want 5", f.HeroYaw)
	}
	w.Step(TurnRight)
	f = w.Step(Backward)
	if !near(f.Hero.Z, 1) {
		t.Errorf("hero z after backward = %v, want 1", f.Hero.Z)
	}

	f = w.Step(Idle)
	if f.Tick != 5 {
		t.Errorf("tick = %d, want 5", f.Tick)
	}
}

func TestRunClampsToTerrain(t *testing.T) {
	w := newTestWorld(t)
	cmds, err := ParseScript(strings.Repeat("f", 20))
	if err != nil {
		t.Fatal(err)
	}
	f := w.Run(cmds)
	if f.Hero.Z != 3 || f.Hero.X != 0 {
		t.Errorf("hero at (%v, %v), want (0, 3)", f.Hero.X, f.Hero.Z)
	}
	if !near(f.Hero.Y, 0.1+planar(0, 3)) {
		t.Errorf("hero y = %v", f.Hero.Y)
	}
}

func TestNightMode(t *testing.T) {
	w := newTestWorld(t)
	f := w.Frame()
	if f.Mode != lighting.Day || f.Torch.Lit() {
		t.Fatalf("start mode %v, torch lit %v", f.Mode, f.Torch.Lit())
	}
	if f.Sun.Homogeneous() != [4]float64{-1, 1, 0, 0} {
		t.Errorf("sun = %v", f.Sun.Homogeneous())
	}

	f = w.Step(ToggleNight)
	if f.Mode != lighting.Night || !f.Torch.Lit() {
		t.Errorf("after toggle: mode %v, torch lit %v", f.Mode, f.Torch.Lit())
	}
	if !nearVec(f.Torch.Position, f.Hero.Add(math.Vec3{Y: 0.1, Z: -0.1})) {
		t.Errorf("torch at %+v, hero at %+v", f.Torch.Position, f.Hero)
	}
	if f.SunTerms.Diffuse != 0.1 {
		t.Errorf("night sun diffuse = %v", f.SunTerms.Diffuse)
	}

	w.ToggleNight()
	if w.Frame().Mode != lighting.Day {
		t.Error("ToggleNight did not return to day")
	}
}

func TestStepLogsNightToggle(t *testing.T) {
	w := newTestWorld(t)
	core, logs := observer.New(zapcore.DebugLevel)
	w.log = zap.New(core)

	w.Step(ToggleNight)

	entries := logs.FilterMessage("lighting mode").All()
	if len(entries) != 1 {
		t.Fatalf("expected one lighting mode entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["mode"]; got != lighting.Night.String() {
		t.Errorf("logged mode %v, want %v", got, lighting.Night)
	}
}

func TestStartAtNight(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.Night = true
	w, err := New(planarLevel(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !w.Frame().Torch.Lit() {
		t.Error("torch should be lit when starting at night")
	}
}

func TestWriteOBJ(t *testing.T) {
	w := newTestWorld(t)
	var buf bytes.Buffer
	if err := w.WriteOBJ(&buf); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}

	var v, f, o int
	for _, line := range strings.Split(buf.String(), "\n") {
		switch {
		case strings.HasPrefix(line, "v "):
			v++
		case strings.HasPrefix(line, "f "):
			f++
		case strings.HasPrefix(line, "o "):
			o++
		}
	}
	if o != 2 {
		t.Errorf("objects = %d, want 2", o)
	}
	if v != 20+130 {
		t.Errorf("vertices = %d, want 150", v)
	}
	if f != 24+128 {
		t.Errorf("faces = %d, want 152", f)
	}
}

func TestWritePreview(t *testing.T) {
	w := newTestWorld(t)
	var buf bytes.Buffer
	if err := w.WritePreview(&buf, 0); err != nil {
		t.Fatalf("WritePreview: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("preview is not a PNG")
	}
}
