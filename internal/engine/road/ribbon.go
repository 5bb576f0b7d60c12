package road

import (
	"fmt"

	"github.com/Faultbox/landscape/pkg/math"
)

// AltitudeSource answers terrain height queries.
type AltitudeSource interface {
	Altitude(x, z float64) float64
}

// RibbonOptions controls ribbon sampling.
type RibbonOptions struct {
	SamplesPerSegment  int     // Centerline samples per Bezier segment
	TexturesPerSegment float64 // Texture repeats along one segment
	SurfaceOffset      float64 // Lift above the terrain to avoid z-fighting
}

// DefaultRibbonOptions returns the sampling used for level roads.
func DefaultRibbonOptions() RibbonOptions {
	return RibbonOptions{
		SamplesPerSegment:  64,
		TexturesPerSegment: 16,
		SurfaceOffset:      0.001,
	}
}

// Ribbon is road geometry in triangle-strip order: each centerline sample
// contributes the edge at tangent-90 degrees, then the edge at tangent+90.
type Ribbon struct {
	Vertices  []math.Vec3
	Normals   []math.Vec3
	TexCoords []math.Vec2
}

// Len returns the number of strip vertices.
func (r *Ribbon) Len() int {
	return len(r.Vertices)
}

// TriangleIndices converts the strip into a triangle list with consistent
// winding.
func (r *Ribbon) TriangleIndices() []uint32 {
	n := len(r.Vertices)
	if n < 3 {
		return nil
	}
	out := make([]uint32, 0, 3*(n-2))
	for i := 0; i < n-2; i++ {
		a, b, c := uint32(i), uint32(i+1), uint32(i+2)
		if i%2 == 1 {
			a, b = b, a
		}
		out = append(out, a, b, c)
	}
	return out
}

// up is the normal of every road vertex; roads are flat across.
var up = math.Vec3{Y: 1}

// GenerateRibbon samples the spine and offsets each sample by half the road
// width on both sides. Both edges take the terrain altitude at the
// centerline plus opts.SurfaceOffset.
func (s *Spine) GenerateRibbon(src AltitudeSource, opts RibbonOptions) (*Ribbon, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: no altitude source", ErrInvalidConfiguration)
	}
	if opts.SamplesPerSegment <= 0 {
		return nil, fmt.Errorf("%w: %d samples per segment", ErrInvalidConfiguration, opts.SamplesPerSegment)
	}
	segments := s.SegmentCount()
	if segments < 1 {
		return nil, fmt.Errorf("%w: spine has no segments", ErrMalformedSpine)
	}

	samples := segments * opts.SamplesPerSegment
	ratio := opts.TexturesPerSegment / float64(opts.SamplesPerSegment)
	half := s.width / 2

	r := &Ribbon{
		Vertices:  make([]math.Vec3, 0, 2*(samples+1)),
		Normals:   make([]math.Vec3, 0, 2*(samples+1)),
		TexCoords: make([]math.Vec2, 0, 2*(samples+1)),
	}

	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(opts.SamplesPerSegment)
		c := s.Position(t)
		off := math.FromAngle(s.Tangent(t) + 90).Scale(half)
		y := src.Altitude(c.X, c.Y) + opts.SurfaceOffset
		v := float64(i) * ratio

		a, b := c.Sub(off), c.Add(off)
		r.Vertices = append(r.Vertices,
			math.Vec3{X: a.X, Y: y, Z: a.Y},
			math.Vec3{X: b.X, Y: y, Z: b.Y},
		)
		r.Normals = append(r.Normals, up, up)
		r.TexCoords = append(r.TexCoords, math.Vec2{X: 0, Y: v}, math.Vec2{X: 1, Y: v})
	}

	return r, nil
}
