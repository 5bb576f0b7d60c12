package road

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/landscape/pkg/math"
)

// altitudeFunc adapts a function to AltitudeSource.
type altitudeFunc func(x, z float64) float64

func (f altitudeFunc) Altitude(x, z float64) float64 { return f(x, z) }

func flat(h float64) AltitudeSource {
	return altitudeFunc(func(_, _ float64) float64 { return h })
}

func TestDefaultRibbonOptions(t *testing.T) {
	opts := DefaultRibbonOptions()
	assert.Equal(t, 64, opts.SamplesPerSegment)
	assert.Equal(t, 16.0, opts.TexturesPerSegment)
	assert.Equal(t, 0.001, opts.SurfaceOffset)
}

func TestGenerateRibbonCounts(t *testing.T) {
	s := smoothSpine(t)
	for _, sps := range []int{1, 4, 64} {
		opts := DefaultRibbonOptions()
		opts.SamplesPerSegment = sps
		r, err := s.GenerateRibbon(flat(0), opts)
		require.NoError(t, err)

		want := 2 * (s.SegmentCount()*sps + 1)
		assert.Equal(t, want, r.Len(), "sps=%d", sps)
		assert.Len(t, r.Normals, want)
		assert.Len(t, r.TexCoords, want)
	}
}

func TestGenerateRibbonGeometry(t *testing.T) {
	s := smoothSpine(t)
	opts := RibbonOptions{SamplesPerSegment: 8, TexturesPerSegment: 2, SurfaceOffset: 0.001}
	r, err := s.GenerateRibbon(flat(2), opts)
	require.NoError(t, err)

	for i := 0; i < r.Len()/2; i++ {
		tt := float64(i) / 8
		a, b := r.Vertices[2*i], r.Vertices[2*i+1]

		// Edges are one road width apart, centred on the spine
		assert.InDelta(t, s.Width(), a.Distance(b), 1e-9, "sample %d", i)
		mid := a.Add(b).Scale(0.5)
		c := s.Position(tt)
		assert.InDelta(t, c.X, mid.X, 1e-9)
		assert.InDelta(t, c.Y, mid.Z, 1e-9)

		// The cross-section is perpendicular to the direction of travel
		dir := math.FromAngle(s.Tangent(tt))
		across := b.XZ().Sub(a.XZ())
		assert.InDelta(t, 0, across.Dot(dir), 1e-9)

		// The second vertex of each pair lies at tangent+90 degrees
		assert.Greater(t, dir.X*across.Y-dir.Y*across.X, 0.0)

		assert.InDelta(t, 2.001, a.Y, 1e-12)
		assert.InDelta(t, 2.001, b.Y, 1e-12)
		assert.Equal(t, up, r.Normals[2*i])
		assert.Equal(t, up, r.Normals[2*i+1])

		v := float64(i) * 2 / 8
		assert.Equal(t, math.Vec2{X: 0, Y: v}, r.TexCoords[2*i])
		assert.Equal(t, math.Vec2{X: 1, Y: v}, r.TexCoords[2*i+1])
	}
}

func TestGenerateRibbonDefaultTextureRate(t *testing.T) {
	s := smoothSpine(t)
	r, err := s.GenerateRibbon(flat(0), DefaultRibbonOptions())
	require.NoError(t, err)

	// Sixteen repeats per segment
	last := r.TexCoords[r.Len()-1]
	assert.InDelta(t, 16*float64(s.SegmentCount()), last.Y, 1e-9)
}

func TestGenerateRibbonUsesCenterlineAltitude(t *testing.T) {
	// A road heading along +z over terrain that rises with x: both edges
	// take the height under the centerline, so the road stays level across.
	s, err := FromControlPoints(2, []float64{2, 0, 2, 1, 2, 2, 2, 3})
	require.NoError(t, err)
	slope := altitudeFunc(func(x, _ float64) float64 { return x })

	r, err := s.GenerateRibbon(slope, RibbonOptions{SamplesPerSegment: 4, SurfaceOffset: 0.5})
	require.NoError(t, err)

	for i := 0; i < r.Len(); i += 2 {
		a, b := r.Vertices[i], r.Vertices[i+1]
		assert.InDelta(t, 3, a.X, 1e-9)
		assert.InDelta(t, 1, b.X, 1e-9)
		assert.InDelta(t, 2.5, a.Y, 1e-9)
		assert.InDelta(t, 2.5, b.Y, 1e-9)
	}
}

func TestGenerateRibbonErrors(t *testing.T) {
	s := smoothSpine(t)

	_, err := s.GenerateRibbon(nil, DefaultRibbonOptions())
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = s.GenerateRibbon(flat(0), RibbonOptions{})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewSpine(1, 0, 0).GenerateRibbon(flat(0), DefaultRibbonOptions())
	assert.ErrorIs(t, err, ErrMalformedSpine)
}

func TestTriangleIndices(t *testing.T) {
	r := &Ribbon{Vertices: make([]math.Vec3, 6)}
	assert.Equal(t, []uint32{
		0, 1, 2,
		2, 1, 3,
		2, 3, 4,
		4, 3, 5,
	}, r.TriangleIndices())

	assert.Nil(t, (&Ribbon{Vertices: make([]math.Vec3, 2)}).TriangleIndices())
}

func TestTriangleIndicesFaceUp(t *testing.T) {
	s := smoothSpine(t)
	r, err := s.GenerateRibbon(flat(0), RibbonOptions{SamplesPerSegment: 16})
	require.NoError(t, err)

	idx := r.TriangleIndices()
	require.Len(t, idx, 3*(r.Len()-2))
	for f := 0; f < len(idx); f += 3 {
		n, ok := math.FaceNormal(r.Vertices[idx[f]], r.Vertices[idx[f+1]], r.Vertices[idx[f+2]])
		if !ok {
			continue
		}
		assert.Greater(t, n.Y, 0.0, "triangle %d", f/3)
	}
}
