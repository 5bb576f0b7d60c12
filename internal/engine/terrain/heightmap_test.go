package terrain

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rampField returns a field whose altitudes are a deterministic, non-planar
// function of the grid point.
func rampField(t *testing.T, width, depth int) *HeightField {
	t.Helper()
	h := New(width, depth)
	for x := 0; x < width; x++ {
		for z := 0; z < depth; z++ {
			h.SetGridAltitude(x, z, float64(x*x)*0.5+float64(z)*1.25-float64(x*z)*0.3)
		}
	}
	return h
}

func TestAltitudeFlatPlane(t *testing.T) {
	h := New(5, 4)
	for x := 0; x < 5; x++ {
		for z := 0; z < 4; z++ {
			h.SetGridAltitude(x, z, 3.5)
		}
	}

	points := [][2]float64{
		{0, 0}, {4, 3}, {0, 3}, {4, 0},
		{0.5, 0.5}, {1.25, 2.75}, {3.999, 0.001}, {2, 1.5}, {2.5, 1},
		{-3, -3}, {10, 10}, {-1, 2.2},
	}
	for _, p := range points {
		assert.InDelta(t, 3.5, h.Altitude(p[0], p[1]), 1e-12, "at (%v, %v)", p[0], p[1])
	}
}

func TestAltitudeTwoByTwo(t *testing.T) {
	h, err := FromAltitudes([][]float64{{0, 0}, {0, 10}})
	require.NoError(t, err)

	assert.Equal(t, 10.0, h.Altitude(1, 1))
	assert.Equal(t, 0.0, h.Altitude(0, 0))

	// (0.5, 0.5) lies on the shared diagonal between (0, 1) and (1, 0),
	// both of which are 0. Interpolation gives exactly 0 here, not a value
	// strictly between the corner heights; do not change this expectation.
	assert.InDelta(t, 0.0, h.Altitude(0.5, 0.5), 1e-12)

	// Inside the upper triangle the (1, 1) corner contributes.
	mid := h.Altitude(0.75, 0.75)
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 10.0)
	assert.InDelta(t, 5.0, mid, 1e-12)
}

func TestAltitudeGridPointsExact(t *testing.T) {
	h := rampField(t, 6, 5)
	for x := 0; x < 6; x++ {
		for z := 0; z < 5; z++ {
			assert.InDelta(t, h.GridAltitude(x, z), h.Altitude(float64(x), float64(z)), 1e-12,
				"grid point (%d, %d)", x, z)
		}
	}
}

func TestAltitudeAlongGridLines(t *testing.T) {
	h := rampField(t, 4, 4)

	// Integral x: linear between the two z neighbours
	want := h.GridAltitude(2, 1) + 0.3*(h.GridAltitude(2, 2)-h.GridAltitude(2, 1))
	assert.InDelta(t, want, h.Altitude(2, 1.3), 1e-12)

	// Integral z: linear between the two x neighbours
	want = h.GridAltitude(1, 2) + 0.6*(h.GridAltitude(2, 2)-h.GridAltitude(1, 2))
	assert.InDelta(t, want, h.Altitude(1.6, 2), 1e-12)
}

func TestAltitudeMatchesTrianglePlane(t *testing.T) {
	h := rampField(t, 3, 3)

	// Lower triangle of cell (1, 1): corners (1,1), (1,2), (2,1)
	a00 := h.GridAltitude(1, 1)
	a01 := h.GridAltitude(1, 2)
	a10 := h.GridAltitude(2, 1)
	u, v := 0.2, 0.3
	want := a00 + u*(a10-a00) + v*(a01-a00)
	assert.InDelta(t, want, h.Altitude(1+u, 1+v), 1e-9)

	// Upper triangle: corners (1,2), (2,2), (2,1)
	a11 := h.GridAltitude(2, 2)
	u, v = 0.8, 0.7
	want = a11 + (1-u)*(a01-a11) + (1-v)*(a10-a11)
	assert.InDelta(t, want, h.Altitude(1+u, 1+v), 1e-9)
}

func TestAltitudeContinuousAcrossDiagonal(t *testing.T) {
	h := rampField(t, 4, 4)

	for _, s := range []float64{0.1, 0.35, 0.5, 0.8} {
		// Point on the diagonal x + z = 3 inside cell (1, 1)
		x, z := 1+s, 2-s
		onDiag := h.Altitude(x, z)
		for _, d := range []float64{1e-3, 1e-6, 1e-9} {
			below := h.Altitude(x-d, z-d)
			above := h.Altitude(x+d, z+d)
			assert.InDelta(t, onDiag, below, 10*d, "below diagonal, s=%v d=%v", s, d)
			assert.InDelta(t, onDiag, above, 10*d, "above diagonal, s=%v d=%v", s, d)
		}
	}
}

func TestAltitudeClampsOutOfRange(t *testing.T) {
	h := rampField(t, 4, 3)

	assert.Equal(t, h.Altitude(0, 0), h.Altitude(-5, -0.5))
	assert.Equal(t, h.Altitude(3, 2), h.Altitude(100, 7))
	assert.Equal(t, h.Altitude(3, 1.5), h.Altitude(3.5, 1.5))
	assert.Equal(t, h.Altitude(1.25, 0), h.Altitude(1.25, -2))
}

func TestAltitudeNeverNaN(t *testing.T) {
	h := rampField(t, 5, 5)
	for x := -1.0; x <= 5.0; x += 0.125 {
		for z := -1.0; z <= 5.0; z += 0.125 {
			got := h.Altitude(x, z)
			assert.False(t, gomath.IsNaN(got), "NaN at (%v, %v)", x, z)
			assert.False(t, gomath.IsInf(got, 0), "Inf at (%v, %v)", x, z)
		}
	}
}

func TestAltitudeEmptyField(t *testing.T) {
	assert.Equal(t, 0.0, New(0, 0).Altitude(1, 1))
}

func TestFromAltitudesRagged(t *testing.T) {
	_, err := FromAltitudes([][]float64{{0, 1}, {2}})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestFromAltitudesCopies(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	h, err := FromAltitudes(src)
	require.NoError(t, err)
	src[0][0] = 99
	assert.Equal(t, 1.0, h.GridAltitude(0, 0))
}

func TestResizeKeepsOverlap(t *testing.T) {
	h := rampField(t, 3, 3)
	keep := h.GridAltitude(2, 1)

	h.Resize(5, 2)
	w, d := h.Size()
	assert.Equal(t, 5, w)
	assert.Equal(t, 2, d)
	assert.Equal(t, keep, h.GridAltitude(2, 1))
	assert.Equal(t, 0.0, h.GridAltitude(4, 1))
}
