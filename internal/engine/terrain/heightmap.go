package terrain

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/landscape/pkg/math"
)

// Height field errors.
var (
	ErrInvalidConfiguration = errors.New("invalid height field configuration")
	ErrSizeOverflow         = fmt.Errorf("%w: grid exceeds 16-bit index range", ErrInvalidConfiguration)
	ErrDegenerateGeometry   = errors.New("degenerate terrain triangle")
)

// MaxVertices is the largest width*depth whose vertex indices fit in uint16.
const MaxVertices = 1 << 16

// Every grid cell is split into two triangles sharing the diagonal from
// corner (x1, z2) to corner (x2, z1). Entries select the low (0) or high (1)
// grid line along x and z, listed in mesh winding order.
var (
	lowerTriangle = [3][2]int{{0, 0}, {0, 1}, {1, 0}}
	upperTriangle = [3][2]int{{0, 1}, {1, 1}, {1, 0}}
)

// HeightField is a regular grid of altitude samples.
type HeightField struct {
	width    int
	depth    int
	altitude [][]float64 // [x][z]
}

// New creates a flat height field with width samples along x and depth along z.
func New(width, depth int) *HeightField {
	width = max(width, 0)
	depth = max(depth, 0)
	return &HeightField{
		width:    width,
		depth:    depth,
		altitude: makeGrid(width, depth),
	}
}

// FromAltitudes creates a height field from an [x][z] grid. The grid is copied.
func FromAltitudes(alt [][]float64) (*HeightField, error) {
	width := len(alt)
	if width == 0 {
		return New(0, 0), nil
	}
	depth := len(alt[0])
	h := New(width, depth)
	for x := 0; x < width; x++ {
		if len(alt[x]) != depth {
			return nil, fmt.Errorf("%w: column %d has %d samples, want %d",
				ErrInvalidConfiguration, x, len(alt[x]), depth)
		}
		copy(h.altitude[x], alt[x])
	}
	return h, nil
}

// Size returns the grid dimensions.
func (h *HeightField) Size() (width, depth int) {
	return h.width, h.depth
}

// Resize changes the grid dimensions, keeping the overlapping altitudes.
// A mesh generated before the resize no longer matches the field.
func (h *HeightField) Resize(width, depth int) {
	width = max(width, 0)
	depth = max(depth, 0)
	old := h.altitude
	h.altitude = makeGrid(width, depth)
	for x := 0; x < width && x < len(old); x++ {
		copy(h.altitude[x], old[x])
	}
	h.width = width
	h.depth = depth
}

// GridAltitude returns the altitude stored at grid point (x, z).
func (h *HeightField) GridAltitude(x, z int) float64 {
	return h.altitude[x][z]
}

// SetGridAltitude sets the altitude at grid point (x, z).
func (h *HeightField) SetGridAltitude(x, z int, alt float64) {
	h.altitude[x][z] = alt
}

// Altitude returns the terrain height at a continuous point. Coordinates
// outside the grid saturate to its edge. The value is interpolated over the
// triangle of the enclosing cell that contains the point.
func (h *HeightField) Altitude(x, z float64) float64 {
	if h.width == 0 || h.depth == 0 {
		return 0
	}
	x = math.Clamp(x, 0, float64(h.width-1))
	z = math.Clamp(z, 0, float64(h.depth-1))

	x1, x2 := int(gomath.Floor(x)), int(gomath.Ceil(x))
	z1, z2 := int(gomath.Floor(z)), int(gomath.Ceil(z))
	fx1, fx2 := float64(x1), float64(x2)
	fz1, fz2 := float64(z1), float64(z2)
	xs, zs := [2]int{x1, x2}, [2]int{z1, z2}

	p := math.Vec2{X: x, Y: z}
	if p.Distance(math.Vec2{X: fx1, Y: fz1}) < p.Distance(math.Vec2{X: fx2, Y: fz2}) {
		// Lower triangle: walk up from the (x1, z2) corner to row z, then along x.
		a := h.corner(xs, zs, lowerTriangle[1])
		q1 := h.corner(xs, zs, lowerTriangle[0])
		q2 := h.corner(xs, zs, lowerTriangle[2])
		if z1 != z2 {
			f := (fz2 - z) / (fz2 - fz1)
			q1 = a.Lerp(q1, f)
			q2 = a.Lerp(q2, f)
		}
		if q2.X == fx1 {
			return q2.Y
		}
		return q1.Lerp(q2, (x-fx1)/(q2.X-fx1)).Y
	}

	// Upper triangle: walk down from the (x2, z1) corner to row z, then along x.
	a := h.corner(xs, zs, upperTriangle[2])
	q1 := h.corner(xs, zs, upperTriangle[0])
	q2 := h.corner(xs, zs, upperTriangle[1])
	if z1 != z2 {
		f := (z - fz1) / (fz2 - fz1)
		q1 = a.Lerp(q1, f)
		q2 = a.Lerp(q2, f)
	}
	if q1.X == fx2 {
		return q1.Y
	}
	return q1.Lerp(q2, (x-q1.X)/(fx2-q1.X)).Y
}

// corner returns the cell corner selected by off as a world position. xs and
// zs hold the floor and ceiling of the query, which coincide along any axis
// where the query is integral.
func (h *HeightField) corner(xs, zs [2]int, off [2]int) math.Vec3 {
	x, z := xs[off[0]], zs[off[1]]
	return math.Vec3{X: float64(x), Y: h.altitude[x][z], Z: float64(z)}
}

func makeGrid(width, depth int) [][]float64 {
	grid := make([][]float64, width)
	for x := range grid {
		grid[x] = make([]float64, depth)
	}
	return grid
}
