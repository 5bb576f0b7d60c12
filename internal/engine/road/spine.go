// Package road builds roads from cubic Bezier spines laid over the terrain.
package road

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/landscape/pkg/math"
)

// Road errors.
var (
	ErrMalformedSpine       = errors.New("malformed road spine")
	ErrInvalidConfiguration = errors.New("invalid ribbon configuration")
)

// TangentEpsilon is how far Tangent moves a parameter off a segment boundary,
// where zero-length handles can leave the derivative undefined.
const TangentEpsilon = 1e-7

// pointsPerSegment is the number of floats each segment appends: two
// handles and one end point.
const pointsPerSegment = 6

// Spine is a road centerline made of cubic Bezier segments. Segment k uses
// control points 3k..3k+3; consecutive segments share their end points.
type Spine struct {
	width  float64
	points []float64 // x0, z0, x1, z1, ...
}

// NewSpine creates a spine with no segments starting at (x0, z0).
func NewSpine(width, x0, z0 float64) *Spine {
	return &Spine{
		width:  width,
		points: []float64{x0, z0},
	}
}

// FromControlPoints creates a spine from a flat x, z sequence whose length
// is 2 + 6k for k >= 1 segments. The slice is copied.
func FromControlPoints(width float64, spine []float64) (*Spine, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %v must be positive", ErrMalformedSpine, width)
	}
	n := len(spine)
	if n < 2+pointsPerSegment || (n-2)%pointsPerSegment != 0 {
		return nil, fmt.Errorf("%w: %d values, want 2+6k with k >= 1", ErrMalformedSpine, n)
	}
	return &Spine{
		width:  width,
		points: append([]float64(nil), spine...),
	}, nil
}

// AddSegment appends a segment from the current end point through handles
// (x1, z1) and (x2, z2) to (x3, z3).
func (s *Spine) AddSegment(x1, z1, x2, z2, x3, z3 float64) {
	s.points = append(s.points, x1, z1, x2, z2, x3, z3)
}

// Width returns the road width.
func (s *Spine) Width() float64 {
	return s.width
}

// SegmentCount returns the number of Bezier segments.
func (s *Spine) SegmentCount() int {
	return (len(s.points) - 2) / pointsPerSegment
}

// ControlPointCount returns the number of control points, 1 + 3*SegmentCount.
func (s *Spine) ControlPointCount() int {
	return len(s.points) / 2
}

// ControlPoint returns control point i.
func (s *Spine) ControlPoint(i int) math.Vec2 {
	return math.Vec2{X: s.points[2*i], Y: s.points[2*i+1]}
}

// Position returns the centerline point at t in [0, SegmentCount()].
// Segment k covers [k, k+1]. Values outside the domain are not checked.
// A spine without segments is its start point.
func (s *Spine) Position(t float64) math.Vec2 {
	if s.SegmentCount() == 0 {
		return s.ControlPoint(0)
	}
	seg, u := s.locate(t)
	p0, p1, p2, p3 := s.segment(seg)

	b0 := (1 - u) * (1 - u) * (1 - u)
	b1 := 3 * (1 - u) * (1 - u) * u
	b2 := 3 * (1 - u) * u * u
	b3 := u * u * u

	return p0.Scale(b0).Add(p1.Scale(b1)).Add(p2.Scale(b2)).Add(p3.Scale(b3))
}

// Tangent returns the direction of travel at t as an angle in degrees,
// measured from +x towards +z. A spine without segments has no direction
// and reports 0.
func (s *Spine) Tangent(t float64) float64 {
	if s.SegmentCount() == 0 {
		return 0
	}
	seg, u := s.locate(t)
	if u <= 0 {
		u = TangentEpsilon
	} else if u >= 1 {
		u = 1 - TangentEpsilon
	}
	p0, p1, p2, p3 := s.segment(seg)

	b0 := (1 - u) * (1 - u)
	b1 := 2 * (1 - u) * u
	b2 := u * u

	d := p1.Sub(p0).Scale(b0).
		Add(p2.Sub(p1).Scale(b1)).
		Add(p3.Sub(p2).Scale(b2)).
		Scale(3)

	return gomath.Atan2(d.Y, d.X) * 180 / gomath.Pi
}

// locate splits t into a segment index and a local parameter. The end of the
// curve maps to the last segment at u = 1.
func (s *Spine) locate(t float64) (int, float64) {
	seg := int(gomath.Floor(t))
	if n := s.SegmentCount(); seg >= n {
		return n - 1, 1
	}
	return seg, t - float64(seg)
}

func (s *Spine) segment(seg int) (p0, p1, p2, p3 math.Vec2) {
	k := 3 * seg
	return s.ControlPoint(k), s.ControlPoint(k + 1), s.ControlPoint(k + 2), s.ControlPoint(k + 3)
}
