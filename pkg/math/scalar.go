package math

// Lerp returns a + f*(b-a).
func Lerp(a, b, f float64) float64 {
	return a + f*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FaceNormal returns the unit normal of triangle (p0, p1, p2), computed as
// (p1-p0) x (p2-p0). ok is false when the triangle is degenerate.
func FaceNormal(p0, p1, p2 Vec3) (n Vec3, ok bool) {
	c := p1.Sub(p0).Cross(p2.Sub(p0))
	l := c.Length()
	if l == 0 {
		return Vec3{}, false
	}
	return c.Scale(1 / l), true
}
