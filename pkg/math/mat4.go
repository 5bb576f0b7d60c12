package math

import "github.com/go-gl/mathgl/mgl64"

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 = mgl64.Mat4

// Identity returns an identity matrix.
func Identity() Mat4 {
	return mgl64.Ident4()
}

// Translate returns a translation matrix.
func Translate(v Vec3) Mat4 {
	return mgl64.Translate3D(v.X, v.Y, v.Z)
}

// Scale returns a uniform scale matrix.
func Scale(s float64) Mat4 {
	return mgl64.Scale3D(s, s, s)
}

// RotateX returns a right-handed rotation around the X axis.
// deg is in degrees.
func RotateX(deg float64) Mat4 {
	return mgl64.HomogRotate3DX(mgl64.DegToRad(deg))
}

// RotateY returns a right-handed rotation around the Y axis.
// deg is in degrees.
func RotateY(deg float64) Mat4 {
	return mgl64.HomogRotate3DY(mgl64.DegToRad(deg))
}

// RotateZ returns a right-handed rotation around the Z axis.
// deg is in degrees.
func RotateZ(deg float64) Mat4 {
	return mgl64.HomogRotate3DZ(mgl64.DegToRad(deg))
}

// RotateEuler returns Rx(r.X) * Ry(r.Y) * Rz(r.Z), angles in degrees.
// Each axis is rotated independently; no quaternion is involved.
func RotateEuler(r Vec3) Mat4 {
	return RotateX(r.X).Mul4(RotateY(r.Y)).Mul4(RotateZ(r.Z))
}

// Perspective returns a perspective projection matrix.
// fovY is in degrees, aspect is width/height.
func Perspective(fovY, aspect, near, far float64) Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(fovY), aspect, near, far)
}

// TransformPoint transforms a 3D point by m (assumes w=1).
func TransformPoint(m Mat4, p Vec3) Vec3 {
	r := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	if r[3] != 0 && r[3] != 1 {
		return Vec3{r[0] / r[3], r[1] / r[3], r[2] / r[3]}
	}
	return Vec3{r[0], r[1], r[2]}
}

// TransformDirection transforms a direction vector (ignores translation).
func TransformDirection(m Mat4, d Vec3) Vec3 {
	r := m.Mul4x1(mgl64.Vec4{d.X, d.Y, d.Z, 0})
	return Vec3{r[0], r[1], r[2]}
}

// ApproxEqual reports whether a and b match element-wise within eps.
func ApproxEqual(a, b Mat4, eps float64) bool {
	return a.ApproxEqualThreshold(b, eps)
}
