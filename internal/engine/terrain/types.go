// Package terrain provides the height field that backs the landscape: altitude
// queries at continuous points and static mesh generation from the grid.
package terrain

import "github.com/Faultbox/landscape/pkg/math"

// Vertex is one corner of the face-expanded terrain stream, ready for GPU upload.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds the terrain geometry generated from a height field.
// Vertices are shared between faces through Indices; FaceNormals holds one
// normal per triangle in index order.
type Mesh struct {
	Width       int
	Depth       int
	Vertices    []math.Vec3
	TexCoords   []math.Vec2
	FaceNormals []math.Vec3
	Indices     []uint16
	Bounds      Bounds
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Expand returns one Vertex per index. Each corner carries the normal of the
// face it belongs to, so the terrain renders with hard per-triangle shading.
func (m *Mesh) Expand() []Vertex {
	out := make([]Vertex, len(m.Indices))
	for i, idx := range m.Indices {
		p := m.Vertices[idx]
		n := m.FaceNormals[i/3]
		uv := m.TexCoords[idx]
		out[i] = Vertex{
			Position: [3]float32{float32(p.X), float32(p.Y), float32(p.Z)},
			Normal:   [3]float32{float32(n.X), float32(n.Y), float32(n.Z)},
			TexCoord: [2]float32{float32(uv.X), float32(uv.Y)},
		}
	}
	return out
}

// Interleaved flattens the face-expanded stream into
// [x y z nx ny nz u v] records.
func (m *Mesh) Interleaved() []float32 {
	verts := m.Expand()
	data := make([]float32, 0, VertexStride*len(verts))
	for _, v := range verts {
		data = append(data, v.Position[:]...)
		data = append(data, v.Normal[:]...)
		data = append(data, v.TexCoord[:]...)
	}
	return data
}

// VertexStride is the number of floats per vertex in Interleaved output.
const VertexStride = 8
