package world

import (
	"fmt"
	"io"

	"github.com/Faultbox/landscape/internal/engine/terrain"
	"github.com/Faultbox/landscape/pkg/formats"
	"github.com/Faultbox/landscape/pkg/math"
)

// TerrainObject converts the terrain mesh for OBJ export. Each face uses its
// own flat normal.
func TerrainObject(m *terrain.Mesh) formats.OBJObject {
	o := formats.OBJObject{
		Name:      "terrain",
		Positions: m.Vertices,
		TexCoords: m.TexCoords,
		Normals:   m.FaceNormals,
		Faces:     make([]formats.OBJFace, m.TriangleCount()),
	}
	for f := range o.Faces {
		var face formats.OBJFace
		for c := 0; c < 3; c++ {
			i := int(m.Indices[3*f+c])
			face.V[c] = i
			face.VT[c] = i
			face.VN[c] = f
		}
		o.Faces[f] = face
	}
	return o
}

// RoadObject converts a road ribbon for OBJ export.
func RoadObject(name string, r Road) formats.OBJObject {
	idx := r.Ribbon.TriangleIndices()
	o := formats.OBJObject{
		Name:      name,
		Positions: r.Ribbon.Vertices,
		TexCoords: r.Ribbon.TexCoords,
		Normals:   []math.Vec3{{Y: 1}},
		Faces:     make([]formats.OBJFace, len(idx)/3),
	}
	for f := range o.Faces {
		for c := 0; c < 3; c++ {
			i := int(idx[3*f+c])
			o.Faces[f].V[c] = i
			o.Faces[f].VT[c] = i
		}
	}
	return o
}

// WriteOBJ writes the terrain and every road as a Wavefront OBJ stream.
func (w *World) WriteOBJ(out io.Writer) error {
	objects := []formats.OBJObject{TerrainObject(w.Mesh)}
	for i, r := range w.Roads {
		objects = append(objects, RoadObject(fmt.Sprintf("road%d", i), r))
	}
	return formats.WriteOBJ(out, objects)
}

// WritePreview writes a grey-scale PNG of the terrain altitudes.
func (w *World) WritePreview(out io.Writer, size int) error {
	width, depth := w.Terrain.Size()
	grid := make([][]float64, width)
	for x := range grid {
		grid[x] = make([]float64, depth)
		for z := range grid[x] {
			grid[x][z] = w.Terrain.GridAltitude(x, z)
		}
	}
	return formats.WriteHeightPreview(out, grid, size)
}
