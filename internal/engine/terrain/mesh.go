package terrain

import (
	"fmt"

	"github.com/Faultbox/landscape/pkg/math"
)

// GenerateMesh builds the terrain mesh from the current grid.
// Vertex i sits at grid point (i mod width, i / width) with y = altitude;
// its texture coordinate is the same grid point. Each cell contributes two
// triangles with one normal each.
func (h *HeightField) GenerateMesh() (*Mesh, error) {
	width, depth := h.width, h.depth
	if width < 2 || depth < 2 {
		return nil, fmt.Errorf("%w: grid is %dx%d, need at least 2x2",
			ErrInvalidConfiguration, width, depth)
	}
	if width*depth > MaxVertices {
		return nil, fmt.Errorf("%w: %dx%d = %d vertices, max %d",
			ErrSizeOverflow, width, depth, width*depth, MaxVertices)
	}

	vertexCount := width * depth
	triangleCount := 2 * (width - 1) * (depth - 1)

	mesh := &Mesh{
		Width:       width,
		Depth:       depth,
		Vertices:    make([]math.Vec3, vertexCount),
		TexCoords:   make([]math.Vec2, vertexCount),
		FaceNormals: make([]math.Vec3, 0, triangleCount),
		Indices:     make([]uint16, 0, 3*triangleCount),
	}

	mesh.Bounds = Bounds{
		Min: math.Vec3{X: 0, Y: h.altitude[0][0], Z: 0},
		Max: math.Vec3{X: float64(width - 1), Y: h.altitude[0][0], Z: float64(depth - 1)},
	}

	for z := 0; z < depth; z++ {
		for x := 0; x < width; x++ {
			i := z*width + x
			mesh.Vertices[i] = math.Vec3{X: float64(x), Y: h.altitude[x][z], Z: float64(z)}
			mesh.TexCoords[i] = math.Vec2{X: float64(x), Y: float64(z)}
			updateBounds(&mesh.Bounds, mesh.Vertices[i])
		}
	}

	for z := 0; z < depth-1; z++ {
		for x := 0; x < width-1; x++ {
			for _, tri := range [2][3][2]int{lowerTriangle, upperTriangle} {
				var idx [3]uint16
				for c, off := range tri {
					idx[c] = uint16((z+off[1])*width + x + off[0])
				}
				n, ok := math.FaceNormal(mesh.Vertices[idx[0]], mesh.Vertices[idx[1]], mesh.Vertices[idx[2]])
				if !ok {
					return nil, fmt.Errorf("%w: cell (%d, %d)", ErrDegenerateGeometry, x, z)
				}
				mesh.FaceNormals = append(mesh.FaceNormals, n)
				mesh.Indices = append(mesh.Indices, idx[:]...)
			}
		}
	}

	return mesh, nil
}

// Helper functions

func updateBounds(b *Bounds, p math.Vec3) {
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
}
