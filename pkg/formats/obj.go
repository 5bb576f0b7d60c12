package formats

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/landscape/pkg/math"
)

// OBJFace is a triangle. Each entry indexes the owning object's Positions,
// TexCoords and Normals, zero based.
type OBJFace struct {
	V  [3]int
	VT [3]int
	VN [3]int
}

// OBJObject is one named group of geometry in a Wavefront OBJ file.
type OBJObject struct {
	Name      string
	Positions []math.Vec3
	TexCoords []math.Vec2
	Normals   []math.Vec3
	Faces     []OBJFace
}

// WriteOBJ writes the objects as a single Wavefront OBJ stream. Indices are
// rebased so each object refers only to its own vertices.
func WriteOBJ(w io.Writer, objects []OBJObject) error {
	bw := bufio.NewWriter(w)
	var v, vt, vn int

	fmt.Fprintln(bw, "# landscape")
	for i := range objects {
		o := &objects[i]
		if err := o.check(); err != nil {
			return err
		}
		fmt.Fprintf(bw, "o %s\n", o.Name)
		for _, p := range o.Positions {
			fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
		}
		for _, t := range o.TexCoords {
			fmt.Fprintf(bw, "vt %g %g\n", t.X, t.Y)
		}
		for _, n := range o.Normals {
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}
		for _, f := range o.Faces {
			fmt.Fprint(bw, "f")
			for c := 0; c < 3; c++ {
				fmt.Fprintf(bw, " %d/%d/%d", v+f.V[c]+1, vt+f.VT[c]+1, vn+f.VN[c]+1)
			}
			fmt.Fprintln(bw)
		}
		v += len(o.Positions)
		vt += len(o.TexCoords)
		vn += len(o.Normals)
	}
	return bw.Flush()
}

func (o *OBJObject) check() error {
	for i, f := range o.Faces {
		for c := 0; c < 3; c++ {
			if f.V[c] < 0 || f.V[c] >= len(o.Positions) ||
				f.VT[c] < 0 || f.VT[c] >= len(o.TexCoords) ||
				f.VN[c] < 0 || f.VN[c] >= len(o.Normals) {
				return fmt.Errorf("object %q face %d: index out of range", o.Name, i)
			}
		}
	}
	return nil
}
