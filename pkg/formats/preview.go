package formats

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// ErrEmptyGrid is returned when there is nothing to draw.
var ErrEmptyGrid = errors.New("empty altitude grid")

// HeightImage renders an [x][z] altitude grid as a grey-scale image, one
// pixel per sample, lowest black and highest white. Image rows follow z.
func HeightImage(grid [][]float64) (*image.Gray, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width, depth := len(grid), len(grid[0])

	lo, hi := grid[0][0], grid[0][0]
	for _, col := range grid {
		for _, a := range col {
			lo = min(lo, a)
			hi = max(hi, a)
		}
	}

	img := image.NewGray(image.Rect(0, 0, width, depth))
	for x, col := range grid {
		for z, a := range col {
			var level uint8
			if hi > lo {
				level = uint8((a - lo) / (hi - lo) * 255)
			}
			img.SetGray(x, z, color.Gray{Y: level})
		}
	}
	return img, nil
}

// WriteHeightPreview writes a PNG of the altitude grid scaled so its longer
// side is size pixels. A size of 0 keeps one pixel per sample.
func WriteHeightPreview(w io.Writer, grid [][]float64, size int) error {
	src, err := HeightImage(grid)
	if err != nil {
		return err
	}
	if size <= 0 {
		return png.Encode(w, src)
	}

	b := src.Bounds()
	dw, dh := size, size
	if b.Dx() > b.Dy() {
		dh = max(1, size*b.Dy()/b.Dx())
	} else if b.Dy() > b.Dx() {
		dw = max(1, size*b.Dx()/b.Dy())
	}
	dst := image.NewGray(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return png.Encode(w, dst)
}
