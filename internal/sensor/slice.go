package sensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ironsheep/glimpse-sensor/internal/imaging"
)

// ClipBounds clamps each coordinate of b independently: x values to
// [0, height] and y values to [0, width]. A rectangle lying entirely
// outside the image clips to an empty one.
func ClipBounds(b Bounds, height, width int) Bounds {
	return Bounds{
		XStart: clip(b.XStart, 0, height),
		XEnd:   clip(b.XEnd, 0, height),
		YStart: clip(b.YStart, 0, width),
		YEnd:   clip(b.YEnd, 0, width),
	}
}

// clip limits v to [lo, hi] inclusive.
func clip(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SliceWithPad copies the region b of src into a new grid of exactly
// b.Rows()×b.Cols() samples. Positions of b that fall outside src are zero.
//
// SliceWithPad never fails: bounds partly or wholly outside src, bounds
// larger than src, and regions that clip to nothing all produce a
// correctly shaped result. A reversed span (end < start) is treated as
// empty. src is only read.
func SliceWithPad(src mat.Matrix, b Bounds) *imaging.Grid {
	out := imaging.NewGrid(b.Rows(), b.Cols())
	if out.Empty() {
		return out
	}

	height, width := src.Dims()
	valid := ClipBounds(b, height, width)
	if valid.Empty() {
		return out
	}

	// Offset of the valid region inside the requested one.
	dr := valid.XStart - b.XStart
	dc := valid.YStart - b.YStart
	n := valid.Cols()

	switch m := src.(type) {
	case *imaging.Grid:
		for i := 0; i < valid.Rows(); i++ {
			copy(out.Row(dr+i)[dc:dc+n], m.Row(valid.XStart+i)[valid.YStart:valid.YEnd])
		}
	case mat.RawMatrixer:
		raw := m.RawMatrix()
		for i := 0; i < valid.Rows(); i++ {
			off := (valid.XStart+i)*raw.Stride + valid.YStart
			copy(out.Row(dr+i)[dc:dc+n], raw.Data[off:off+n])
		}
	default:
		for i := 0; i < valid.Rows(); i++ {
			row := out.Row(dr + i)
			for j := 0; j < n; j++ {
				row[dc+j] = src.At(valid.XStart+i, valid.YStart+j)
			}
		}
	}
	return out
}

// GetPatch returns the size×size patch centred on loc, zero-padded where it
// extends past img.
func GetPatch(img mat.Matrix, loc Location, size int) *imaging.Grid {
	return getPatch(DefaultCoordinates, img, loc, size)
}

func getPatch(cs CoordinateSystem, img mat.Matrix, loc Location, size int) *imaging.Grid {
	height, width := img.Dims()
	return SliceWithPad(img, MapBoundsIn(cs, height, width, loc, size))
}
