package resample

import (
	"image"

	"gonum.org/v1/gonum/mat"

	"github.com/ironsheep/glimpse-sensor/internal/imaging"
)

// Resampler resizes a single-channel grid.
//
// Resample must return a new grid of exactly rows×cols for any source,
// including an empty one, and must be deterministic for fixed inputs. It
// must not modify src.
type Resampler interface {
	Resample(src mat.Matrix, rows, cols int) *imaging.Grid
}

// Func adapts an ordinary function to the Resampler interface.
type Func func(src mat.Matrix, rows, cols int) *imaging.Grid

// Resample calls f(src, rows, cols).
func (f Func) Resample(src mat.Matrix, rows, cols int) *imaging.Grid {
	return f(src, rows, cols)
}

// Default is the resampler used when none is configured.
var Default Resampler = Bilinear{}

// viaImage runs an image-library resize over the source's 16-bit
// quantisation and decodes the result. Empty sources yield zeros and
// constant sources yield the constant, so scale never matters for them.
func viaImage(src mat.Matrix, rows, cols int, resize func(img *image.Gray16, width, height int) image.Image) *imaging.Grid {
	if done, ok := trivial(src, rows, cols); ok {
		return done
	}
	g := asGrid(src)
	rng := imaging.RangeOf(g)
	if rng.Constant() {
		out := imaging.NewGrid(rows, cols)
		out.Fill(rng.Lo)
		return out
	}

	out := imaging.Dequantize(resize(imaging.Quantize(g, rng), cols, rows), rng)
	if out.Rows != rows || out.Cols != cols {
		// Libraries that round target sizes would break the shape contract.
		fixed := imaging.NewGrid(rows, cols)
		for r := 0; r < rows && r < out.Rows; r++ {
			copy(fixed.Row(r), out.Row(r))
		}
		return fixed
	}
	return out
}

// trivial handles zero-sized targets and empty sources.
func trivial(src mat.Matrix, rows, cols int) (*imaging.Grid, bool) {
	if rows <= 0 || cols <= 0 {
		return imaging.NewGrid(rows, cols), true
	}
	r, c := src.Dims()
	if r == 0 || c == 0 {
		return imaging.NewGrid(rows, cols), true
	}
	return nil, false
}

func asGrid(m mat.Matrix) *imaging.Grid {
	if g, ok := m.(*imaging.Grid); ok {
		return g
	}
	return imaging.FromMatrix(m)
}
