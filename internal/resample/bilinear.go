package resample

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ironsheep/glimpse-sensor/internal/imaging"
)

// Bilinear interpolates between the four nearest source samples at full
// float64 precision.
//
// Output sample centres are mapped onto the source with the half-pixel
// convention, (k+0.5)*n/m - 0.5, and clamped to the source edge. When the
// source and target shapes match the result is an exact copy.
type Bilinear struct{}

// Resample implements Resampler.
func (Bilinear) Resample(src mat.Matrix, rows, cols int) *imaging.Grid {
	if done, ok := trivial(src, rows, cols); ok {
		return done
	}
	g := asGrid(src)
	out := imaging.NewGrid(rows, cols)

	ys := taps(g.Rows, rows)
	xs := taps(g.Cols, cols)
	for r, ty := range ys {
		top, bot := g.Row(ty.i0), g.Row(ty.i1)
		row := out.Row(r)
		for c, tx := range xs {
			a := lerp(top[tx.i0], top[tx.i1], tx.f)
			b := lerp(bot[tx.i0], bot[tx.i1], tx.f)
			row[c] = lerp(a, b, ty.f)
		}
	}
	return out
}

// tap is one output coordinate expressed as a blend of two source indices.
type tap struct {
	i0, i1 int
	f      float64
}

func taps(n, m int) []tap {
	ts := make([]tap, m)
	ratio := float64(n) / float64(m)
	maxPos := float64(n - 1)
	for k := range ts {
		pos := (float64(k)+0.5)*ratio - 0.5
		if pos < 0 {
			pos = 0
		}
		if pos > maxPos {
			pos = maxPos
		}
		i0 := int(pos)
		i1 := i0 + 1
		if i1 > n-1 {
			i1 = n - 1
		}
		ts[k] = tap{i0: i0, i1: i1, f: pos - float64(i0)}
	}
	return ts
}

// lerp is exact at t == 0 and preserves constants.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
