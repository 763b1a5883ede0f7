package sensor

import (
	"github.com/golang/glog"
	"gonum.org/v1/gonum/mat"

	"github.com/ironsheep/glimpse-sensor/internal/imaging"
)

// Glimpse is a stack of Depth square patches of side Size, ordered from the
// finest level (index 0, extent Size) to the coarsest.
type Glimpse struct {
	Size    int
	Patches []*imaging.Grid
}

// Depth returns the number of patches.
func (g *Glimpse) Depth() int { return len(g.Patches) }

// Shape returns (depth, size, size).
func (g *Glimpse) Shape() (depth, rows, cols int) {
	return len(g.Patches), g.Size, g.Size
}

// At returns sample (r, c) of the patch at the given level.
func (g *Glimpse) At(level, r, c int) float64 {
	return g.Patches[level].At(r, c)
}

// Vector flattens the glimpse level by level, then row by row, into a
// vector of length depth*size*size.
func (g *Glimpse) Vector() *mat.VecDense {
	n := g.Size * g.Size
	data := make([]float64, 0, len(g.Patches)*n)
	for _, p := range g.Patches {
		data = append(data, p.Pix...)
	}
	return mat.NewVecDense(len(data), data)
}

// Glimpse extracts a glimpse of img centred on loc.
//
// Level i takes a LevelSide(i)-pixel patch around loc, zero-padded where it
// leaves the image, and resamples it to Size×Size. The configuration is
// validated before any work is done; that is the only source of error.
func (c Config) Glimpse(img mat.Matrix, loc Location) (*Glimpse, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cs := c.coordinates()
	rs := c.resampler()
	height, width := img.Dims()

	g := &Glimpse{Size: c.Size, Patches: make([]*imaging.Grid, c.Depth)}
	for i := range g.Patches {
		side := c.LevelSide(i)
		b := MapBoundsIn(cs, height, width, loc, side)
		patch := SliceWithPad(img, b)
		glog.V(2).Infof("glimpse level %d at %+v: side=%d bounds=%v", i, loc, side, b)
		g.Patches[i] = rs.Resample(patch, c.Size, c.Size)
	}
	return g, nil
}

// GlimpseSensor extracts a depth-level glimpse of img at loc with the
// default resampler and coordinate system.
func GlimpseSensor(img mat.Matrix, loc Location, size int, scale float64, depth int) (*Glimpse, error) {
	return Config{Size: size, Scale: scale, Depth: depth}.Glimpse(img, loc)
}
