package sensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Location is a focus point in normalized coordinates.
//
// Under CenteredSquare, (0, 0) is the image centre and (-1, -1) and (1, 1)
// are the corners of the square that circumscribes the image. X runs along
// the rows (height) and Y along the columns (width). Values outside [-1, 1]
// are accepted and simply address points further outside the image.
type Location struct {
	X, Y float64
}

// Vector returns the location as the 2-vector (X, Y).
func (l Location) Vector() *mat.VecDense {
	return mat.NewVecDense(2, []float64{l.X, l.Y})
}

// Bounds is a half-open pixel rectangle: rows [XStart, XEnd) and columns
// [YStart, YEnd). Any of the values may lie outside the image.
type Bounds struct {
	XStart, XEnd int
	YStart, YEnd int
}

// Rows returns the requested number of rows, or 0 if XEnd < XStart.
func (b Bounds) Rows() int { return span(b.XStart, b.XEnd) }

// Cols returns the requested number of columns, or 0 if YEnd < YStart.
func (b Bounds) Cols() int { return span(b.YStart, b.YEnd) }

// Empty reports whether the rectangle covers no pixels.
func (b Bounds) Empty() bool { return b.Rows() == 0 || b.Cols() == 0 }

func (b Bounds) String() string {
	return fmt.Sprintf("[%d:%d, %d:%d]", b.XStart, b.XEnd, b.YStart, b.YEnd)
}

func span(start, end int) int {
	if end < start {
		return 0
	}
	return end - start
}

// Embedding places a location inside the square that circumscribes an
// image. X and Y are the location in the square's pixel coordinates;
// HeightAdj and WidthAdj are the offsets of the image's first row and
// column within the square.
type Embedding struct {
	X, Y                float64
	HeightAdj, WidthAdj float64
}

// CoordinateSystem converts normalized locations into pixel space for an
// image of the given shape.
type CoordinateSystem interface {
	Embed(height, width int, loc Location) Embedding
}

// CenteredSquare embeds the image, centred, in a side×side square with
// side = max(height, width), padding the shorter dimension equally on both
// ends. Normalized coordinates span the square, not the image: (0, 0) maps
// to the square's centre and (±1, ±1) to its corners.
type CenteredSquare struct{}

// Embed implements CoordinateSystem.
func (CenteredSquare) Embed(height, width int, loc Location) Embedding {
	side := height
	if width > side {
		side = width
	}
	mid := float64(side) / 2

	return Embedding{
		X:         loc.X*mid + mid,
		Y:         loc.Y*mid + mid,
		HeightAdj: float64(side-height) / 2,
		WidthAdj:  float64(side-width) / 2,
	}
}

// PixelLimit bounds every mapped coordinate to [-PixelLimit, PixelLimit]
// before truncation. Locations far enough out to exceed it, including
// infinities, land on the matching side of the image; NaN maps to
// -PixelLimit.
const PixelLimit = 1 << 30

// DefaultCoordinates is the coordinate system used when none is configured.
var DefaultCoordinates CoordinateSystem = CenteredSquare{}

// MapBounds returns the size×size rectangle centred on loc in an image of
// height×width pixels, using DefaultCoordinates.
func MapBounds(height, width int, loc Location, size int) Bounds {
	return MapBoundsIn(DefaultCoordinates, height, width, loc, size)
}

// MapBoundsIn is MapBounds for an arbitrary coordinate system.
//
// Start and end are truncated toward zero independently, which can leave a
// span one pixel short of size. The end is then moved so that both spans
// are exactly size, which biases the rectangle toward the higher index.
func MapBoundsIn(cs CoordinateSystem, height, width int, loc Location, size int) Bounds {
	e := cs.Embed(height, width, loc)
	half := float64(size) / 2

	b := Bounds{
		XStart: toPixel(e.X - half - e.HeightAdj),
		XEnd:   toPixel(e.X + half - e.HeightAdj),
		YStart: toPixel(e.Y - half - e.WidthAdj),
		YEnd:   toPixel(e.Y + half - e.WidthAdj),
	}

	if b.XEnd-b.XStart != size {
		b.XEnd = b.XStart + size
	}
	if b.YEnd-b.YStart != size {
		b.YEnd = b.YStart + size
	}
	return b
}

// toPixel truncates v toward zero after clamping it to PixelLimit.
func toPixel(v float64) int {
	switch {
	case math.IsNaN(v):
		return -PixelLimit
	case v > PixelLimit:
		return PixelLimit
	case v < -PixelLimit:
		return -PixelLimit
	}
	return int(v)
}
