package imaging

import (
	"gonum.org/v1/gonum/mat"
)

// Grid is a single-channel image of real-valued samples stored in row-major
// order.
//
// A Grid with Rows rows and Cols columns holds Rows*Cols samples in Pix; the
// sample at row r and column c is Pix[r*Cols+c]. Either dimension may be
// zero. Grid implements mat.Matrix so it can be passed anywhere gonum accepts
// a matrix, and any mat.Matrix can be converted back with FromMatrix.
//
// # Axis Naming
//
// Rows run along the image height and columns along its width, the same
// index order used by image.Gray16 (y, x). The sensor package calls the row
// axis "x" and the column axis "y".
type Grid struct {
	// Rows is the number of rows (the image height).
	Rows int

	// Cols is the number of columns (the image width).
	Cols int

	// Pix holds the samples, row after row.
	Pix []float64
}

var _ mat.Matrix = (*Grid)(nil)

// NewGrid allocates a zero-filled grid of the given shape.
// Negative dimensions are treated as zero.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{Rows: rows, Cols: cols, Pix: make([]float64, rows*cols)}
}

// GridFrom wraps pix as a rows×cols grid without copying.
// It panics if len(pix) != rows*cols.
func GridFrom(rows, cols int, pix []float64) *Grid {
	if rows < 0 || cols < 0 || len(pix) != rows*cols {
		panic(mat.ErrShape)
	}
	return &Grid{Rows: rows, Cols: cols, Pix: pix}
}

// FromMatrix copies any gonum matrix into a new Grid.
func FromMatrix(m mat.Matrix) *Grid {
	if g, ok := m.(*Grid); ok {
		return g.Clone()
	}
	r, c := m.Dims()
	g := NewGrid(r, c)
	for i := 0; i < r; i++ {
		row := g.Row(i)
		for j := range row {
			row[j] = m.At(i, j)
		}
	}
	return g
}

// Dims returns the number of rows and columns.
func (g *Grid) Dims() (r, c int) { return g.Rows, g.Cols }

// At returns the sample at row i, column j. It panics if the index is out of
// range.
func (g *Grid) At(i, j int) float64 {
	if uint(i) >= uint(g.Rows) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(g.Cols) {
		panic(mat.ErrColAccess)
	}
	return g.Pix[i*g.Cols+j]
}

// Set stores v at row i, column j. It panics if the index is out of range.
func (g *Grid) Set(i, j int, v float64) {
	if uint(i) >= uint(g.Rows) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(g.Cols) {
		panic(mat.ErrColAccess)
	}
	g.Pix[i*g.Cols+j] = v
}

// T returns the implicit transpose of the grid.
func (g *Grid) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// Row returns the backing slice of row i. Writes through it modify the grid.
func (g *Grid) Row(i int) []float64 {
	if uint(i) >= uint(g.Rows) {
		panic(mat.ErrRowAccess)
	}
	return g.Pix[i*g.Cols : (i+1)*g.Cols]
}

// Empty reports whether the grid holds no samples.
func (g *Grid) Empty() bool { return g.Rows == 0 || g.Cols == 0 }

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	pix := make([]float64, len(g.Pix))
	copy(pix, g.Pix)
	return &Grid{Rows: g.Rows, Cols: g.Cols, Pix: pix}
}

// Fill sets every sample to v.
func (g *Grid) Fill(v float64) {
	for i := range g.Pix {
		g.Pix[i] = v
	}
}

// Equal reports whether two grids have the same shape and identical samples.
func (g *Grid) Equal(o *Grid) bool {
	if g.Rows != o.Rows || g.Cols != o.Cols {
		return false
	}
	for i, v := range g.Pix {
		if o.Pix[i] != v {
			return false
		}
	}
	return true
}
