package sensor

import (
	"fmt"
	"math"
	"testing"
)

var (
	testHeights = []int{1000, 300, 500, 2053}
	testWidths  = []int{1000, 700, 55, 2000}
	testLocs    = []Location{{0, 0}, {-1, -1}, {1, 1}, {-1, 1}, {-7, -7}, {0.33, -0.71}}
	testSizes   = []int{50, 100, 20, 3, 1}
)

func TestMapBounds_SideLengthIsSize(t *testing.T) {
	for _, height := range testHeights {
		for _, width := range testWidths {
			for _, loc := range testLocs {
				for _, size := range testSizes {
					b := MapBounds(height, width, loc, size)
					if b.XEnd-b.XStart != size || b.YEnd-b.YStart != size {
						t.Errorf("MapBounds(%d, %d, %+v, %d) = %v: spans %dx%d, want %dx%d",
							height, width, loc, size, b, b.XEnd-b.XStart, b.YEnd-b.YStart, size, size)
					}
				}
			}
		}
	}
}

func TestMapBounds(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
		loc           Location
		size          int
		want          Bounds
	}{
		{"centre of square image", 500, 500, Location{0, 0}, 20, Bounds{240, 260, 240, 260}},
		{"centre of tall image", 300, 700, Location{0, 0}, 50, Bounds{125, 175, 325, 375}},
		{"corner of tall image", 300, 700, Location{-1, -1}, 50, Bounds{-225, -175, -25, 25}},
		{"bottom-right corner", 500, 500, Location{1, 1}, 20, Bounds{490, 510, 490, 510}},
		{"truncation extends end", 500, 500, Location{-1, -1}, 3, Bounds{-1, 2, -1, 2}},
		{"odd size in range", 500, 500, Location{1, 1}, 3, Bounds{498, 501, 498, 501}},
		{"patch larger than image", 10, 10, Location{0, 0}, 40, Bounds{-15, 25, -15, 25}},
		{"far outside", 100, 100, Location{5, -5}, 10, Bounds{295, 305, -205, -195}},
		{"wide image column offset", 2053, 2000, Location{0, 0}, 50, Bounds{1001, 1051, 975, 1025}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapBounds(tt.height, tt.width, tt.loc, tt.size)
			if got != tt.want {
				t.Errorf("MapBounds(%d, %d, %+v, %d) = %v, want %v",
					tt.height, tt.width, tt.loc, tt.size, got, tt.want)
			}
		})
	}
}

func TestMapBounds_NonFiniteAndHugeLocations(t *testing.T) {
	const L = PixelLimit
	tests := []struct {
		name string
		loc  Location
		want Bounds
	}{
		{"huge positive x, huge negative y", Location{1e300, -1e300}, Bounds{L, L + 3, -L, -L + 3}},
		{"positive infinity", Location{math.Inf(1), math.Inf(1)}, Bounds{L, L + 3, L, L + 3}},
		{"negative infinity", Location{math.Inf(-1), math.Inf(-1)}, Bounds{-L, -L + 3, -L, -L + 3}},
		{"NaN", Location{math.NaN(), 0}, Bounds{-L, -L + 3, 248, 251}},
	}

	img := ones(500, 500)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapBounds(500, 500, tt.loc, 3); got != tt.want {
				t.Errorf("MapBounds(500, 500, %+v, 3) = %v, want %v", tt.loc, got, tt.want)
			}
			p := GetPatch(img, tt.loc, 3)
			if p.Rows != 3 || p.Cols != 3 {
				t.Fatalf("GetPatch shape %dx%d, want 3x3", p.Rows, p.Cols)
			}
			for i, v := range p.Pix {
				if v != 0 {
					t.Errorf("sample %d = %v, want 0", i, v)
				}
			}
		})
	}
}

func TestCenteredSquare_Embed(t *testing.T) {
	tests := []struct {
		height, width int
		loc           Location
		want          Embedding
	}{
		{400, 400, Location{0, 0}, Embedding{X: 200, Y: 200}},
		{400, 400, Location{-1, 1}, Embedding{X: 0, Y: 400}},
		{100, 300, Location{0, 0}, Embedding{X: 150, Y: 150, HeightAdj: 100}},
		{301, 100, Location{1, -1}, Embedding{X: 301, Y: 0, WidthAdj: 100.5}},
		{0, 0, Location{0.5, 0.5}, Embedding{}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d@%v", tt.height, tt.width, tt.loc), func(t *testing.T) {
			got := CenteredSquare{}.Embed(tt.height, tt.width, tt.loc)
			if got != tt.want {
				t.Errorf("Embed = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// shiftedCoords places every location at a fixed pixel.
type shiftedCoords struct{ x, y float64 }

func (s shiftedCoords) Embed(height, width int, loc Location) Embedding {
	return Embedding{X: s.x, Y: s.y}
}

func TestMapBoundsIn_CustomCoordinates(t *testing.T) {
	got := MapBoundsIn(shiftedCoords{x: 10, y: 30}, 100, 100, Location{0.9, -0.9}, 4)
	want := Bounds{8, 12, 28, 32}
	if got != want {
		t.Errorf("MapBoundsIn = %v, want %v", got, want)
	}
}

func TestBounds(t *testing.T) {
	b := Bounds{XStart: -3, XEnd: 7, YStart: 5, YEnd: 5}
	if b.Rows() != 10 || b.Cols() != 0 {
		t.Errorf("Rows/Cols: got %d/%d, want 10/0", b.Rows(), b.Cols())
	}
	if !b.Empty() {
		t.Error("zero-width bounds not empty")
	}
	if got := b.String(); got != "[-3:7, 5:5]" {
		t.Errorf("String: got %q", got)
	}
	if r := (Bounds{XStart: 4, XEnd: 1, YStart: 0, YEnd: 2}).Rows(); r != 0 {
		t.Errorf("reversed Rows: got %d, want 0", r)
	}
}

func TestLocation_Vector(t *testing.T) {
	v := Location{X: 0.25, Y: -0.5}.Vector()
	if v.Len() != 2 || v.AtVec(0) != 0.25 || v.AtVec(1) != -0.5 {
		t.Errorf("Vector: got len=%d (%v, %v)", v.Len(), v.AtVec(0), v.AtVec(1))
	}
}
