package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
)

// Luma selects how colour pixels are reduced to a single channel.
type Luma int

const (
	// LumaRec601 uses the ITU-R BT.601 weights of color.Gray16Model.
	LumaRec601 Luma = iota

	// LumaLab uses the CIE L* lightness of the pixel, which tracks perceived
	// brightness more closely than a weighted sum of gamma-encoded channels.
	LumaLab
)

// String returns the policy name.
func (l Luma) String() string {
	switch l {
	case LumaRec601:
		return "rec601"
	case LumaLab:
		return "lab"
	default:
		return fmt.Sprintf("Luma(%d)", int(l))
	}
}

// ParseLuma maps a policy name ("rec601" or "lab") to a Luma.
func ParseLuma(name string) (Luma, error) {
	switch name {
	case "", "rec601":
		return LumaRec601, nil
	case "lab":
		return LumaLab, nil
	default:
		return 0, fmt.Errorf("unknown luma policy: %s", name)
	}
}

// FromImage converts img to a grid of samples in [0, 1].
//
// Row r, column c of the result holds the pixel at
// (img.Bounds().Min.X+c, img.Bounds().Min.Y+r). Fully transparent pixels
// map to 0 under LumaLab.
func FromImage(img image.Image, luma Luma) *Grid {
	b := img.Bounds()
	g := NewGrid(b.Dy(), b.Dx())
	for r := 0; r < g.Rows; r++ {
		row := g.Row(r)
		for c := range row {
			row[c] = lumaAt(img.At(b.Min.X+c, b.Min.Y+r), luma)
		}
	}
	return g
}

func lumaAt(c color.Color, luma Luma) float64 {
	if luma == LumaLab {
		cf, ok := colorful.MakeColor(c)
		if !ok {
			return 0
		}
		l, _, _ := cf.Clamped().Lab()
		return clamp01(l)
	}
	return float64(color.Gray16Model.Convert(c).(color.Gray16).Y) / 0xffff
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Range describes the linear map between grid samples and 16-bit grey
// levels used by Quantize and Dequantize.
type Range struct {
	Lo, Hi float64
}

// Constant reports whether the range collapses to a single value.
func (r Range) Constant() bool { return r.Hi <= r.Lo }

// RangeOf returns the [min, max] range of the grid's samples.
// An empty grid has the range [0, 0].
func RangeOf(g *Grid) Range {
	if len(g.Pix) == 0 {
		return Range{}
	}
	return Range{Lo: floats.Min(g.Pix), Hi: floats.Max(g.Pix)}
}

// Quantize encodes g as a 16-bit grey image, mapping rng.Lo to 0 and rng.Hi
// to 0xffff. Samples outside the range are clamped. A constant range encodes
// every pixel as 0.
func Quantize(g *Grid, rng Range) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, g.Cols, g.Rows))
	span := rng.Hi - rng.Lo
	for r := 0; r < g.Rows; r++ {
		row := g.Row(r)
		for c, v := range row {
			var y uint16
			if span > 0 {
				y = uint16(clamp01((v-rng.Lo)/span)*0xffff + 0.5)
			}
			img.SetGray16(c, r, color.Gray16{Y: y})
		}
	}
	return img
}

// Dequantize decodes any image back into samples using the inverse of the
// map applied by Quantize. Colour images are reduced to grey first.
func Dequantize(img image.Image, rng Range) *Grid {
	b := img.Bounds()
	g := NewGrid(b.Dy(), b.Dx())
	span := rng.Hi - rng.Lo
	for r := 0; r < g.Rows; r++ {
		row := g.Row(r)
		for c := range row {
			y := color.Gray16Model.Convert(img.At(b.Min.X+c, b.Min.Y+r)).(color.Gray16).Y
			row[c] = rng.Lo + float64(y)/0xffff*span
		}
	}
	return g
}

// ToGray16 renders g for inspection, stretching its own [min, max] range
// over the full 16-bit scale.
func ToGray16(g *Grid) *image.Gray16 {
	return Quantize(g, RangeOf(g))
}
