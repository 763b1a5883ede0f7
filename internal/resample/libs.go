package resample

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	disimaging "github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/mat"

	"github.com/ironsheep/glimpse-sensor/internal/imaging"
)

// Imaging resizes with github.com/disintegration/imaging. The library works
// in 8 bits per channel, so results are quantised to 1/255 of the patch's
// value range.
type Imaging struct {
	// Filter is the library's resampling filter, for example imaging.Linear.
	// The zero value is imaging.NearestNeighbor.
	Filter disimaging.ResampleFilter
}

// Resample implements Resampler.
func (r Imaging) Resample(src mat.Matrix, rows, cols int) *imaging.Grid {
	return viaImage(src, rows, cols, func(img *image.Gray16, width, height int) image.Image {
		return disimaging.Resize(img, width, height, r.Filter)
	})
}

// Draw resizes with an interpolator from golang.org/x/image/draw, writing
// into a 16-bit grey destination.
type Draw struct {
	// Interpolator defaults to draw.BiLinear.
	Interpolator draw.Interpolator
}

// Resample implements Resampler.
func (r Draw) Resample(src mat.Matrix, rows, cols int) *imaging.Grid {
	interp := r.Interpolator
	if interp == nil {
		interp = draw.BiLinear
	}
	return viaImage(src, rows, cols, func(img *image.Gray16, width, height int) image.Image {
		dst := image.NewGray16(image.Rect(0, 0, width, height))
		interp.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		return dst
	})
}

// Bild resizes with github.com/anthonynsimon/bild/transform. Like Imaging it
// works in 8 bits per channel.
type Bild struct {
	// Filter defaults to transform.Linear. transform.NearestNeighbor is
	// the library's zero filter, so it also selects Linear here; use
	// Imaging{} or Nfnt{} for nearest-neighbour resizing.
	Filter transform.ResampleFilter
}

// Resample implements Resampler.
func (r Bild) Resample(src mat.Matrix, rows, cols int) *imaging.Grid {
	filter := r.Filter
	if filter.Fn == nil && filter.Support == 0 {
		filter = transform.Linear
	}
	return viaImage(src, rows, cols, func(img *image.Gray16, width, height int) image.Image {
		return transform.Resize(img, width, height, filter)
	})
}

// Nfnt resizes with github.com/nfnt/resize, which keeps 16-bit grey images
// in 16 bits.
type Nfnt struct {
	// Interp is the library's interpolation function. The zero value is
	// resize.NearestNeighbor.
	Interp resize.InterpolationFunction
}

// Resample implements Resampler.
func (r Nfnt) Resample(src mat.Matrix, rows, cols int) *imaging.Grid {
	return viaImage(src, rows, cols, func(img *image.Gray16, width, height int) image.Image {
		return resize.Resize(uint(width), uint(height), img, r.Interp)
	})
}
