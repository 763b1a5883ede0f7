// Package resample resizes single-channel grids to an exact target shape.
//
// The glimpse sensor only requires that a resampler returns exactly the
// requested rows×cols and is deterministic; it makes no claim about filter
// quality. Bilinear is the default and works directly on float64 samples.
//
// # Library Adapters
//
// Imaging, Draw, Bild and Nfnt delegate to the corresponding image
// libraries. Each adapter quantises the source over its own [min, max]
// range into a 16-bit grey image, resizes it, and maps the result back:
//
//   - Imaging: github.com/disintegration/imaging (8-bit internally)
//   - Draw: golang.org/x/image/draw (16-bit)
//   - Bild: github.com/anthonynsimon/bild/transform (8-bit internally)
//   - Nfnt: github.com/nfnt/resize (16-bit)
//
// Constant sources, which include patches that lie entirely outside the
// image, bypass the library and resample to the same constant. Empty
// sources resample to zeros.
//
// All resamplers are stateless values and safe for concurrent use.
package resample
