// Package imaging provides the single-channel image representation used by
// the glimpse sensor, together with conversions to and from the standard
// library's image types.
//
// # Grids
//
// A Grid is a row-major grid of float64 samples. It implements gonum's
// mat.Matrix, so sensor functions accept either a Grid or any gonum matrix
// (for example a *mat.Dense) as their source image. Grids may have zero rows
// or zero columns; such grids are valid and simply hold no samples.
//
// # Coordinate System
//
// Grid indices are 0-based with the origin at the top-left sample:
//   - Row: vertical position (0 = topmost row), at most Rows-1
//   - Column: horizontal position (0 = leftmost column), at most Cols-1
//
// When a Grid is converted from an image.Image, row r and column c come
// from the pixel at (Min.X+c, Min.Y+r).
//
// # Grayscale Conversion
//
// FromImage reduces colour images with a Luma policy. LumaRec601 uses the
// standard library's Gray16 model, and LumaLab uses CIE L* lightness from
// github.com/lucasb-eyer/go-colorful. Both produce samples in [0, 1].
//
// # Quantisation
//
// Image libraries operate on integer pixel formats, so Quantize maps a Grid
// onto a 16-bit grey image over an explicit Range and Dequantize inverts
// the map. Round trips are exact up to 1/65535 of the range.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Grids themselves are not
// synchronised; the sensor only ever reads its input, so a grid may be
// shared between goroutines as long as nobody writes to it.
package imaging
