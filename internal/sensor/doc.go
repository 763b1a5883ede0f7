// Package sensor extracts multi-resolution glimpses from single-channel
// images.
//
// A glimpse is a stack of square patches centred on one focus location.
// Level i covers Size*Scale^i pixels of the image and is resampled to
// Size×Size, so the first patch is a sharp view of the centre and later
// patches give progressively wider, coarser context.
//
// # Pipeline
//
// Each level runs the same three steps:
//
//  1. MapBounds converts the normalized location and the level's side
//     length into pixel bounds.
//  2. SliceWithPad copies those bounds out of the image, filling anything
//     outside it with zeros.
//  3. A resample.Resampler brings the patch to Size×Size.
//
// # Coordinate System
//
// Locations are normalized through a CoordinateSystem. The only one
// provided, CenteredSquare, embeds the image centred in the square of its
// longer side; (0, 0) is the centre and (-1, -1) the top-left corner of
// that square, which lies outside a non-square image. The X coordinate
// selects rows and Y selects columns.
//
// # Errors
//
// Bounds that leave the image are not errors. The only failure is an
// invalid configuration, reported as an error wrapping ErrInvalidArgument:
//   - Scale below 1 (or NaN)
//   - Size or Depth below 1
//   - A coarsest level wider than MaxPatchSide
//
// # Thread Safety
//
// All functions are pure: they read the source image and return freshly
// allocated results. Concurrent calls are safe as long as the caller does
// not write to the image meanwhile.
package sensor
