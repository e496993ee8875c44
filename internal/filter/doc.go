// Package filter provides the pixel engines behind pixfilter.
//
// This package contains:
//   - 3x3 convolution over RGBA samples (interior pixels only)
//   - 4x5 color matrix transformations (grayscale, sepia, invert, brightness)
//   - Threshold binarization
//   - Linear blending of two sample buffers
//   - Brightness histogram counting
//
// Every engine works on raw straight-alpha RGBA byte slices and takes an
// explicit row, pixel or sample range. Ranges never overlap in what they
// write and only ever read the source, so callers may split one image into
// disjoint ranges and run them in any order with identical results.
//
// All float-to-byte stores go through Store, which rounds half to even and
// clamps to [0, 255].
package filter
