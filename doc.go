// Package pixfilter provides a small image filter pipeline over raw RGBA
// pixel buffers.
//
// # Overview
//
// A Pipeline takes a source PixelBuffer and a Filter and produces a new
// buffer of the same size. Filters are either 3x3 convolutions with a named
// kernel (edge, gaussian, sharpen, emboss, box, custom) or pointwise color
// effects (grayscale, sepia, negative, threshold, brightness, none). The
// output can be blended back toward the source by an intensity factor and
// summarized as a 256-bucket brightness histogram.
//
// # Quick Start
//
//	import "github.com/gogpu/pixfilter"
//
//	src := pixfilter.FromImage(img)
//	p := pixfilter.New()
//
//	res, err := p.ProcessNamed(src, "sharpen", 0.75)
//	if err != nil {
//	    return err
//	}
//	out := res.Output.ToImage()
//	peak := res.Histogram().Peak()
//
// # Pixel Layout
//
// Buffers are row-major RGBA with straight alpha, one byte per sample.
// Every float-to-byte store rounds half to even and then clamps to
// [0, 255], so intermediate arithmetic is never clamped early.
//
// # Convolution Borders
//
// Convolution writes interior pixels only. The one-pixel border ring of the
// destination keeps whatever it held before; Pipeline outputs start zeroed,
// so their border is transparent black. Convolved pixels are opaque.
//
// # Concurrency
//
// The engines are synchronous and single-threaded. Each output pixel
// depends only on source samples, so hosts may split work into disjoint
// ranges (see ConvolveRows, ApplyEffectRange, BlendRange and the tiled
// package) without changing results.
package pixfilter

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
