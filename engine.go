package pixfilter

import (
	"fmt"

	"github.com/gogpu/pixfilter/internal/filter"
)

// Convolve applies k to every interior pixel of src and writes the result
// to dst.
//
// The one-pixel border ring of dst is left as it was, and every written
// pixel gets alpha 255. src and dst must have equal dimensions of at
// least 3x3 and must not share samples.
func Convolve(dst, src *PixelBuffer, k Kernel) error {
	if err := checkConvolve(dst, src); err != nil {
		return err
	}
	kk := filter.Kernel3(k)
	filter.Convolve3(dst.pix, src.pix, src.width, src.height, &kk, 0, src.height)
	return nil
}

// ConvolveRows is Convolve restricted to output rows [y0, y1). Border rows
// inside the range are still skipped. Disjoint row ranges write disjoint
// samples, so a host may convolve bands of one image concurrently.
func ConvolveRows(dst, src *PixelBuffer, k Kernel, y0, y1 int) error {
	if err := checkConvolve(dst, src); err != nil {
		return err
	}
	kk := filter.Kernel3(k)
	filter.Convolve3(dst.pix, src.pix, src.width, src.height, &kk, y0, y1)
	return nil
}

func checkConvolve(dst, src *PixelBuffer) error {
	if err := checkSameSize("pixfilter: convolve", dst, src); err != nil {
		return err
	}
	if src.width < 3 || src.height < 3 {
		return fmt.Errorf("pixfilter: convolve %dx%d: %w", src.width, src.height, ErrImageTooSmall)
	}
	return nil
}

// ApplyEffect writes the pointwise effect kind of src to dst.
// Alpha passes through unchanged; EffectNone copies src exactly.
// Each pixel depends only on itself, so dst may be src.
func ApplyEffect(dst, src *PixelBuffer, kind EffectKind) error {
	if src == nil {
		return fmt.Errorf("pixfilter: effect: %w", ErrNilBuffer)
	}
	return ApplyEffectRange(dst, src, kind, 0, src.width*src.height)
}

// ApplyEffectRange is ApplyEffect restricted to pixels [start, end) in
// row-major order.
func ApplyEffectRange(dst, src *PixelBuffer, kind EffectKind, start, end int) error {
	if err := checkSameSize("pixfilter: effect", dst, src); err != nil {
		return err
	}
	start, end = clampRange(start, end, src.width*src.height)

	switch kind {
	case EffectNone:
		copy(dst.pix[start*4:end*4], src.pix[start*4:end*4])
	case EffectThreshold:
		filter.Threshold(dst.pix, src.pix, ThresholdLevel, start, end)
	default:
		m, ok := kind.matrix()
		if !ok {
			return fmt.Errorf("pixfilter: effect %v: %w", kind, ErrUnknownFilter)
		}
		m.Apply(dst.pix, src.pix, start, end)
	}
	return nil
}

// Blend mixes src into processed in place:
//
//	processed[i] = src[i]*(1-factor) + processed[i]*factor
//
// for every sample, alpha included. factor 1 leaves processed unchanged
// and factor 0 makes it a copy of src. factor is not range checked;
// results are clamped to [0, 255].
func Blend(src, processed *PixelBuffer, factor float64) error {
	if src == nil {
		return fmt.Errorf("pixfilter: blend: %w", ErrNilBuffer)
	}
	return BlendRange(src, processed, factor, 0, len(src.pix))
}

// BlendRange is Blend restricted to samples [start, end).
func BlendRange(src, processed *PixelBuffer, factor float64, start, end int) error {
	if err := checkSameSize("pixfilter: blend", src, processed); err != nil {
		return err
	}
	start, end = clampRange(start, end, len(src.pix))
	filter.Lerp(processed.pix, src.pix, factor, start, end)
	return nil
}

func clampRange(start, end, n int) (int, int) {
	start = max(start, 0)
	end = min(end, n)
	if start > end {
		start = end
	}
	return start, end
}
