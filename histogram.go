package pixfilter

import (
	"image"
	"image/color"

	"github.com/gogpu/pixfilter/internal/filter"
)

// Histogram counts pixels per brightness bucket. Bucket i holds the
// number of pixels whose truncated average floor((r+g+b)/3) equals i.
type Histogram [256]int

// NewHistogram builds the brightness histogram of buf.
// A nil or empty buffer yields an all-zero histogram.
func NewHistogram(buf *PixelBuffer) *Histogram {
	var h Histogram
	if buf != nil {
		filter.CountBrightness((*[256]int)(&h), buf.pix)
	}
	return &h
}

// Total returns the number of pixels counted.
func (h *Histogram) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// Max returns the largest bucket count.
func (h *Histogram) Max() int {
	peak := 0
	for _, n := range h {
		peak = max(peak, n)
	}
	return peak
}

// Peak returns the lowest bucket holding Max pixels.
func (h *Histogram) Peak() int {
	best := 0
	for i, n := range h {
		if n > h[best] {
			best = i
		}
	}
	return best
}

// Mean returns the mean bucket, or 0 for an empty histogram.
func (h *Histogram) Mean() float64 {
	total, sum := 0, 0
	for i, n := range h {
		total += n
		sum += i * n
	}
	if total == 0 {
		return 0
	}
	return float64(sum) / float64(total)
}

// Image renders the histogram as a 256-pixel-wide bar chart of the given
// height. Bar i is scaled to h[i]/Max()*height and drawn in bar over a
// transparent background.
func (h *Histogram) Image(height int, bar color.Color) *image.NRGBA {
	height = max(height, 1)
	img := image.NewNRGBA(image.Rect(0, 0, len(h), height))

	peak := h.Max()
	if peak == 0 {
		return img
	}

	c := color.NRGBAModel.Convert(bar).(color.NRGBA)
	for x, n := range h {
		barHeight := int(float64(n) / float64(peak) * float64(height))
		for y := height - barHeight; y < height; y++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
