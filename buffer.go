package pixfilter

import (
	"fmt"
	"image"
	"slices"

	"golang.org/x/image/draw"
)

// PixelBuffer is a rectangular buffer of 8-bit RGBA samples.
//
// Samples are stored row-major, 4 per pixel in red, green, blue, alpha
// order, with straight (non-premultiplied) alpha. The sample slice always
// holds exactly Width()*Height()*4 bytes.
type PixelBuffer struct {
	width  int
	height int
	pix    []uint8
}

// NewPixelBuffer creates a zeroed (fully transparent) buffer.
// Zero dimensions give an empty buffer; negative ones are an error.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("pixfilter: new buffer %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return &PixelBuffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}, nil
}

// WrapPixels creates a buffer backed by pix without copying.
// len(pix) must equal width*height*4.
func WrapPixels(width, height int, pix []uint8) (*PixelBuffer, error) {
	if width < 0 || height < 0 || len(pix) != width*height*4 {
		return nil, fmt.Errorf("pixfilter: wrap %d samples as %dx%d: %w",
			len(pix), width, height, ErrInvalidDimensions)
	}
	return &PixelBuffer{width: width, height: height, pix: pix}, nil
}

// Width returns the width of the buffer in pixels.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the height of the buffer in pixels.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Pix returns the raw samples. Writes through the returned slice modify
// the buffer.
func (b *PixelBuffer) Pix() []uint8 {
	return b.pix
}

// SameSize reports whether o has the same width and height as b.
func (b *PixelBuffer) SameSize(o *PixelBuffer) bool {
	return o != nil && b.width == o.width && b.height == o.height
}

// Clone returns a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	return &PixelBuffer{
		width:  b.width,
		height: b.height,
		pix:    slices.Clone(b.pix),
	}
}

// Fill sets every pixel to the given samples.
func (b *PixelBuffer) Fill(r, g, bl, a uint8) {
	for i := 0; i < len(b.pix); i += 4 {
		b.pix[i+0] = r
		b.pix[i+1] = g
		b.pix[i+2] = bl
		b.pix[i+3] = a
	}
}

// PixelAt returns the samples of pixel (x, y), or zeros when out of bounds.
func (b *PixelBuffer) PixelAt(x, y int) [4]uint8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return [4]uint8{}
	}
	i := (y*b.width + x) * 4
	return [4]uint8{b.pix[i], b.pix[i+1], b.pix[i+2], b.pix[i+3]}
}

// SetPixel sets the samples of pixel (x, y). Out of bounds writes are ignored.
func (b *PixelBuffer) SetPixel(x, y int, c [4]uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	copy(b.pix[i:i+4], c[:])
}

// ToImage copies the buffer into an image.NRGBA.
func (b *PixelBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.pix)
	return img
}

// FromImage converts any image into a PixelBuffer with straight alpha.
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == bounds.Dx()*4 {
		buf, _ := NewPixelBuffer(bounds.Dx(), bounds.Dy())
		copy(buf.pix, nrgba.Pix[nrgba.PixOffset(bounds.Min.X, bounds.Min.Y):])
		return buf
	}

	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return &PixelBuffer{width: bounds.Dx(), height: bounds.Dy(), pix: dst.Pix}
}
