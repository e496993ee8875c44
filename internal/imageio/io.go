// Package imageio loads source images into pixfilter buffers and writes
// processed buffers back out as PNG.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gabriel-vasile/mimetype"

	"github.com/gogpu/pixfilter"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when no registered decoder
	// recognizes the data.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// Load reads and decodes the image file at path. The format is detected
// from the content, not the extension; files that are not images at all
// fail with ErrUnsupportedFormat before any decoder runs.
func Load(path string) (*pixfilter.PixelBuffer, error) {
	path = filepath.Clean(path)
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	if !isImage(mt) {
		return nil, fmt.Errorf("imageio: load %s: %s: %w", filepath.Base(path), mt, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	buf, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: load %s: %w", filepath.Base(path), err)
	}
	return buf, nil
}

func isImage(mt *mimetype.MIME) bool {
	return strings.HasPrefix(mt.String(), "image/")
}

// Decode decodes an image in any registered format.
func Decode(r io.Reader) (*pixfilter.PixelBuffer, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}

	buf := pixfilter.FromImage(img)
	pixfilter.Logger().Debug("imageio: decoded",
		"format", format,
		"width", buf.Width(),
		"height", buf.Height())
	return buf, nil
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (*pixfilter.PixelBuffer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if mt := mimetype.Detect(data); !isImage(mt) {
		return nil, fmt.Errorf("imageio: %s: %w", mt, ErrUnsupportedFormat)
	}
	return Decode(bytes.NewReader(data))
}

// FitWidth returns buf scaled down to maxWidth pixels wide, keeping the
// aspect ratio. The new height is truncated toward zero. Buffers that
// already fit, and a maxWidth of 0 or less, return buf unchanged.
func FitWidth(buf *pixfilter.PixelBuffer, maxWidth int) *pixfilter.PixelBuffer {
	if buf == nil || maxWidth <= 0 || buf.Width() <= maxWidth {
		return buf
	}

	h := buf.Height() * maxWidth / buf.Width()
	dst := image.NewNRGBA(image.Rect(0, 0, maxWidth, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), buf.ToImage(), image.Rect(0, 0, buf.Width(), buf.Height()), xdraw.Src, nil)
	return pixfilter.FromImage(dst)
}

// EncodePNG writes buf to w in PNG format.
func EncodePNG(w io.Writer, buf *pixfilter.PixelBuffer) error {
	if buf == nil {
		return fmt.Errorf("imageio: encode png: %w", pixfilter.ErrNilBuffer)
	}
	if err := png.Encode(w, buf.ToImage()); err != nil {
		return fmt.Errorf("imageio: encode png: %w", err)
	}
	return nil
}

// EncodeToBytes returns buf encoded as PNG.
func EncodeToBytes(buf *pixfilter.PixelBuffer) ([]byte, error) {
	var b bytes.Buffer
	if err := EncodePNG(&b, buf); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// SavePNG writes buf to a PNG file at path, creating or truncating it.
func SavePNG(path string, buf *pixfilter.PixelBuffer) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := EncodePNG(f, buf); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: close file: %w", err)
	}
	return nil
}

// SaveImage writes an arbitrary image, such as a histogram chart, as PNG.
func SaveImage(path string, img image.Image) error {
	return SavePNG(path, pixfilter.FromImage(img))
}
