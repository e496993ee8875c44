package filter

// Kernel3 is a 3x3 convolution kernel indexed [row][column], where row 0
// weights the pixel above and column 0 the pixel to the left.
type Kernel3 [3][3]float64

// Convolve3 applies k to rows [y0, y1) of an RGBA image and writes the
// results to dst.
//
// Only interior pixels are written: row 0, row height-1, column 0 and
// column width-1 are skipped, whatever range is requested. Red, green and
// blue are convolved independently and alpha is set to 255.
//
// src and dst must both hold width*height*4 samples and must not alias.
func Convolve3(dst, src []uint8, width, height int, k *Kernel3, y0, y1 int) {
	if y0 < 1 {
		y0 = 1
	}
	if y1 > height-1 {
		y1 = height - 1
	}

	stride := width * 4

	for y := y0; y < y1; y++ {
		for x := 1; x < width-1; x++ {
			var r, g, b float64

			for ky := -1; ky <= 1; ky++ {
				row := (y+ky)*stride + (x-1)*4
				w := &k[ky+1]
				for kx := 0; kx < 3; kx++ {
					idx := row + kx*4
					weight := w[kx]
					// Explicit conversions keep each product rounded on its
					// own; accumulation order is row by row, left to right.
					r += float64(float64(src[idx+0]) * weight)
					g += float64(float64(src[idx+1]) * weight)
					b += float64(float64(src[idx+2]) * weight)
				}
			}

			i := y*stride + x*4
			dst[i+0] = Store(r)
			dst[i+1] = Store(g)
			dst[i+2] = Store(b)
			dst[i+3] = 255
		}
	}
}
