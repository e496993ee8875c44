package filter

// Test helper functions shared across filter tests.

// solid returns w*h pixels all set to the given RGBA sample values.
func solid(w, h int, r, g, b, a uint8) []uint8 {
	pix := make([]uint8, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = r
		pix[i+1] = g
		pix[i+2] = b
		pix[i+3] = a
	}
	return pix
}

// gradient returns w*h pixels with channels derived from position, so
// that neighboring pixels differ.
func gradient(w, h int) []uint8 {
	pix := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			pix[i+0] = uint8((x * 37) % 256)
			pix[i+1] = uint8((y * 53) % 256)
			pix[i+2] = uint8((x*y + 11) % 256)
			pix[i+3] = uint8(128 + (x+y)%128)
		}
	}
	return pix
}

// pixel returns the four samples of pixel (x, y).
func pixel(pix []uint8, w, x, y int) [4]uint8 {
	i := (y*w + x) * 4
	return [4]uint8{pix[i], pix[i+1], pix[i+2], pix[i+3]}
}
