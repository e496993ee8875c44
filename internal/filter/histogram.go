package filter

// CountBrightness adds every pixel of pix to hist, bucketed by the
// truncated average of its red, green and blue samples.
func CountBrightness(hist *[256]int, pix []uint8) {
	for i := 0; i+3 < len(pix); i += 4 {
		sum := int(pix[i+0]) + int(pix[i+1]) + int(pix[i+2])
		hist[sum/3]++
	}
}
