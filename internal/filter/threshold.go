package filter

// Threshold binarizes pixels [start, end) of src into dst.
//
// A pixel becomes white when the plain average of its color channels is
// strictly greater than level, black otherwise. Alpha is copied.
func Threshold(dst, src []uint8, level float64, start, end int) {
	for p := start; p < end; p++ {
		i := p * 4

		avg := (float64(src[i+0]) + float64(src[i+1]) + float64(src[i+2])) / 3

		var v uint8
		if avg > level {
			v = 255
		}

		dst[i+0] = v
		dst[i+1] = v
		dst[i+2] = v
		dst[i+3] = src[i+3]
	}
}
