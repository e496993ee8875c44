package filter

// Lerp blends samples [start, end) of src into dst in place:
//
//	dst[i] = src[i]*(1-factor) + dst[i]*factor
//
// Every sample is blended, alpha included.
func Lerp(dst, src []uint8, factor float64, start, end int) {
	inv := 1 - factor
	for i := start; i < end; i++ {
		dst[i] = Store(float64(float64(src[i])*inv) + float64(float64(dst[i])*factor))
	}
}
