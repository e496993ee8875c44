package pixfilter

// SplitView composes a before/after comparison: columns left of x come
// from original and the rest from processed. x is clamped to [0, width].
func SplitView(original, processed *PixelBuffer, x int) (*PixelBuffer, error) {
	if err := checkSameSize("pixfilter: split view", original, processed); err != nil {
		return nil, err
	}
	x = min(max(x, 0), original.width)

	out := processed.Clone()
	stride := original.width * 4
	for y := 0; y < original.height; y++ {
		row := y * stride
		copy(out.pix[row:row+x*4], original.pix[row:row+x*4])
	}
	return out, nil
}
