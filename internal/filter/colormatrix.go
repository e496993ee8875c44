package filter

// ColorMatrix is a 4x5 color transformation matrix applied per pixel.
// The transformation is:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// The fifth column provides bias/offset values.
// Channels are straight-alpha values in [0, 255] during transformation
// and are stored back through Store.
//
// Row-major: [0-4] = R, [5-9] = G, [10-14] = B, [15-19] = A.
type ColorMatrix [20]float64

// IdentityMatrix passes every channel through unchanged.
func IdentityMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0, // R
		0, 1, 0, 0, 0, // G
		0, 0, 1, 0, 0, // B
		0, 0, 0, 1, 0, // A
	}
}

// GrayscaleMatrix converts to grayscale using Rec. 601 luma weights.
func GrayscaleMatrix() ColorMatrix {
	const (
		lumR = 0.299
		lumG = 0.587
		lumB = 0.114
	)
	return ColorMatrix{
		lumR, lumG, lumB, 0, 0,
		lumR, lumG, lumB, 0, 0,
		lumR, lumG, lumB, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// SepiaMatrix applies the classic sepia tone.
func SepiaMatrix() ColorMatrix {
	return ColorMatrix{
		0.393, 0.769, 0.189, 0, 0,
		0.349, 0.686, 0.168, 0, 0,
		0.272, 0.534, 0.131, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// InvertMatrix inverts the color channels and keeps alpha.
func InvertMatrix() ColorMatrix {
	return ColorMatrix{
		-1, 0, 0, 0, 255,
		0, -1, 0, 0, 255,
		0, 0, -1, 0, 255,
		0, 0, 0, 1, 0,
	}
}

// BrightnessMatrix adds a constant offset to the color channels.
func BrightnessMatrix(offset float64) ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, offset,
		0, 1, 0, 0, offset,
		0, 0, 1, 0, offset,
		0, 0, 0, 1, 0,
	}
}

// Apply transforms pixels [start, end) of src into dst.
// Both slices hold RGBA samples, 4 per pixel, and must be the same length.
func (m *ColorMatrix) Apply(dst, src []uint8, start, end int) {
	for p := start; p < end; p++ {
		i := p * 4

		r := float64(src[i+0])
		g := float64(src[i+1])
		b := float64(src[i+2])
		a := float64(src[i+3])

		// Term order matches the scalar formulas and the explicit conversions
		// prevent fused multiply-add, so results are exactly those of
		// evaluating the formulas one operation at a time.
		dst[i+0] = Store(float64(m[0]*r) + float64(m[1]*g) + float64(m[2]*b) + float64(m[3]*a) + m[4])
		dst[i+1] = Store(float64(m[5]*r) + float64(m[6]*g) + float64(m[7]*b) + float64(m[8]*a) + m[9])
		dst[i+2] = Store(float64(m[10]*r) + float64(m[11]*g) + float64(m[12]*b) + float64(m[13]*a) + m[14])
		dst[i+3] = Store(float64(m[15]*r) + float64(m[16]*g) + float64(m[17]*b) + float64(m[18]*a) + m[19])
	}
}
