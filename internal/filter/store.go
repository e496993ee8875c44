package filter

import "math"

// Store converts an unclamped channel value to a byte.
//
// NaN becomes 0, values are clamped to [0, 255] and then rounded half to
// even, which is how a clamped byte array converts assignments.
func Store(v float64) uint8 {
	switch {
	case v != v: // NaN
		return 0
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.RoundToEven(v))
}
