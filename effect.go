package pixfilter

import (
	"fmt"
	"strings"

	"github.com/gogpu/pixfilter/internal/filter"
)

// EffectKind selects a pointwise color effect.
type EffectKind int

// Pointwise effects. Each maps a pixel's red, green and blue independently
// of its neighbors and passes alpha through.
const (
	// EffectNone copies the source verbatim.
	EffectNone EffectKind = iota

	// EffectGrayscale sets all channels to 0.299r + 0.587g + 0.114b.
	EffectGrayscale

	// EffectSepia applies the classic sepia tone matrix.
	EffectSepia

	// EffectNegative inverts each channel (255 - c).
	EffectNegative

	// EffectThreshold outputs white when (r+g+b)/3 > ThresholdLevel,
	// black otherwise.
	EffectThreshold

	// EffectBrightness adds BrightnessOffset to each channel.
	EffectBrightness
)

// Effect parameters.
const (
	// BrightnessOffset is added to every color channel by EffectBrightness.
	BrightnessOffset = 40

	// ThresholdLevel is the average above which EffectThreshold outputs white.
	ThresholdLevel = 128
)

var effectNames = [...]string{
	EffectNone:       "none",
	EffectGrayscale:  "grayscale",
	EffectSepia:      "sepia",
	EffectNegative:   "negative",
	EffectThreshold:  "threshold",
	EffectBrightness: "brightness",
}

// String returns the effect name.
func (k EffectKind) String() string {
	if k >= 0 && int(k) < len(effectNames) {
		return effectNames[k]
	}
	return fmt.Sprintf("EffectKind(%d)", int(k))
}

// Valid reports whether k is a known effect.
func (k EffectKind) Valid() bool {
	return k >= 0 && int(k) < len(effectNames)
}

// Effects returns every effect kind in declaration order.
func Effects() []EffectKind {
	out := make([]EffectKind, len(effectNames))
	for i := range out {
		out[i] = EffectKind(i)
	}
	return out
}

// ParseEffectKind returns the effect with the given name, ignoring case.
func ParseEffectKind(name string) (EffectKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range effectNames {
		if n == name {
			return EffectKind(i), nil
		}
	}
	return 0, fmt.Errorf("pixfilter: effect %q: %w", name, ErrUnknownFilter)
}

// matrix returns the color matrix implementing k. Threshold is not linear
// and has no matrix.
func (k EffectKind) matrix() (filter.ColorMatrix, bool) {
	switch k {
	case EffectNone:
		return filter.IdentityMatrix(), true
	case EffectGrayscale:
		return filter.GrayscaleMatrix(), true
	case EffectSepia:
		return filter.SepiaMatrix(), true
	case EffectNegative:
		return filter.InvertMatrix(), true
	case EffectBrightness:
		return filter.BrightnessMatrix(BrightnessOffset), true
	default:
		return filter.ColorMatrix{}, false
	}
}
