package pixfilter

import (
	"fmt"
	"strings"
)

// Filter is either a ConvolutionFilter or a PointwiseFilter.
// The set is closed; dispatch on it with a type switch.
type Filter interface {
	fmt.Stringer
	isFilter()
}

// ConvolutionFilter convolves the image with a registry kernel.
type ConvolutionFilter struct {
	Kernel KernelName
}

func (ConvolutionFilter) isFilter() {}

// String returns the kernel name.
func (f ConvolutionFilter) String() string { return string(f.Kernel) }

// PointwiseFilter applies a per-pixel color effect.
type PointwiseFilter struct {
	Effect EffectKind
}

func (PointwiseFilter) isFilter() {}

// String returns the effect name.
func (f PointwiseFilter) String() string { return f.Effect.String() }

// ParseFilter resolves a filter name. Kernel names take precedence over
// effect names; matching ignores case and surrounding whitespace.
func ParseFilter(name string) (Filter, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if _, ok := builtinKernels[KernelName(key)]; ok || KernelName(key) == KernelCustom {
		return ConvolutionFilter{Kernel: KernelName(key)}, nil
	}
	if kind, err := ParseEffectKind(key); err == nil {
		return PointwiseFilter{Effect: kind}, nil
	}
	return nil, fmt.Errorf("pixfilter: filter %q: %w", name, ErrUnknownFilter)
}

// FilterNames returns every accepted filter name: kernels first, then
// effects.
func FilterNames() []string {
	names := make([]string, 0, len(kernelOrder)+len(effectNames))
	for _, k := range kernelOrder {
		names = append(names, string(k))
	}
	for _, e := range effectNames {
		names = append(names, e)
	}
	return names
}
