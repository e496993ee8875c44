package pixfilter

import (
	"fmt"
	"time"
)

// Pipeline turns a source buffer into a filtered buffer of the same size.
//
// A Pipeline owns a KernelRegistry. Processing reads the registry once, at
// the start of each call; SetCustomKernel must not run concurrently with
// Process on the same Pipeline. Separate Pipelines share nothing and may
// be used from different goroutines.
type Pipeline struct {
	registry *KernelRegistry
}

// New creates a Pipeline.
func New(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := o.registry
	if r == nil {
		// WithKernelRegistry(nil) falls back to a fresh registry.
		r = NewKernelRegistry()
	}
	if o.custom != nil {
		r.SetCustomKernel(*o.custom)
	}
	return &Pipeline{registry: r}
}

// Registry returns the Pipeline's kernel registry.
func (p *Pipeline) Registry() *KernelRegistry {
	return p.registry
}

// SetCustomKernel replaces the custom kernel; see KernelRegistry.SetCustomKernel.
func (p *Pipeline) SetCustomKernel(k Kernel) {
	p.registry.SetCustomKernel(k)
}

// Kernel returns the kernel a ConvolutionFilter would use right now.
func (p *Pipeline) Kernel(name KernelName) (Kernel, error) {
	k, ok := p.registry.Kernel(name)
	if !ok {
		return Kernel{}, fmt.Errorf("pixfilter: kernel %q: %w", name, ErrUnknownFilter)
	}
	return k, nil
}

// Result is the output of one Process call.
type Result struct {
	// Output has the source's dimensions. Convolution leaves its border
	// ring transparent black (before blending).
	Output *PixelBuffer

	// Filter and Intensity record what produced Output.
	Filter    Filter
	Intensity float64

	hist *Histogram
}

// Histogram returns the brightness histogram of Output, computing it on
// first use.
func (r *Result) Histogram() *Histogram {
	if r.hist == nil {
		r.hist = NewHistogram(r.Output)
	}
	return r.hist
}

// Process filters src into a new buffer.
//
// A ConvolutionFilter convolves with the named kernel as it is at call
// time; a PointwiseFilter applies its effect. When intensity is below 1
// the result is then blended with src (see Blend); at 1 or above no
// blending happens and the filter output is returned as is.
func (p *Pipeline) Process(src *PixelBuffer, f Filter, intensity float64) (*Result, error) {
	if src == nil {
		return nil, fmt.Errorf("pixfilter: process: %w", ErrNilBuffer)
	}
	start := time.Now()

	out, err := NewPixelBuffer(src.width, src.height)
	if err != nil {
		return nil, err
	}

	switch f := f.(type) {
	case ConvolutionFilter:
		k, err := p.Kernel(f.Kernel)
		if err != nil {
			return nil, err
		}
		if err := Convolve(out, src, k); err != nil {
			return nil, err
		}
	case PointwiseFilter:
		if err := ApplyEffect(out, src, f.Effect); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("pixfilter: process %v: %w", f, ErrUnknownFilter)
	}

	if intensity < 1 {
		if err := Blend(src, out, intensity); err != nil {
			return nil, err
		}
	}

	Logger().Debug("pixfilter: processed",
		"filter", f.String(),
		"width", src.width,
		"height", src.height,
		"intensity", intensity,
		"elapsed", time.Since(start))

	return &Result{Output: out, Filter: f, Intensity: intensity}, nil
}

// ProcessNamed resolves name with ParseFilter and calls Process.
func (p *Pipeline) ProcessNamed(src *PixelBuffer, name string, intensity float64) (*Result, error) {
	f, err := ParseFilter(name)
	if err != nil {
		return nil, err
	}
	return p.Process(src, f, intensity)
}
