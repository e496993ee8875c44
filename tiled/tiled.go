// Package tiled runs a pixfilter Pipeline over horizontal bands of an
// image on a worker pool.
//
// The pixfilter engines are single-threaded. Every output pixel depends
// only on source samples and is written exactly once, so convolution rows,
// effect pixels and blend samples can be split into disjoint bands and
// executed in any order. A Processor produces output byte-identical to
// Pipeline.Process.
//
// Example:
//
//	tp := tiled.New(pixfilter.New(), tiled.WithWorkers(8))
//	defer tp.Close()
//
//	res, err := tp.Process(src, pixfilter.ConvolutionFilter{Kernel: pixfilter.KernelGaussian}, 1)
package tiled

import (
	"fmt"
	"time"

	"github.com/gogpu/pixfilter"
	"github.com/gogpu/pixfilter/internal/parallel"
)

// DefaultBandHeight is the number of rows per band when none is configured.
const DefaultBandHeight = 32

// Option configures a Processor.
type Option func(*Processor)

// WithWorkers sets the number of pool workers. 0 or less means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(p *Processor) {
		p.workers = n
	}
}

// WithBandHeight sets the number of rows per band. 0 or less means
// DefaultBandHeight.
func WithBandHeight(rows int) Option {
	return func(p *Processor) {
		p.bandHeight = rows
	}
}

// Processor splits Pipeline work into row bands.
//
// A Processor is safe for concurrent use as long as the underlying
// Pipeline's custom kernel is not changed during a Process call.
type Processor struct {
	pipeline   *pixfilter.Pipeline
	pool       *parallel.WorkerPool
	workers    int
	bandHeight int
}

// New creates a Processor for p and starts its workers.
// Call Close to stop them.
func New(p *pixfilter.Pipeline, opts ...Option) *Processor {
	tp := &Processor{pipeline: p}
	for _, opt := range opts {
		opt(tp)
	}
	if tp.bandHeight <= 0 {
		tp.bandHeight = DefaultBandHeight
	}

	tp.pool = parallel.NewWorkerPool(tp.workers)
	tp.workers = tp.pool.Workers()

	pixfilter.Logger().Info("tiled: worker pool started",
		"workers", tp.workers,
		"band_height", tp.bandHeight)
	return tp
}

// Workers returns the number of pool workers.
func (tp *Processor) Workers() int {
	return tp.workers
}

// Close stops the worker pool. Process keeps working after Close, running
// bands on the calling goroutine.
func (tp *Processor) Close() {
	tp.pool.Close()
}

// Process has the semantics of Pipeline.Process, with the work spread
// over the pool.
func (tp *Processor) Process(src *pixfilter.PixelBuffer, f pixfilter.Filter, intensity float64) (*pixfilter.Result, error) {
	if src == nil {
		return nil, fmt.Errorf("tiled: process: %w", pixfilter.ErrNilBuffer)
	}
	start := time.Now()

	out, err := pixfilter.NewPixelBuffer(src.Width(), src.Height())
	if err != nil {
		return nil, err
	}

	rows := parallel.Split(src.Height(), tp.bandHeight)

	switch f := f.(type) {
	case pixfilter.ConvolutionFilter:
		k, err := tp.pipeline.Kernel(f.Kernel)
		if err != nil {
			return nil, err
		}
		// An empty row range validates sizes without touching pixels, so
		// images with no bands fail the same way as in Pipeline.Process.
		if err := pixfilter.ConvolveRows(out, src, k, 0, 0); err != nil {
			return nil, err
		}
		err = tp.run(rows, func(b parallel.Band) error {
			return pixfilter.ConvolveRows(out, src, k, b.Start, b.End)
		})
		if err != nil {
			return nil, err
		}
	case pixfilter.PointwiseFilter:
		err := tp.run(parallel.Scale(rows, src.Width()), func(b parallel.Band) error {
			return pixfilter.ApplyEffectRange(out, src, f.Effect, b.Start, b.End)
		})
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("tiled: process %v: %w", f, pixfilter.ErrUnknownFilter)
	}

	if intensity < 1 {
		err := tp.run(parallel.Scale(rows, src.Width()*4), func(b parallel.Band) error {
			return pixfilter.BlendRange(src, out, intensity, b.Start, b.End)
		})
		if err != nil {
			return nil, err
		}
	}

	pixfilter.Logger().Debug("tiled: processed",
		"filter", f.String(),
		"bands", len(rows),
		"workers", tp.workers,
		"elapsed", time.Since(start))

	return &pixfilter.Result{Output: out, Filter: f, Intensity: intensity}, nil
}

// run executes fn for every band on the pool and returns the first error.
func (tp *Processor) run(bands []parallel.Band, fn func(parallel.Band) error) error {
	errs := make([]error, len(bands))
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() {
			errs[i] = fn(b)
		}
	}

	tp.pool.ExecuteAll(work)

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
