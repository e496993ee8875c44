package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/pixfilter"
	"github.com/gogpu/pixfilter/internal/imageio"
	"github.com/gogpu/pixfilter/tiled"
)

// processor is satisfied by both pixfilter.Pipeline and tiled.Processor.
type processor interface {
	Process(src *pixfilter.PixelBuffer, f pixfilter.Filter, intensity float64) (*pixfilter.Result, error)
}

// report summarizes one processed input.
type report struct {
	input         string
	output        string
	width, height int
	result        *pixfilter.Result
}

// run processes every input and prints a summary to stdout.
func run(ctx context.Context, cfg *config, stdout io.Writer, log zerolog.Logger) error {
	if cfg.list {
		for _, name := range pixfilter.FilterNames() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	newProcessor := func() processor { return newPipeline(cfg) }
	if cfg.workers != 1 {
		// Processors are safe for concurrent use, so inputs share one pool.
		tp := tiled.New(newPipeline(cfg), tiled.WithWorkers(cfg.workers))
		defer tp.Close()
		newProcessor = func() processor { return tp }
	}

	outputs := outputPaths(cfg)
	reports := make([]*report, len(cfg.inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.jobs)
	for i, in := range cfg.inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			rep, err := processFile(cfg, newProcessor(), in, outputs[i])
			if err != nil {
				return err
			}
			log.Info().
				Str("input", in).
				Str("output", rep.output).
				Str("filter", cfg.filter.String()).
				Msg("processed")
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	printReports(stdout, cfg, reports)
	return nil
}

func newPipeline(cfg *config) *pixfilter.Pipeline {
	var opts []pixfilter.Option
	if cfg.kernel != nil {
		opts = append(opts, pixfilter.WithCustomKernel(*cfg.kernel))
	}
	return pixfilter.New(opts...)
}

// processFile loads in, applies the configured filter and writes the
// processed image plus any requested split view and histogram chart.
func processFile(cfg *config, p processor, in, out string) (*report, error) {
	src, err := imageio.Load(in)
	if err != nil {
		return nil, err
	}
	src = imageio.FitWidth(src, cfg.maxWidth)

	res, err := p.Process(src, cfg.filter, cfg.intensity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in, err)
	}
	if err := imageio.SavePNG(out, res.Output); err != nil {
		return nil, err
	}

	if cfg.split >= 0 {
		x := int(cfg.split * float64(src.Width()))
		view, err := pixfilter.SplitView(src, res.Output, x)
		if err != nil {
			return nil, err
		}
		if err := imageio.SavePNG(withSuffix(out, "_split"), view); err != nil {
			return nil, err
		}
	}

	if cfg.histogram != "" {
		path := cfg.histogram
		if len(cfg.inputs) > 1 {
			path = withSuffix(out, "_histogram")
		}
		chart := res.Histogram().Image(cfg.histHeight, cfg.histColor)
		if err := imageio.SaveImage(path, chart); err != nil {
			return nil, err
		}
	}

	return &report{
		input:  in,
		output: out,
		width:  src.Width(),
		height: src.Height(),
		result: res,
	}, nil
}

// outputPaths names the processed file for every input. In batch mode
// each input maps to <outdir>/<name>.png; when two inputs share a name,
// later ones get _2, _3 and so on, so that no output, split view or
// histogram file is written twice.
func outputPaths(cfg *config) []string {
	out := make([]string, len(cfg.inputs))
	if cfg.outdir == "" {
		for i := range out {
			out[i] = cfg.out
		}
		return out
	}

	taken := make(map[string]bool)
	for i, in := range cfg.inputs {
		base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
		for n := 1; ; n++ {
			name := base
			if n > 1 {
				name = fmt.Sprintf("%s_%d", base, n)
			}
			files := derivedFiles(filepath.Join(cfg.outdir, name+".png"))
			if !slices.ContainsFunc(files, func(f string) bool { return taken[f] }) {
				for _, f := range files {
					taken[f] = true
				}
				out[i] = files[0]
				break
			}
		}
	}
	return out
}

// derivedFiles lists out and the files written next to it.
func derivedFiles(out string) []string {
	return []string{out, withSuffix(out, "_split"), withSuffix(out, "_histogram")}
}

func withSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}
