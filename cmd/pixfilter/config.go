package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/pixfilter"
)

const (
	defaultOutput   = "processed_image.png"
	defaultMaxWidth = 800
	defaultHistH    = 100
)

var errUsage = errors.New("usage")

// envDefaults are flag defaults taken from PIXFILTER_* environment
// variables. Flags given on the command line win.
type envDefaults struct {
	MaxWidth  int    `envconfig:"MAX_WIDTH" default:"800"`
	Workers   int    `envconfig:"WORKERS" default:"1"`
	Jobs      int    `envconfig:"JOBS" default:"1"`
	HistColor string `envconfig:"HIST_COLOR" default:"#00bcd4"`
	Verbose   bool   `envconfig:"VERBOSE" default:"false"`
}

// config is the validated command line.
type config struct {
	filter     pixfilter.Filter
	intensity  float64 // fraction in [0, 1]
	kernel     *pixfilter.Kernel
	out        string
	outdir     string
	maxWidth   int
	split      float64 // fraction of the width, < 0 when disabled
	histogram  string
	histColor  color.Color
	histHeight int
	workers    int
	jobs       int
	list       bool
	verbose    bool
	inputs     []string
}

// parseConfig parses args (without the program name). Usage and flag
// errors are written to stderr.
func parseConfig(args []string, stderr io.Writer) (*config, error) {
	var env envDefaults
	if err := envconfig.Process("pixfilter", &env); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	fs := flag.NewFlagSet("pixfilter", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: pixfilter [flags] input...\n\nFilters: %s\n\nFlags:\n",
			strings.Join(pixfilter.FilterNames(), ", "))
		fs.PrintDefaults()
	}

	var (
		filterName = fs.String("filter", "none", "filter to apply")
		percent    = fs.Float64("intensity", 100, "filter intensity in percent (0-100)")
		kernel     = fs.String("kernel", "", "custom 3x3 weights \"a,b,c,d,e,f,g,h,i\", row-major; implies -filter custom")
		kernelFile = fs.String("kernel-file", "", "read custom weights from a YAML or JSON 3x3 matrix; implies -filter custom")
		out        = fs.String("out", defaultOutput, "output PNG for a single input")
		outdir     = fs.String("outdir", "", "output directory; required for more than one input")
		maxWidth   = fs.Int("max-width", env.MaxWidth, "downscale inputs wider than this (0 disables)")
		split      = fs.Float64("split", -1, "also write a before/after composite split at this width fraction (0-1)")
		histogram  = fs.String("histogram", "", "write a brightness histogram chart to this PNG (<name>_histogram.png per input when batching)")
		histColor  = fs.String("hist-color", env.HistColor, "histogram bar color")
		histHeight = fs.Int("hist-height", defaultHistH, "histogram chart height in pixels")
		workers    = fs.Int("workers", env.Workers, "band workers per image (1 = serial, 0 = GOMAXPROCS)")
		jobs       = fs.Int("jobs", env.Jobs, "images processed concurrently")
		list       = fs.Bool("list", false, "list filter names and exit")
		verbose    = fs.Bool("v", env.Verbose, "verbose logging")
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &config{
		out:        *out,
		outdir:     *outdir,
		maxWidth:   max(*maxWidth, 0),
		split:      *split,
		histogram:  *histogram,
		histHeight: *histHeight,
		workers:    *workers,
		jobs:       max(*jobs, 1),
		list:       *list,
		verbose:    *verbose,
		inputs:     fs.Args(),
	}
	if cfg.list {
		return cfg, nil
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	name := *filterName
	if *kernel != "" && *kernelFile != "" {
		return nil, errors.New("-kernel and -kernel-file are mutually exclusive")
	}
	if *kernel != "" || *kernelFile != "" {
		var (
			k   pixfilter.Kernel
			err error
		)
		if *kernel != "" {
			k, err = parseKernelFlag(*kernel)
		} else {
			k, err = loadKernelFile(*kernelFile)
		}
		if err != nil {
			return nil, err
		}
		cfg.kernel = &k
		if !set["filter"] {
			name = string(pixfilter.KernelCustom)
		}
	}

	f, err := pixfilter.ParseFilter(name)
	if err != nil {
		return nil, err
	}
	cfg.filter = f
	if math.IsNaN(*percent) {
		return nil, errors.New("-intensity: not a number")
	}
	cfg.intensity = min(max(*percent, 0), 100) / 100

	if set["split"] && (cfg.split < 0 || cfg.split > 1) {
		return nil, fmt.Errorf("-split %v: must be between 0 and 1", cfg.split)
	}

	c, err := colorful.Hex(*histColor)
	if err != nil {
		return nil, fmt.Errorf("-hist-color %q: %w", *histColor, err)
	}
	cfg.histColor = c
	if cfg.histHeight < 1 {
		return nil, fmt.Errorf("-hist-height %d: must be positive", cfg.histHeight)
	}

	inputs, err := expandInputs(cfg.inputs)
	if err != nil {
		return nil, err
	}
	cfg.inputs = inputs

	switch {
	case len(cfg.inputs) == 0:
		fs.Usage()
		return nil, errUsage
	case len(cfg.inputs) > 1 && cfg.outdir == "":
		return nil, fmt.Errorf("%d inputs: -outdir is required", len(cfg.inputs))
	}
	return cfg, nil
}

// parseKernelFlag splits nine comma-separated cells into a kernel. Cells
// parse leniently, so "1px" reads as 1 and "abc" as 0.
func parseKernelFlag(s string) (pixfilter.Kernel, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 9 {
		return pixfilter.Kernel{}, fmt.Errorf("-kernel %q: want 9 comma-separated weights, got %d", s, len(parts))
	}
	var cells [3][3]string
	for i, p := range parts {
		cells[i/3][i%3] = p
	}
	return pixfilter.ParseKernel(cells), nil
}

// expandInputs replaces glob patterns, including ** for any depth, with
// the files they match. Other arguments pass through untouched.
func expandInputs(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			out = append(out, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("input %q: no files match", arg)
		}
		slices.Sort(matches)
		out = append(out, matches...)
	}
	return out, nil
}
