// Command pixfilter applies convolution kernels and pointwise effects to
// image files.
//
//	pixfilter -filter sepia -intensity 60 photo.jpg
//	pixfilter -kernel "0,-1,0,-1,5,-1,0,-1,0" -histogram hist.png photo.png
//	pixfilter -filter edge -jobs 4 -outdir out/ *.png
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/gogpu/pixfilter"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		if !errors.Is(err, errUsage) {
			logArgError(os.Stderr, err)
		}
		os.Exit(2)
	}

	log := newLogger(os.Stderr, cfg.verbose)
	if cfg.verbose {
		pixfilter.SetLogger(slogLogger(log))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout, log); err != nil {
		log.Error().Err(err).Msg("pixfilter failed")
		stop()
		os.Exit(1)
	}
}
