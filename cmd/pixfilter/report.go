package main

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"

	"github.com/gogpu/pixfilter"
)

// brightness returns the mean and population standard deviation of the
// histogram's bucket values, weighted by count.
func brightness(h *pixfilter.Histogram) (mean, std float64) {
	if h.Total() == 0 {
		return 0, 0
	}
	levels := make([]float64, len(h))
	weights := make([]float64, len(h))
	for i, n := range h {
		levels[i] = float64(i)
		weights[i] = float64(n)
	}
	return stat.PopMeanStdDev(levels, weights)
}

func printReports(w io.Writer, cfg *config, reports []*report) {
	pr := message.NewPrinter(language.English)
	for _, r := range reports {
		if r == nil {
			continue
		}
		h := r.result.Histogram()
		mean, std := brightness(h)
		// Dimensions go through fmt so they are never digit-grouped.
		size := fmt.Sprintf("%dx%d", r.width, r.height)
		pr.Fprintf(w, "%s -> %s: %s, %d pixels, filter %s at %.0f%%, brightness %.1f±%.1f, peak %d\n",
			r.input, r.output, size, h.Total(),
			cfg.filter, cfg.intensity*100, mean, std, h.Peak())
	}
}
