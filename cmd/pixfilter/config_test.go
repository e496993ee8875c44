package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/pixfilter"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig([]string{"in.png"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.filter != (pixfilter.PointwiseFilter{Effect: pixfilter.EffectNone}) {
		t.Errorf("filter = %v, want none", cfg.filter)
	}
	if cfg.intensity != 1 {
		t.Errorf("intensity = %v, want 1", cfg.intensity)
	}
	if cfg.out != defaultOutput || cfg.maxWidth != defaultMaxWidth || cfg.histHeight != defaultHistH {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.split >= 0 {
		t.Errorf("split = %v, want disabled", cfg.split)
	}
	if cfg.workers != 1 || cfg.jobs != 1 {
		t.Errorf("workers = %d, jobs = %d, want 1, 1", cfg.workers, cfg.jobs)
	}
	r, g, b, _ := cfg.histColor.RGBA()
	if r>>8 != 0x00 || g>>8 != 0xbc || b>>8 != 0xd4 {
		t.Errorf("histColor = %v, want #00bcd4", cfg.histColor)
	}
}

func TestParseConfigIntensityClamped(t *testing.T) {
	tests := []struct {
		arg  string
		want float64
	}{
		{"50", 0.5},
		{"0", 0},
		{"150", 1},
		{"-20", 0},
	}
	for _, tt := range tests {
		cfg, err := parseConfig([]string{"-intensity", tt.arg, "in.png"}, io.Discard)
		if err != nil {
			t.Fatalf("-intensity %s: %v", tt.arg, err)
		}
		if cfg.intensity != tt.want {
			t.Errorf("-intensity %s = %v, want %v", tt.arg, cfg.intensity, tt.want)
		}
	}
}

func TestParseConfigKernelImpliesCustom(t *testing.T) {
	cfg, err := parseConfig([]string{"-kernel", "0,-1,0,-1,5,-1,0,-1,0", "in.png"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.filter != (pixfilter.ConvolutionFilter{Kernel: pixfilter.KernelCustom}) {
		t.Errorf("filter = %v, want custom", cfg.filter)
	}
	want := pixfilter.Kernel{{0, -1, 0}, {-1, 5, -1}, {0, -1, 0}}
	if diff := cmp.Diff(want, *cfg.kernel); diff != "" {
		t.Errorf("kernel mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigKernelWithExplicitFilter(t *testing.T) {
	cfg, err := parseConfig([]string{"-filter", "sepia", "-kernel", "1,2,3,4,5,6,7,8,9", "in.png"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.filter != (pixfilter.PointwiseFilter{Effect: pixfilter.EffectSepia}) {
		t.Errorf("filter = %v, want sepia", cfg.filter)
	}
	if cfg.kernel == nil {
		t.Error("kernel should still be set")
	}
}

func TestParseConfigKernelLenientCells(t *testing.T) {
	cfg, err := parseConfig([]string{"-kernel", " 1px,abc,,0.5,1e400,-2,.25,+3,x9", "in.png"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	want := pixfilter.Kernel{{1, 0, 0}, {0.5, 0, -2}, {0.25, 3, 0}}
	if diff := cmp.Diff(want, *cfg.kernel); diff != "" {
		t.Errorf("kernel mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown filter", []string{"-filter", "blurry", "in.png"}},
		{"short kernel", []string{"-kernel", "1,2,3", "in.png"}},
		{"split out of range", []string{"-split", "1.5", "in.png"}},
		{"negative split", []string{"-split", "-0.1", "in.png"}},
		{"bad color", []string{"-hist-color", "cyan", "in.png"}},
		{"zero hist height", []string{"-hist-height", "0", "in.png"}},
		{"batch without outdir", []string{"a.png", "b.png"}},
		{"unknown flag", []string{"-nope", "in.png"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseConfig(tt.args, io.Discard); err == nil {
				t.Errorf("parseConfig(%q) succeeded, want error", tt.args)
			}
		})
	}
}

func TestParseConfigUnknownFilterIsTyped(t *testing.T) {
	_, err := parseConfig([]string{"-filter", "blurry", "in.png"}, io.Discard)
	if !errors.Is(err, pixfilter.ErrUnknownFilter) {
		t.Errorf("err = %v, want ErrUnknownFilter", err)
	}
}

func TestParseConfigNoInputs(t *testing.T) {
	if _, err := parseConfig(nil, io.Discard); !errors.Is(err, errUsage) {
		t.Errorf("err = %v, want errUsage", err)
	}
}

func TestParseConfigHelp(t *testing.T) {
	if _, err := parseConfig([]string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("err = %v, want flag.ErrHelp", err)
	}
}

func TestParseConfigListNeedsNoInputs(t *testing.T) {
	cfg, err := parseConfig([]string{"-list"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.list {
		t.Error("list not set")
	}
}

func TestParseConfigSplitZeroAllowed(t *testing.T) {
	cfg, err := parseConfig([]string{"-split", "0", "in.png"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.split != 0 {
		t.Errorf("split = %v, want 0", cfg.split)
	}
}

func TestParseConfigEnvironmentDefaults(t *testing.T) {
	t.Setenv("PIXFILTER_MAX_WIDTH", "320")
	t.Setenv("PIXFILTER_WORKERS", "4")
	t.Setenv("PIXFILTER_HIST_COLOR", "#ff0000")

	cfg, err := parseConfig([]string{"-workers", "2", "in.png"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.maxWidth != 320 {
		t.Errorf("maxWidth = %d, want 320 from environment", cfg.maxWidth)
	}
	if cfg.workers != 2 {
		t.Errorf("workers = %d, want flag value 2", cfg.workers)
	}
	if r, _, _, _ := cfg.histColor.RGBA(); r>>8 != 0xff {
		t.Errorf("histColor = %v, want #ff0000", cfg.histColor)
	}
}

func TestParseConfigBadEnvironment(t *testing.T) {
	t.Setenv("PIXFILTER_JOBS", "many")
	if _, err := parseConfig([]string{"in.png"}, io.Discard); err == nil {
		t.Error("invalid PIXFILTER_JOBS should fail")
	}
}

func TestParseConfigKernelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "k.json")
	if err := os.WriteFile(path, []byte(`[[0,0,0],[0,2,0],[0,0,0]]`), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := parseConfig([]string{"-kernel-file", path, "in.png"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.filter != (pixfilter.ConvolutionFilter{Kernel: pixfilter.KernelCustom}) {
		t.Errorf("filter = %v, want custom", cfg.filter)
	}
	if cfg.kernel == nil || cfg.kernel[1][1] != 2 {
		t.Errorf("kernel = %v", cfg.kernel)
	}

	if _, err := parseConfig([]string{"-kernel-file", path, "-kernel", "1,1,1,1,1,1,1,1,1", "in.png"}, io.Discard); err == nil {
		t.Error("-kernel with -kernel-file should fail")
	}
}

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.jpg", "sub/c.png", "sub/deep/d.png"} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	got, err := expandInputs([]string{
		filepath.Join(dir, "**", "*.png"),
		"literal.gif",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "sub", "c.png"),
		filepath.Join(dir, "sub", "deep", "d.png"),
		"literal.gif",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("expandInputs mismatch (-want +got):\n%s", diff)
	}

	if _, err := expandInputs([]string{filepath.Join(dir, "*.webp")}); err == nil {
		t.Error("pattern with no matches should fail")
	}
}
