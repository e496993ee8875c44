package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/gogpu/pixfilter"
)

// loadKernelFile reads a 3x3 weight matrix from a YAML or JSON file:
//
//	- [0, -1, 0]
//	- [-1, 5, -1]
//	- [0, -1, 0]
//
// Cells may be numbers or strings; strings parse leniently as with -kernel.
func loadKernelFile(path string) (pixfilter.Kernel, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return pixfilter.Kernel{}, fmt.Errorf("-kernel-file: %w", err)
	}
	return decodeKernel(data)
}

func decodeKernel(data []byte) (pixfilter.Kernel, error) {
	var rows [][]any
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return pixfilter.Kernel{}, fmt.Errorf("-kernel-file: %w", err)
	}
	if len(rows) != 3 {
		return pixfilter.Kernel{}, fmt.Errorf("-kernel-file: want 3 rows, got %d", len(rows))
	}

	var cells [3][3]any
	for i, row := range rows {
		if len(row) != 3 {
			return pixfilter.Kernel{}, fmt.Errorf("-kernel-file: row %d: want 3 weights, got %d", i+1, len(row))
		}
		copy(cells[i][:], row)
	}
	return pixfilter.KernelFromValues(cells), nil
}
