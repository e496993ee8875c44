package pixfilter

import (
	"errors"
	"testing"
)

func TestSplitView(t *testing.T) {
	orig, _ := NewPixelBuffer(5, 2)
	orig.Fill(1, 1, 1, 1)
	proc, _ := NewPixelBuffer(5, 2)
	proc.Fill(2, 2, 2, 2)

	tests := []struct {
		x        int
		leftCols int
	}{
		{-3, 0},
		{0, 0},
		{2, 2},
		{5, 5},
		{99, 5},
	}

	for _, tt := range tests {
		out, err := SplitView(orig, proc, tt.x)
		if err != nil {
			t.Fatalf("SplitView(%d) = %v", tt.x, err)
		}
		for y := 0; y < 2; y++ {
			for x := 0; x < 5; x++ {
				want := uint8(2)
				if x < tt.leftCols {
					want = 1
				}
				if got := out.PixelAt(x, y)[0]; got != want {
					t.Errorf("x=%d: pixel (%d,%d) = %d, want %d", tt.x, x, y, got, want)
				}
			}
		}
	}

	// Inputs are not modified.
	if proc.PixelAt(0, 0)[0] != 2 {
		t.Error("SplitView modified processed buffer")
	}
}

func TestSplitViewMismatch(t *testing.T) {
	a, _ := NewPixelBuffer(2, 2)
	b, _ := NewPixelBuffer(3, 2)
	if _, err := SplitView(a, b, 1); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("err = %v, want ErrDimensionMismatch", err)
	}
}
