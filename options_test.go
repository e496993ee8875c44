package pixfilter

import (
	"math"
	"testing"
)

func TestNewDefault(t *testing.T) {
	p := New()
	if p.Registry() == nil {
		t.Fatal("New() should create a registry")
	}
	if k, _ := p.Kernel(KernelCustom); k != IdentityKernel() {
		t.Errorf("custom kernel = %v, want identity", k)
	}
}

func TestWithKernelRegistry(t *testing.T) {
	r := NewKernelRegistry()
	p := New(WithKernelRegistry(r))

	if p.Registry() != r {
		t.Error("WithKernelRegistry should inject the given registry")
	}

	r.SetCustomKernel(Kernel{{0, 0, 0}, {0, 2, 0}, {0, 0, 0}})
	if k, _ := p.Kernel(KernelCustom); k[1][1] != 2 {
		t.Errorf("pipeline should see registry updates, got %v", k)
	}
}

func TestWithCustomKernel(t *testing.T) {
	p := New(WithCustomKernel(Kernel{{math.NaN(), 1, 0}, {0, 1, 0}, {0, 0, 0}}))

	want := Kernel{{0, 1, 0}, {0, 1, 0}, {0, 0, 0}}
	if k, _ := p.Kernel(KernelCustom); k != want {
		t.Errorf("custom kernel = %v, want %v", k, want)
	}
}

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.registry == nil {
		t.Fatal("defaultOptions should provide a registry")
	}
	if o.custom != nil {
		t.Errorf("custom = %v, want nil", o.custom)
	}
}

func TestWithKernelRegistryNil(t *testing.T) {
	p := New(WithKernelRegistry(nil))
	if p.Registry() == nil {
		t.Fatal("WithKernelRegistry(nil) should fall back to a fresh registry")
	}
	if _, err := p.Kernel(KernelSharpen); err != nil {
		t.Errorf("Kernel(sharpen) = %v", err)
	}
}
