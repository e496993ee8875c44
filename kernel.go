package pixfilter

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Kernel is a 3x3 convolution matrix indexed [row][column].
// Row 0 weights the pixel above the target, column 0 the pixel to its left.
type Kernel [3][3]float64

// KernelName identifies a kernel in a KernelRegistry.
type KernelName string

// Kernel names known to every registry.
const (
	KernelEdge     KernelName = "edge"
	KernelGaussian KernelName = "gaussian"
	KernelSharpen  KernelName = "sharpen"
	KernelEmboss   KernelName = "emboss"
	KernelBox      KernelName = "box"
	KernelCustom   KernelName = "custom"
)

// kernelOrder lists kernel names in presentation order.
var kernelOrder = []KernelName{
	KernelEdge, KernelGaussian, KernelSharpen, KernelEmboss, KernelBox, KernelCustom,
}

// builtinKernels holds the constant kernels. Values are copied out, never
// handed out by reference.
var builtinKernels = map[KernelName]Kernel{
	KernelEdge: {
		{-1, -1, -1},
		{-1, 8, -1},
		{-1, -1, -1},
	},
	KernelGaussian: {
		{1.0 / 16, 2.0 / 16, 1.0 / 16},
		{2.0 / 16, 4.0 / 16, 2.0 / 16},
		{1.0 / 16, 2.0 / 16, 1.0 / 16},
	},
	KernelSharpen: {
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	},
	KernelEmboss: {
		{-2, -1, 0},
		{-1, 1, 1},
		{0, 1, 2},
	},
	KernelBox: {
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
	},
}

// KernelNames returns every kernel name, custom last.
func KernelNames() []KernelName {
	return append([]KernelName(nil), kernelOrder...)
}

// IdentityKernel returns the kernel that leaves color channels unchanged.
func IdentityKernel() Kernel {
	return Kernel{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}
}

// Sanitize returns k with every NaN or infinite weight replaced by 0.
func (k Kernel) Sanitize() Kernel {
	for i := range k {
		for j := range k[i] {
			k[i][j] = finiteOrZero(k[i][j])
		}
	}
	return k
}

// KernelRegistry maps kernel names to kernels.
//
// The built-in kernels are constants. The custom slot starts as the
// identity kernel and changes only through SetCustomKernel.
//
// A KernelRegistry is not safe for concurrent mutation; it belongs to
// one Pipeline.
type KernelRegistry struct {
	custom Kernel
}

// NewKernelRegistry creates a registry whose custom kernel is the identity.
func NewKernelRegistry() *KernelRegistry {
	return &KernelRegistry{custom: IdentityKernel()}
}

// Kernel returns the kernel registered under name.
func (r *KernelRegistry) Kernel(name KernelName) (Kernel, bool) {
	if name == KernelCustom {
		return r.custom, true
	}
	k, ok := builtinKernels[name]
	return k, ok
}

// SetCustomKernel replaces the custom kernel. Non-finite weights are
// stored as 0, so the registry always holds a well-formed kernel.
func (r *KernelRegistry) SetCustomKernel(k Kernel) {
	clean := k.Sanitize()
	if clean != k {
		Logger().Debug("pixfilter: custom kernel weights normalized to zero")
	}
	r.custom = clean
}

// CustomKernel returns the current custom kernel.
func (r *KernelRegistry) CustomKernel() Kernel {
	return r.custom
}

// leadingFloat matches the numeric prefix a form field parser accepts.
var leadingFloat = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseKernel builds a kernel from nine text fields.
//
// Each field is parsed from its leading number ("1.5px" is 1.5), ignoring
// surrounding whitespace. Fields without a leading number, or whose number
// is not finite, become 0.
func ParseKernel(cells [3][3]string) Kernel {
	var k Kernel
	for i := range cells {
		for j := range cells[i] {
			k[i][j] = parseWeight(cells[i][j])
		}
	}
	return k
}

// KernelFromValues builds a kernel from loosely typed values, such as
// decoded JSON. Numbers are used as is, strings are parsed like
// ParseKernel fields, and anything else becomes 0.
func KernelFromValues(cells [3][3]any) Kernel {
	var k Kernel
	for i := range cells {
		for j := range cells[i] {
			k[i][j] = weightOf(cells[i][j])
		}
	}
	return k
}

func weightOf(v any) float64 {
	switch n := v.(type) {
	case float64:
		return finiteOrZero(n)
	case float32:
		return finiteOrZero(float64(n))
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case string:
		return parseWeight(n)
	case interface{ Float64() (float64, error) }: // json.Number
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return finiteOrZero(f)
	default:
		return 0
	}
}

func parseWeight(s string) float64 {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// Exponent overflow; the value is not finite anyway.
		return 0
	}
	return finiteOrZero(f)
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
