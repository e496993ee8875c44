package pixfilter

// Option configures a Pipeline during creation.
// Use functional options to customize Pipeline behavior.
//
// Example:
//
//	// Default registry, identity custom kernel
//	p := pixfilter.New()
//
//	// Start with a custom kernel already set
//	p := pixfilter.New(pixfilter.WithCustomKernel(k))
type Option func(*options)

// options holds optional configuration for Pipeline creation.
type options struct {
	registry *KernelRegistry
	custom   *Kernel
}

// defaultOptions returns the default pipeline options: a fresh registry
// with the identity custom kernel.
func defaultOptions() options {
	return options{registry: NewKernelRegistry()}
}

// WithKernelRegistry makes the Pipeline use r instead of a fresh registry.
// The caller must not mutate r while the Pipeline is processing.
func WithKernelRegistry(r *KernelRegistry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithCustomKernel sets the custom kernel at creation time. The kernel is
// sanitized exactly as by SetCustomKernel.
func WithCustomKernel(k Kernel) Option {
	return func(o *options) {
		o.custom = &k
	}
}
