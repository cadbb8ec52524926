package relidx

type options struct {
	capacity int
	logger   *Logger
}

// Option configures Stash construction behavior.
type Option func(*options)

// WithCapacity pre-allocates storage for n raw pairs. Callers that know the
// approximate member count of their dataset avoid re-allocations during
// accumulation.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLogger configures the logger used for build diagnostics.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
