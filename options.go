package ordmap

import "go.uber.org/zap"

// Options configure a Map.  They are fixed once the map is constructed.
type Options struct {
	// Logger receives debug events (clears, rejected bulk loads).
	// Defaults to a no-op logger.
	Logger *zap.Logger

	// ScalarIndex enables the tag table for scalar keys.  When false,
	// scalar keys are found by walking the entry list.
	ScalarIndex bool

	// IdentityIndex enables the host map for comparable keys.  When
	// false, those keys are found by walking the entry list.
	IdentityIndex bool

	// CapacityHint presizes the index tables.
	CapacityHint int
}

// DefaultOptions has every index tier enabled.
var DefaultOptions = Options{
	ScalarIndex:   true,
	IdentityIndex: true,
}

// Option is a functional option for configuring a Map.
type Option func(*Options)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithoutScalarIndex routes scalar keys to the list scan.
func WithoutScalarIndex() Option {
	return func(o *Options) {
		o.ScalarIndex = false
	}
}

// WithoutIdentityIndex routes comparable non-scalar keys to the list
// scan, as if the host had no identity-keyed map.
func WithoutIdentityIndex() Option {
	return func(o *Options) {
		o.IdentityIndex = false
	}
}

// WithCapacityHint presizes the index tables for about n keys.
func WithCapacityHint(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.CapacityHint = n
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
