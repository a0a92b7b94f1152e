package vcl

import "github.com/gofhir/vcl/logger"

// Option configures a Compiler.
type Option func(*Options)

// Options holds all configuration for a Compiler.
type Options struct {
	// CacheSize is the capacity of the parsed-composition memo cache.
	// Zero disables caching.
	CacheSize int

	// Sequence supplies the identifiers for ParseAndAssignID. When nil the
	// Compiler owns a fresh one.
	Sequence *Sequence

	// Logger receives debug traces. When nil the package default is used.
	Logger *logger.Logger
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		CacheSize: 256,
	}
}

// WithCacheSize sets the memo cache capacity. Zero disables caching.
func WithCacheSize(n int) Option {
	return func(o *Options) {
		o.CacheSize = n
	}
}

// WithoutCache disables the memo cache.
func WithoutCache() Option {
	return func(o *Options) {
		o.CacheSize = 0
	}
}

// WithSequence injects the identifier source, letting tests isolate or
// reset the counter.
func WithSequence(s *Sequence) Option {
	return func(o *Options) {
		o.Sequence = s
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
