package coloc

import "time"

type options struct {
	sigma      float64
	visibility float64
	iterations int
	seed       int64
	seeded     bool
	logger     *Logger
}

// Option configures a Solve or Animate run.
type Option func(*options)

// WithSigma sets the standard deviation of the additive Gaussian noise
// applied to every distance measurement. Defaults to 1.0.
func WithSigma(sigma float64) Option {
	return func(o *options) {
		o.sigma = sigma
	}
}

// WithVisibility sets the maximum true distance at which two nodes can
// measure each other. Zero, negative or +Inf means unlimited, which is
// the default.
func WithVisibility(visibility float64) Option {
	return func(o *options) {
		o.visibility = visibility
	}
}

// WithIterations sets the refinement step count for iterative
// algorithms. Defaults to solver.DefaultIterations.
func WithIterations(iterations int) Option {
	return func(o *options) {
		o.iterations = iterations
	}
}

// WithSeed seeds the noise and initialization sources, making the run
// reproducible. Without it every run draws a fresh seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithLogger configures structured logging for the run.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		sigma:  1.0,
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}
	return o
}
