package mlp

import (
	"log/slog"

	"golang.org/x/exp/rand"

	"github.com/born-ml/perceptron/internal/optim"
)

// DefaultThreshold is the epoch-mean MSE below which RunRprop and Fit stop.
const DefaultThreshold = 0.01

// Option configures a Network.
type Option func(*options)

type options struct {
	src       rand.Source
	init      Initializer
	logger    *slog.Logger
	rprop     optim.RpropConfig
	threshold float64
}

func defaultOptions() *options {
	return &options{
		init:      InitScaledNormal,
		rprop:     optim.DefaultRpropConfig(),
		threshold: DefaultThreshold,
	}
}

// WithSeed seeds the network's own random source.
//
// Two networks built with the same sizes, initializer and seed start from
// identical weights.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.src = rand.NewSource(seed)
	}
}

// WithRandSource sets the random source used for weight initialisation.
func WithRandSource(src rand.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithInitializer selects the weight initialisation scheme.
func WithInitializer(scheme Initializer) Option {
	return func(o *options) {
		o.init = scheme
	}
}

// WithLogger sets the logger training loops report to.
//
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRpropConfig overrides the Rprop constants.
func WithRpropConfig(config optim.RpropConfig) Option {
	return func(o *options) {
		o.rprop = config
	}
}

// WithThreshold sets the epoch-mean MSE at which RunRprop and Fit report
// the network as trained.
func WithThreshold(threshold float64) Option {
	return func(o *options) {
		o.threshold = threshold
	}
}
