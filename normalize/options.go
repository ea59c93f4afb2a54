package normalize

import (
	"github.com/vortex-fintech/fieldnorm/foundation/logger"
	"github.com/vortex-fintech/fieldnorm/foundation/timeutil"
	"github.com/vortex-fintech/fieldnorm/runtime/metrics"
)

type options struct {
	log     logger.LoggerInterface
	metrics metrics.Recorder
	clock   timeutil.Clock
}

type Option func(*options)

// WithLogger sets the logger used for debug traces. Values are masked before logging.
func WithLogger(l logger.LoggerInterface) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.metrics = r
		}
	}
}

// WithClock sets the time source for per-record durations.
func WithClock(c timeutil.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		log:     logger.Nop(),
		metrics: metrics.Nop(),
		clock:   timeutil.UTCClock{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
