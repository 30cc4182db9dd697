package colortransfer

import (
	"log/slog"

	"github.com/gogpu/colortransfer/internal/parallel"
)

// Option configures a transfer method or a statistics computation.
//
// Example:
//
//	// Cholesky transfer computed in linear light on 4 workers
//	t := colortransfer.NewCholesky(
//	    colortransfer.WithLinearLight(true),
//	    colortransfer.WithWorkers(4),
//	)
type Option func(*options)

type options struct {
	workers     int
	logger      *slog.Logger
	linearLight bool
}

func defaultOptions() options {
	return options{}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWorkers sets the number of goroutines used for statistics and pixel
// mapping. 0 (the default) shares a process-wide pool sized to GOMAXPROCS,
// 1 runs on the calling goroutine, and larger values use a dedicated pool
// for the duration of each call.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = max(n, 0)
	}
}

// WithLogger sets the logger for this method, overriding [SetLogger].
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithLinearLight makes linear transfers compute statistics and apply the
// affine map on linear-light values. Inputs are treated as sRGB-encoded;
// the output is re-encoded to sRGB, which clamps it to [0,1].
//
// Off by default. Luminance transfer ignores it.
func WithLinearLight(on bool) Option {
	return func(o *options) {
		o.linearLight = on
	}
}

func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

// pool returns the worker pool for one call and the function releasing it.
func (o *options) pool() (*parallel.WorkerPool, func()) {
	switch o.workers {
	case 0:
		return parallel.Default(), func() {}
	case 1:
		return nil, func() {}
	default:
		p := parallel.NewWorkerPool(o.workers)
		return p, p.Close
	}
}
