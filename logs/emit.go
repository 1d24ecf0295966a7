package logs

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/miruken-go/mixin"
	"github.com/miruken-go/mixin/promise"
)

// emit logs basic composed method execution details.
type emit struct {
	root      logr.Logger
	verbosity int
}

func (e *emit) decorate(method string, next mixin.Strategy) mixin.Strategy {
	return func(
		self  *mixin.Instance,
		impls []mixin.Impl,
		args  ...any,
	) (out any, pout *promise.Promise[any], err error) {
		logger := e.root.V(e.verbosity)
		if !logger.Enabled() {
			return next(self, impls, args...)
		}
		logger = logger.WithName(method)
		logger.Info("calling", "implementations", len(impls), "args", len(args))
		start := time.Now()
		if out, pout, err = next(self, impls, args...); err != nil {
			logError(logger, err, start)
		} else if pout == nil {
			logSuccess(logger, start, false)
		} else {
			pout = promise.Catch(
				promise.Then(pout, func(o any) any {
					logSuccess(logger, start, true)
					return o
				}), func(ee error) error {
					logError(logger, ee, start)
					return ee
				})
		}
		return
	}
}

func (e *emit) composed(composite *mixin.Instance) {
	if logger := e.root.V(e.verbosity); logger.Enabled() {
		logger.Info("composed",
			"mixins", composite.NumMixins(),
			"methods", len(composite.Methods()),
			"names", composite.Methods())
	}
}

func logSuccess(logger logr.Logger, start time.Time, async bool) {
	logger.Info("completed", "async", async, "duration", time.Since(start))
}

func logError(logger logr.Logger, err error, start time.Time) {
	logger.Error(err, "failed", "duration", time.Since(start))
}
