package mixin

import "github.com/miruken-go/mixin/promise"

type (
	// AsyncStrategies always produce a pending result.
	AsyncStrategies struct {
		Callable Strategy
		Override Strategy
		Parallel Strategy
		Pipe     Strategy
		Compose  Strategy
	}

	// SyncStrategies fail with ErrPromiseInSyncMode
	// instead of producing a pending result.
	SyncStrategies struct {
		Callable Strategy
		Override Strategy
		Sequence Strategy
		Parallel Strategy
		Pipe     Strategy
		Compose  Strategy
	}
)

var (
	Async = AsyncStrategies{
		Callable: Asynchronize(Callable),
		Override: Asynchronize(Override),
		Parallel: Asynchronize(Parallel),
		Pipe:     Asynchronize(Pipe),
		Compose:  Asynchronize(Compose),
	}

	Sync = SyncStrategies{
		Callable: Synchronize(Callable),
		Override: Synchronize(Override),
		Sequence: Synchronize(Parallel),
		Parallel: Synchronize(Parallel),
		Pipe:     Synchronize(Pipe),
		Compose:  Synchronize(Compose),
	}
)

// Asynchronize lifts an immediate result of strategy into
// a resolved promise.  Errors are returned as is.
func Asynchronize(strategy Strategy) Strategy {
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	return func(
		self  *Instance,
		impls []Impl,
		args  ...any,
	) (any, *promise.Promise[any], error) {
		out, pout, err := strategy(self, impls, args...)
		if err != nil {
			return nil, nil, err
		} else if pout == nil {
			pout = promise.Resolve(out)
		}
		return nil, pout, nil
	}
}

// Synchronize rejects a pending result of strategy
// with ErrPromiseInSyncMode.
func Synchronize(strategy Strategy) Strategy {
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	return func(
		self  *Instance,
		impls []Impl,
		args  ...any,
	) (any, *promise.Promise[any], error) {
		out, pout, err := strategy(self, impls, args...)
		if err != nil {
			return nil, nil, err
		} else if pout != nil {
			return nil, nil, ErrPromiseInSyncMode
		}
		return out, nil, nil
	}
}
