package mixin

import (
	"github.com/miruken-go/mixin/internal/slices"
	"github.com/miruken-go/mixin/promise"
)

// Override calls only the last implementation.
// With no implementations it does nothing.
func Override(
	_     *Instance,
	impls []Impl,
	args  ...any,
) (any, *promise.Promise[any], error) {
	if impl, ok := slices.Last(impls); ok && impl != nil {
		return impl(args...)
	}
	return nil, nil, nil
}

// Callable is an alias of Override.
func Callable(
	self  *Instance,
	impls []Impl,
	args  ...any,
) (any, *promise.Promise[any], error) {
	return Override(self, impls, args...)
}

// Parallel calls every implementation with the same args
// and collects the results in call order.  If any result
// is pending, the results are pending until all resolve.
func Parallel(
	_     *Instance,
	impls []Impl,
	args  ...any,
) (any, *promise.Promise[any], error) {
	results := make([]any, len(impls))
	pending := make([]*promise.Promise[any], len(impls))
	async   := false
	for i, impl := range impls {
		out, pout, err := impl(args...)
		if err != nil {
			return nil, nil, err
		}
		if pout != nil {
			pending[i], async = pout, true
		} else {
			results[i] = out
		}
	}
	if !async {
		return results, nil, nil
	}
	for i, p := range pending {
		if p == nil {
			pending[i] = promise.Resolve(results[i])
		}
	}
	return nil, promise.Then(promise.All(nil, pending...), func(r []any) any {
		return r
	}), nil
}

// Pipe threads a value through the implementations in order.
// The first arg is the initial value and each implementation
// receives the current value followed by the remaining args.
// A pending value suspends the remaining implementations.
func Pipe(
	_     *Instance,
	impls []Impl,
	args  ...any,
) (any, *promise.Promise[any], error) {
	var initial any
	if len(args) > 0 {
		initial, args = args[0], args[1:]
	}
	return thread(impls, initial, args)
}

// Compose is Pipe with the implementations in reverse order.
func Compose(
	self  *Instance,
	impls []Impl,
	args  ...any,
) (any, *promise.Promise[any], error) {
	return Pipe(self, slices.Reversed(impls), args...)
}

func thread(
	impls   []Impl,
	current any,
	args    []any,
) (any, *promise.Promise[any], error) {
	if p := pendingOf(current); p != nil {
		return nil, suspend(p, impls, args), nil
	}
	for i, impl := range impls {
		out, pout, err := impl(append([]any{current}, args...)...)
		if err != nil {
			return nil, nil, err
		}
		if pout != nil {
			return nil, suspend(pout, impls[i+1:], args), nil
		}
		current = out
	}
	return current, nil, nil
}

// suspend continues threading the remaining implementations
// once the pending value resolves.
func suspend(
	pending *promise.Promise[any],
	impls   []Impl,
	args    []any,
) *promise.Promise[any] {
	return promise.New(pending.Context(), func(
		resolve func(any), reject func(error), _ func(func()),
	) {
		current, err := pending.Await()
		if err != nil {
			reject(err)
			return
		}
		out, pout, err := thread(impls, current, args)
		if err == nil && pout != nil {
			out, err = pout.Await()
		}
		if err != nil {
			reject(err)
		} else {
			resolve(out)
		}
	})
}
