package promise

import "context"

// Then chains a transformation of the resolved value.
// Rejections skip the transformation.
func Then[A, B any](p *Promise[A], resolve func(A) B) *Promise[B] {
	if resolve == nil {
		panic("resolve cannot be nil")
	}
	return New(p.ctx, func(res func(B), rej func(error), _ func(func())) {
		if result, err := p.Await(); err != nil {
			rej(err)
		} else {
			res(resolve(result))
		}
	})
}

// Catch chains a transformation of the rejection.
func Catch[T any](p *Promise[T], reject func(err error) error) *Promise[T] {
	if reject == nil {
		panic("reject cannot be nil")
	}
	return New(p.ctx, func(res func(T), rej func(error), _ func(func())) {
		if result, err := p.Await(); err != nil {
			rej(reject(err))
		} else {
			res(result)
		}
	})
}

// All resolves when all promises have resolved, or rejects
// immediately upon any of the promises rejecting.
// Results preserve the order of the promises.
func All[T any](
	ctx      context.Context,
	promises ...*Promise[T],
) *Promise[[]T] {
	if len(promises) == 0 {
		return Resolve([]T{})
	}

	return New(ctx, func(resolve func([]T), reject func(error), _ func(func())) {
		type indexed struct {
			val T
			idx int
		}
		results := make(chan indexed, len(promises))
		errs    := make(chan error, len(promises))

		for idx, p := range promises {
			go func(idx int, p *Promise[T]) {
				if val, err := p.Await(); err != nil {
					errs <- err
				} else {
					results <- indexed{val, idx}
				}
			}(idx, p)
		}

		out := make([]T, len(promises))
		for range promises {
			select {
			case r := <-results:
				out[r.idx] = r.val
			case err := <-errs:
				reject(err)
				return
			}
		}
		resolve(out)
	})
}
