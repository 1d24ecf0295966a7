package promise

import (
	"context"
	"fmt"
	"sync"
)

// Adapted from https://github.com/chebyrash/promise with runtime
// support since Go Generics offer limited inspection.

type (
	// Promise represents the eventual completion (or failure)
	// of an operation and its resulting value.
	Promise[T any] struct {
		base
		value T
	}

	base struct {
		err      error
		ctx      context.Context
		cancel   context.CancelFunc
		onCancel []func()
		ch       chan struct{}
		once     sync.Once
	}

	// CanceledError reports a Promise canceled by its context.
	CanceledError struct {
		cause error
	}
)


// New starts the executor and returns a Promise for its outcome.
// A panic inside the executor rejects the Promise.
func New[T any](
	ctx      context.Context,
	executor func(resolve func(T), reject func(error), onCancel func(func())),
) *Promise[T] {
	if executor == nil {
		panic("executor cannot be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	p := &Promise[T]{}
	p.ch = make(chan struct{})
	p.ctx, p.cancel = context.WithCancel(ctx)

	go func() {
		defer p.handlePanic()
		executor(p.resolve, p.reject, func(onCancel func()) {
			if onCancel != nil {
				p.onCancel = append(p.onCancel, onCancel)
			}
		})
	}()

	return p
}

// Resolve creates a Promise in the resolved state.
func Resolve[T any](value T) *Promise[T] {
	return &Promise[T]{value: value}
}

// Reject creates a Promise in the rejected state.
func Reject[T any](err error) *Promise[T] {
	return &Promise[T]{base: base{err: err}}
}

// Settled returns true if the outcome is already known.
func (p *Promise[T]) Settled() bool {
	if ch := p.ch; ch != nil {
		select {
		case <-ch:
			return true
		default:
			return false
		}
	}
	return true
}

// Await blocks until the Promise is resolved, rejected or canceled.
func (p *Promise[T]) Await() (T, error) {
	if ch := p.ch; ch != nil {
		if ctx := p.ctx; ctx != nil {
			select {
			case <-ctx.Done():
				p.Cancel()
			case <-ch:
			}
		} else {
			<-ch
		}
	}
	return p.value, p.err
}

// Cancel rejects the Promise with a CanceledError.
// A settled Promise keeps its outcome.
func (p *Promise[T]) Cancel() {
	if p.Settled() {
		return
	}
	p.once.Do(func() {
		p.doCancel()
	})
}

func (p *Promise[T]) resolve(value T) {
	p.once.Do(func() {
		if ctx := p.ctx; ctx != nil && ctx.Err() != nil {
			p.doCancel()
			return
		}
		p.value = value
		if ch := p.ch; ch != nil {
			close(ch)
		}
	})
}

func (p *Promise[T]) reject(err error) {
	p.once.Do(func() {
		if ctx := p.ctx; ctx != nil && ctx.Err() != nil {
			p.doCancel()
			return
		}
		p.err = err
		if ch := p.ch; ch != nil {
			close(ch)
		}
	})
}

func (p *Promise[T]) doCancel() {
	if p.cancel != nil {
		p.cancel()
	}
	var cause error
	if ctx := p.ctx; ctx != nil {
		cause = context.Cause(ctx)
	}
	p.err = CanceledError{cause}
	if ch := p.ch; ch != nil {
		close(ch)
	}
	for _, onCancel := range p.onCancel {
		func() {
			defer func() {
				recover() // ignore any panics
			}()
			onCancel()
		}()
	}
}

func (p *Promise[T]) handlePanic() {
	r := recover()
	if r == nil {
		return
	}
	switch v := r.(type) {
	case error:
		p.reject(v)
	default:
		p.reject(fmt.Errorf("%+v", v))
	}
}


// CanceledError

func (e CanceledError) Cause() error {
	return e.cause
}

func (e CanceledError) Error() string {
	if cause := e.cause; cause != nil {
		return "promise: canceled: " + cause.Error()
	}
	return "promise: canceled"
}

func (e CanceledError) Unwrap() error {
	return e.cause
}
