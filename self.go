package mixin

import "github.com/miruken-go/mixin/promise"

type (
	// Caller calls methods by name.
	Caller interface {
		Call(name string, args ...any) (any, *promise.Promise[any], error)
	}

	// Self is embedded in a mixin to reach the composite Instance
	// it was combined into.  Calls through Self always run the
	// composed method so a mixin calling one of its own declared
	// methods observes the contributions of every mixin.
	Self struct {
		composite *Instance
	}

	binder interface {
		bind(composite *Instance)
	}
)


func (s *Self) Composite() *Instance {
	return s.composite
}

func (s *Self) Call(name string, args ...any) (any, *promise.Promise[any], error) {
	if s.composite == nil {
		return nil, nil, ErrNotComposed
	}
	return s.composite.Call(name, args...)
}

// Method returns the composed method which can be passed
// around as a callback.  The composite is resolved when called.
func (s *Self) Method(name string) Impl {
	return func(args ...any) (any, *promise.Promise[any], error) {
		return s.Call(name, args...)
	}
}

func (s *Self) bind(composite *Instance) {
	s.composite = composite
}
