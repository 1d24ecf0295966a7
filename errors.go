package mixin

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/muir/reflectutils"
)

// ErrPromiseInSyncMode reports a synchronous strategy that
// received a pending result.
var ErrPromiseInSyncMode = errors.New("got promise in sync mode")

// ErrNotComposed reports a Self used before (or without)
// being bound to a composite Instance.
var ErrNotComposed = errors.New("mixin: not composed")

type (
	// MethodNotFoundError reports a call to a method name
	// that was not declared by the Strategies.
	MethodNotFoundError struct {
		Name string
	}

	// StrategyError reports an invalid Strategies entry.
	StrategyError struct {
		Name   string
		Reason error
	}

	// SpecError reports a mixin spec that cannot be constructed.
	SpecError struct {
		Index  int
		Spec   any
		Reason error
	}

	// ConstructorError reports a mixin that failed to construct.
	ConstructorError struct {
		Index  int
		Reason error
	}

	// ArgumentError reports an argument not assignable to
	// the parameter of a mixin method or constructor.
	ArgumentError struct {
		Method string
		Index  int
		Arg    any
		Param  reflect.Type
	}

	// ResultError reports a result not matching the expected type.
	ResultError struct {
		Method   string
		Result   any
		Expected reflect.Type
	}
)


func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("mixin: method %q not found", e.Name)
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("mixin: invalid strategy %q: %v", e.Name, e.Reason)
}

func (e *StrategyError) Unwrap() error {
	return e.Reason
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("mixin: invalid spec %d (%s): %v",
		e.Index, typeName(reflect.TypeOf(e.Spec)), e.Reason)
}

func (e *SpecError) Unwrap() error {
	return e.Reason
}

func (e *ConstructorError) Error() string {
	return fmt.Sprintf("mixin: constructing mixin %d: %v", e.Index, e.Reason)
}

func (e *ConstructorError) Unwrap() error {
	return e.Reason
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("mixin: %s argument %d of type %s is not assignable to %s",
		e.Method, e.Index, typeName(reflect.TypeOf(e.Arg)), typeName(e.Param))
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("mixin: %s result of type %s is not a %s",
		e.Method, typeName(reflect.TypeOf(e.Result)), typeName(e.Expected))
}

func typeName(typ reflect.Type) string {
	if typ == nil {
		return "nil"
	}
	return reflectutils.TypeName(typ)
}
