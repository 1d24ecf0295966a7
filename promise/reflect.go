package promise

import (
	"context"
	"reflect"
)

// Reflect erases the value type of a Promise so promises
// can be detected and awaited when only known at runtime.
type Reflect interface {
	Context() context.Context
	UnderlyingType() reflect.Type
	AwaitAny() (any, error)
}

func (p *Promise[T]) Context() context.Context {
	return p.ctx
}

func (p *Promise[T]) UnderlyingType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func (p *Promise[T]) AwaitAny() (any, error) {
	return p.Await()
}

// Inspect returns the value type if typ is a Promise.
func Inspect(typ reflect.Type) (reflect.Type, bool) {
	if typ != nil && typ.Kind() == reflect.Ptr && typ.Implements(reflectType) {
		p := reflect.Zero(typ).Interface().(Reflect)
		return p.UnderlyingType(), true
	}
	return nil, false
}

// Erase returns p as a Promise of any, reusing it if already one.
func Erase(p Reflect) *Promise[any] {
	if p == nil {
		panic("p cannot be nil")
	}
	if pa, ok := p.(*Promise[any]); ok {
		return pa
	}
	return Coerce[any](p)
}

// Coerce converts a Promise of an unknown value type into a Promise[T].
// A nil resolution becomes the zero T.
func Coerce[T any](p Reflect) *Promise[T] {
	if p == nil {
		panic("p cannot be nil")
	}
	if pt, ok := p.(*Promise[T]); ok {
		return pt
	}
	return New(p.Context(), func(resolve func(T), reject func(error), _ func(func())) {
		data, err := p.AwaitAny()
		if err != nil {
			reject(err)
		} else if data == nil {
			var t T
			resolve(t)
		} else {
			resolve(data.(T))
		}
	})
}

var reflectType = reflect.TypeOf((*Reflect)(nil)).Elem()
