package mixin

import (
	"reflect"

	"github.com/miruken-go/mixin/promise"
)

// Instance is a composite whose methods combine the
// implementations of its mixins using a Strategy.
type Instance struct {
	def     *definition
	args    []any
	mixins  int
	names   []string
	methods map[string]Impl
}


func (i *Instance) Call(name string, args ...any) (any, *promise.Promise[any], error) {
	if method, ok := i.methods[name]; ok {
		return method(args...)
	}
	return nil, nil, &MethodNotFoundError{Name: name}
}

func (i *Instance) Method(name string) (Impl, bool) {
	method, ok := i.methods[name]
	return method, ok
}

// Methods returns the composed method names in declaration order.
func (i *Instance) Methods() []string {
	return append([]string(nil), i.names...)
}

// NumMixins returns the number of mixins combined.
func (i *Instance) NumMixins() int {
	return i.mixins
}

// Args returns the construction args.
func (i *Instance) Args() []any {
	return append([]any(nil), i.args...)
}

// Invoke calls the named method expecting a result of type T.
// A nil result is the zero T.
func Invoke[T any](
	caller Caller,
	name   string,
	args   ...any,
) (t T, tp *promise.Promise[T], err error) {
	if caller == nil {
		panic("caller cannot be nil")
	}
	out, pout, err := caller.Call(name, args...)
	if err != nil {
		return
	} else if pout != nil {
		tp = promise.Coerce[T](pout)
		return
	} else if out == nil {
		return
	}
	if r, ok := out.(T); ok {
		t = r
	} else {
		err = &ResultError{
			Method:   name,
			Result:   out,
			Expected: reflect.TypeOf((*T)(nil)).Elem(),
		}
	}
	return
}
