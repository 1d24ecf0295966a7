package mixin

import (
	"reflect"

	"github.com/miruken-go/mixin/internal/slices"
	"github.com/miruken-go/mixin/promise"
)

// Impl is a method implementation bound to the mixin that owns it.
// It returns an immediate value, a pending promise or an error.
type Impl func(args ...any) (any, *promise.Promise[any], error)

// selfMethods are promoted by Self and never implementations.
var selfMethods = func() []string {
	typ   := reflect.TypeOf((*Self)(nil))
	names := make([]string, typ.NumMethod())
	for i := range names {
		names[i] = typ.Method(i).Name
	}
	return names
}()

// bindMethod returns the Impl of the method named name exposed
// by mixin, or false if mixin has no such callable method.
func bindMethod(mixin any, name string) (Impl, bool) {
	if mixin == nil {
		return nil, false
	}
	if _, ok := mixin.(binder); ok && slices.Contains(selfMethods, name) {
		return nil, false
	}
	method := reflect.ValueOf(mixin).MethodByName(name)
	if !method.IsValid() {
		return nil, false
	}
	return func(args ...any) (any, *promise.Promise[any], error) {
		in, err := buildArgs(name, method.Type(), args)
		if err != nil {
			return nil, nil, err
		}
		return normalizeOutput(method.Call(in))
	}, true
}

// buildArgs assigns args positionally to the parameters of typ.
// Missing or nil args become zero values and args beyond the
// parameters are ignored unless typ is variadic.
func buildArgs(
	name string,
	typ  reflect.Type,
	args []any,
) ([]reflect.Value, error) {
	numIn := typ.NumIn()
	fixed := numIn
	if typ.IsVariadic() {
		fixed--
	}
	in := make([]reflect.Value, 0, max(numIn, len(args)))
	for i := 0; i < fixed; i++ {
		var arg any
		if i < len(args) {
			arg = args[i]
		}
		v, err := assignArg(name, i, arg, typ.In(i))
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}
	if typ.IsVariadic() {
		elem := typ.In(fixed).Elem()
		for i := fixed; i < len(args); i++ {
			v, err := assignArg(name, i, args[i], elem)
			if err != nil {
				return nil, err
			}
			in = append(in, v)
		}
	}
	return in, nil
}

func assignArg(
	name  string,
	index int,
	arg   any,
	param reflect.Type,
) (reflect.Value, error) {
	if arg == nil {
		return reflect.Zero(param), nil
	}
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(param) {
		return reflect.Value{}, &ArgumentError{
			Method: name,
			Index:  index,
			Arg:    arg,
			Param:  param,
		}
	}
	return v, nil
}

// normalizeOutput analyzes the method return values to produce
// an immediate or asynchronous result.
// If the last output is a non-nil error, it is returned.
// If any remaining output is a non-nil promise, it is pending.
// Otherwise, the first output is the immediate value.
func normalizeOutput(out []reflect.Value) (any, *promise.Promise[any], error) {
	n := len(out)
	if n > 0 && out[n-1].Type() == errorType {
		if e := out[n-1]; !e.IsNil() {
			return nil, nil, e.Interface().(error)
		}
		n--
	}
	for i := 0; i < n; i++ {
		if p, ok := pendingValue(out[i]); ok && p != nil {
			return nil, p, nil
		}
	}
	if n == 0 {
		return nil, nil, nil
	}
	if _, ok := pendingValue(out[0]); ok {
		return nil, nil, nil
	}
	return out[0].Interface(), nil, nil
}

// pendingValue returns true if v holds a promise and the promise
// as a Promise[any], which is nil if v holds a nil promise.
func pendingValue(v reflect.Value) (*promise.Promise[any], bool) {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	if _, ok := promise.Inspect(v.Type()); !ok {
		return nil, false
	}
	if v.IsNil() {
		return nil, true
	}
	return promise.Erase(v.Interface().(promise.Reflect)), true
}

// pendingOf returns val as a Promise[any] if it is a non-nil promise.
func pendingOf(val any) *promise.Promise[any] {
	if val == nil {
		return nil
	}
	p, _ := pendingValue(reflect.ValueOf(val))
	return p
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()
