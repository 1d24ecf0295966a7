package slices

import "fmt"

// Contains checks for the existence of v in s.
func Contains[E comparable](s []E, v E) bool {
	for _, e := range s {
		if v == e {
			return true
		}
	}
	return false
}

type MapFunc[IN, OUT any] interface {
	~func(int, IN) OUT | ~func(IN) OUT
}

// Map turns a []IN to a []OUT using a mapping function.
func Map[IN, OUT any, F MapFunc[IN, OUT]](in []IN, fun F) []OUT {
	if in == nil {
		return nil
	}
	f := func(i int, item IN) OUT {
		switch typ := any(fun).(type) {
		case func(int, IN) OUT:
			return typ(i, item)
		case func(IN) OUT:
			return typ(item)
		}
		panic(fmt.Sprintf("unrecognized Map function type %T", fun))
	}
	out := make([]OUT, len(in))
	for i, item := range in {
		out[i] = f(i, item)
	}
	return out
}

type AccumulatorFunc[IN, OUT any] func(out OUT, i int, item IN) OUT

// Reduce reduces a []IN to a single value using an accumulator function.
func Reduce[IN, OUT any](
	in          []IN,
	initializer OUT,
	fun         AccumulatorFunc[IN, OUT],
) OUT {
	out := initializer
	for i, item := range in {
		out = fun(out, i, item)
	}
	return out
}

// Last returns the Last element (or zero value if empty) and bool if exists.
func Last[IN any](in []IN) (IN, bool) {
	if len(in) > 0 {
		return in[len(in)-1], true
	}
	var zero IN
	return zero, false
}

// Reversed returns a reversed copy leaving in untouched.
func Reversed[IN any](in []IN) []IN {
	out := make([]IN, len(in))
	for i, item := range in {
		out[len(in)-1-i] = item
	}
	return out
}
