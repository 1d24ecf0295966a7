package mixin

import (
	"fmt"
	"reflect"

	"github.com/imdario/mergo"
)

// Replicate constructs a new independent Instance of the same
// definition merging args over the original construction args.
// A nil arg keeps the original and struct args of the same type
// take their zero fields from the original.
func (i *Instance) Replicate(args ...any) (*Instance, error) {
	merged, err := mergeArgs(i.args, args)
	if err != nil {
		return nil, err
	}
	return i.def.construct(merged...)
}

func mergeArgs(original, overrides []any) ([]any, error) {
	merged := make([]any, max(len(original), len(overrides)))
	for idx := range merged {
		var orig, over any
		if idx < len(original) {
			orig = original[idx]
		}
		if idx < len(overrides) {
			over = overrides[idx]
		}
		switch {
		case over == nil:
			merged[idx] = orig
		case orig == nil:
			merged[idx] = over
		default:
			arg, err := mergeArg(orig, over)
			if err != nil {
				return nil, fmt.Errorf("mixin: merge argument %d: %w", idx, err)
			}
			merged[idx] = arg
		}
	}
	return merged, nil
}

func mergeArg(orig, over any) (any, error) {
	typ := reflect.TypeOf(over)
	if reflect.TypeOf(orig) != typ {
		return over, nil
	}
	switch {
	case typ.Kind() == reflect.Struct:
		dst := reflect.New(typ)
		dst.Elem().Set(reflect.ValueOf(over))
		if err := mergo.Merge(dst.Interface(), orig); err != nil {
			return nil, err
		}
		return dst.Elem().Interface(), nil
	case typ.Kind() == reflect.Ptr && typ.Elem().Kind() == reflect.Struct:
		ov := reflect.ValueOf(over)
		if ov.IsNil() {
			return orig, nil
		}
		if reflect.ValueOf(orig).IsNil() {
			return over, nil
		}
		dst := reflect.New(typ.Elem())
		dst.Elem().Set(ov.Elem())
		if err := mergo.Merge(dst.Interface(), orig); err != nil {
			return nil, err
		}
		return dst.Interface(), nil
	}
	return over, nil
}
