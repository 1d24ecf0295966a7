package mixin

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/mitchellh/copystructure"
)

// constructor creates a new mixin instance from the construction args.
type constructor func(args []any) (any, error)

// ConstructorMethod is the optional method run on object mixin
// specs to initialize a new instance with the construction args.
const ConstructorMethod = "Constructor"

// Of returns a mixin spec that creates a new *T per construction.
func Of[T any]() any {
	return reflect.TypeOf((*T)(nil))
}

// normalizeSpec turns a mixin spec into a constructor.
// Specs can be
//   - a function returning the mixin and an optional error
//   - a reflect.Type of a struct or *struct
//   - a struct or *struct prototype which is copied per construction
func normalizeSpec(spec any) (constructor, error) {
	if spec == nil {
		return nil, errors.New("spec cannot be nil")
	}
	if typ, ok := spec.(reflect.Type); ok {
		return typeConstructor(typ)
	}
	v := reflect.ValueOf(spec)
	switch v.Kind() {
	case reflect.Func:
		return funcConstructor(v)
	case reflect.Ptr:
		if v.IsNil() {
			return nil, errors.New("spec cannot be a nil pointer")
		}
		if v.Elem().Kind() == reflect.Struct {
			return prototypeConstructor(v.Elem()), nil
		}
	case reflect.Struct:
		return prototypeConstructor(v), nil
	}
	return nil, fmt.Errorf("unsupported kind %s", v.Kind())
}

func funcConstructor(fun reflect.Value) (constructor, error) {
	if fun.IsNil() {
		return nil, errors.New("constructor cannot be nil")
	}
	typ := fun.Type()
	switch typ.NumOut() {
	case 1:
	case 2:
		if typ.Out(1) != errorType {
			return nil, fmt.Errorf("second output of %v must be an error", typ)
		}
	default:
		return nil, fmt.Errorf("constructor %v must return the mixin and an optional error", typ)
	}
	return func(args []any) (any, error) {
		in, err := buildArgs("constructor", typ, args)
		if err != nil {
			return nil, err
		}
		out := fun.Call(in)
		if len(out) == 2 && !out[1].IsNil() {
			return nil, out[1].Interface().(error)
		}
		mixin := out[0]
		if mixin.Kind() == reflect.Interface && !mixin.IsNil() {
			mixin = mixin.Elem()
		}
		switch mixin.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Func:
			if mixin.IsNil() {
				return nil, errors.New("constructor returned nil")
			}
		case reflect.Struct:
			// pointer methods and Self binding need an addressable mixin
			return nil, fmt.Errorf("constructor returned %s by value, expected a pointer",
				typeName(mixin.Type()))
		}
		return mixin.Interface(), nil
	}, nil
}

func typeConstructor(typ reflect.Type) (constructor, error) {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("type %s is not a struct", typeName(typ))
	}
	return func(args []any) (any, error) {
		return initialize(reflect.New(typ), args)
	}, nil
}

func prototypeConstructor(proto reflect.Value) constructor {
	return func(args []any) (any, error) {
		mixin, err := replicate(proto)
		if err != nil {
			return nil, err
		}
		return initialize(mixin, args)
	}
}

// replicate copies the prototype struct into a new *struct.
// Fields are shared shallow, so dependencies such as loggers or
// handles stay attached, except exported slice and map fields
// which are copied so composites do not share their contents.
func replicate(proto reflect.Value) (reflect.Value, error) {
	typ := proto.Type()
	mixin := reflect.New(typ)
	mixin.Elem().Set(proto)
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		switch fv := proto.Field(i); fv.Kind() {
		case reflect.Slice, reflect.Map:
			if fv.IsNil() {
				continue
			}
			cp, err := copystructure.Copy(fv.Interface())
			if err != nil {
				return reflect.Value{}, fmt.Errorf("copy %s.%s: %w", typeName(typ), field.Name, err)
			}
			mixin.Elem().Field(i).Set(reflect.ValueOf(cp))
		}
	}
	return mixin, nil
}

// initialize runs the optional Constructor method.
func initialize(mixin reflect.Value, args []any) (any, error) {
	if ctor := mixin.MethodByName(ConstructorMethod); ctor.IsValid() {
		in, err := buildArgs(ConstructorMethod, ctor.Type(), args)
		if err != nil {
			return nil, err
		}
		if _, _, err := normalizeOutput(ctor.Call(in)); err != nil {
			return nil, err
		}
	}
	return mixin.Interface(), nil
}
