package mixin

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/miruken-go/mixin/internal/slices"
	"github.com/miruken-go/mixin/promise"
)

type (
	// Strategy combines the implementations of a method.
	// The implementations are in mixin order and the args
	// are those the composite method was called with.
	Strategy func(
		self  *Instance,
		impls []Impl,
		args  ...any,
	) (any, *promise.Promise[any], error)

	// Entry declares the Strategy of a method.
	Entry struct {
		Name     string
		Strategy Strategy
	}

	// Strategies declares the composed methods in order.
	Strategies []Entry

	// Factory constructs a new composite Instance.
	Factory func(args ...any) (*Instance, error)

	definition struct {
		strategies Strategies
		ctors      []constructor
		decorators []Decorator
		observers  []func(*Instance)
	}
)

// InitMethod is the reserved method invoked once, after all
// methods are composed, with the construction args.
const InitMethod = "Init"


// Names returns the method names in declaration order.
func (s Strategies) Names() []string {
	return slices.Map[Entry, string](s, func(e Entry) string {
		return e.Name
	})
}

// Lookup returns the Strategy declared for name.
func (s Strategies) Lookup(name string) (Strategy, bool) {
	for _, e := range s {
		if e.Name == name {
			return e.Strategy, true
		}
	}
	return nil, false
}


// Define returns a Factory of composites with the methods
// declared by strategies combining the mixins.
func Define(strategies Strategies, mixins ...any) (Factory, error) {
	return DefineWith(strategies, mixins)
}

// DefineWith is like Define but installs additional features.
func DefineWith(
	strategies Strategies,
	mixins     []any,
	features   ...Feature,
) (Factory, error) {
	var errs error
	for i, e := range strategies {
		if e.Name == "" {
			errs = multierror.Append(errs, &StrategyError{e.Name, errors.New("name cannot be empty")})
		} else if e.Strategy == nil {
			errs = multierror.Append(errs, &StrategyError{e.Name, errors.New("strategy cannot be nil")})
		} else if _, dup := strategies[:i].Lookup(e.Name); dup {
			errs = multierror.Append(errs, &StrategyError{e.Name, errors.New("duplicate name")})
		}
	}

	def := &definition{
		strategies: append(Strategies(nil), strategies...),
		ctors:      make([]constructor, 0, len(mixins)),
	}
	for i, spec := range mixins {
		if ctor, err := normalizeSpec(spec); err != nil {
			errs = multierror.Append(errs, &SpecError{i, spec, err})
		} else {
			def.ctors = append(def.ctors, ctor)
		}
	}

	builder := &Builder{def: def}
	for _, feature := range features {
		if feature != nil {
			if err := feature.Install(builder); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
	}

	if errs != nil {
		return nil, errs
	}
	return def.construct, nil
}


// definition

func (d *definition) construct(args ...any) (*Instance, error) {
	mixins := make([]any, len(d.ctors))
	for i, ctor := range d.ctors {
		mixin, err := ctor(args)
		if err != nil {
			return nil, &ConstructorError{i, err}
		}
		mixins[i] = mixin
	}

	composite := &Instance{
		def:     d,
		args:    append([]any(nil), args...),
		mixins:  len(mixins),
		names:   d.strategies.Names(),
		methods: make(map[string]Impl, len(d.strategies)),
	}
	for _, e := range d.strategies {
		impls := slices.Reduce(mixins, []Impl(nil),
			func(impls []Impl, _ int, mixin any) []Impl {
				if impl, ok := bindMethod(mixin, e.Name); ok {
					impls = append(impls, impl)
				}
				return impls
			})
		composite.methods[e.Name] = d.compose(composite, e, impls)
	}

	for _, mixin := range mixins {
		if b, ok := mixin.(binder); ok {
			b.bind(composite)
		}
	}

	if _, ok := composite.methods[InitMethod]; ok {
		if err := composite.runInit(); err != nil {
			return nil, err
		}
	}

	for _, observe := range d.observers {
		observe(composite)
	}
	return composite, nil
}

// compose closes the Strategy, decorated outermost first,
// over the composite and the implementations.
func (d *definition) compose(
	composite *Instance,
	entry     Entry,
	impls     []Impl,
) Impl {
	strategy := entry.Strategy
	for i := len(d.decorators) - 1; i >= 0; i-- {
		strategy = d.decorators[i](entry.Name, strategy)
	}
	return func(args ...any) (any, *promise.Promise[any], error) {
		return strategy(composite, append([]Impl(nil), impls...), args...)
	}
}

func (i *Instance) runInit() error {
	_, pout, err := i.Call(InitMethod, i.args...)
	if err == nil && pout != nil {
		_, err = pout.Await()
	}
	if err != nil {
		return fmt.Errorf("mixin: init: %w", err)
	}
	return nil
}
