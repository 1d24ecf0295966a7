package config

import (
	"fmt"

	"github.com/asaskevich/govalidator"
	play "github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/miruken-go/mixin"
)

type (
	// Declaration describes the composed methods of a definition.
	Declaration struct {
		Methods []MethodDeclaration `path:"methods" validate:"dive"`
	}

	// MethodDeclaration names a method and its strategy.
	MethodDeclaration struct {
		Name     string `path:"name" validate:"required"`
		Strategy string `path:"strategy" validate:"required"`
	}

	// InvalidMethodError reports a method name that is
	// not an exported Go identifier.
	InvalidMethodError struct {
		Name string
	}

	// UnknownStrategyError reports a strategy name
	// missing from the Registry.
	UnknownStrategyError struct {
		Method   string
		Strategy string
	}
)

const exportedIdentifier = `^[A-Z][A-Za-z0-9_]*$`

var validate = play.New()


// Strategies resolves the declared strategies in order.
func (d *Declaration) Strategies(registry *Registry) (mixin.Strategies, error) {
	if registry == nil {
		panic("registry cannot be nil")
	}
	if err := validate.Struct(d); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var errs error
	strategies := make(mixin.Strategies, 0, len(d.Methods))
	for _, m := range d.Methods {
		if !govalidator.Matches(m.Name, exportedIdentifier) {
			errs = multierror.Append(errs, &InvalidMethodError{m.Name})
			continue
		}
		strategy, ok := registry.Lookup(m.Strategy)
		if !ok {
			errs = multierror.Append(errs, &UnknownStrategyError{m.Name, m.Strategy})
			continue
		}
		strategies = append(strategies, mixin.Entry{Name: m.Name, Strategy: strategy})
	}
	if errs != nil {
		return nil, errs
	}
	return strategies, nil
}

// Load reads the Declaration at path from the Provider and
// resolves the strategies from the Registry.
// If registry is nil, the standard strategies are used.
func Load(
	provider Provider,
	path     string,
	registry *Registry,
) (mixin.Strategies, error) {
	if provider == nil {
		panic("provider cannot be nil")
	}
	if registry == nil {
		registry = NewRegistry()
	}
	var decl Declaration
	if err := provider.Unmarshal(path, false, &decl); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return decl.Strategies(registry)
}


func (e *InvalidMethodError) Error() string {
	return fmt.Sprintf("config: method %q is not an exported identifier", e.Name)
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("config: method %q has unknown strategy %q", e.Method, e.Strategy)
}
