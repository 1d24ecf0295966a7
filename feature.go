package mixin

type (
	// Feature installs optional behavior into a definition.
	Feature interface {
		Install(builder *Builder) error
	}

	// FeatureFunc promotes a function to a Feature.
	FeatureFunc func(builder *Builder) error

	// Decorator wraps the Strategy of a method.
	Decorator func(method string, next Strategy) Strategy

	// Builder exposes the definition to a Feature.
	Builder struct {
		def  *definition
		tags map[any]struct{}
	}
)


func (f FeatureFunc) Install(builder *Builder) error {
	return f(builder)
}


// Tag marks the builder with tag and returns true if
// the tag was not already present.
func (b *Builder) Tag(tag any) bool {
	if _, ok := b.tags[tag]; ok {
		return false
	}
	if b.tags == nil {
		b.tags = make(map[any]struct{})
	}
	b.tags[tag] = struct{}{}
	return true
}

// Strategies returns the declared method strategies.
func (b *Builder) Strategies() Strategies {
	return append(Strategies(nil), b.def.strategies...)
}

// Decorate wraps every composed method with the decorators.
// The first decorator is the outermost.
func (b *Builder) Decorate(decorators ...Decorator) *Builder {
	for _, d := range decorators {
		if d != nil {
			b.def.decorators = append(b.def.decorators, d)
		}
	}
	return b
}

// Composed registers observers of every newly composed Instance.
func (b *Builder) Composed(observers ...func(*Instance)) *Builder {
	for _, o := range observers {
		if o != nil {
			b.def.observers = append(b.def.observers, o)
		}
	}
	return b
}
