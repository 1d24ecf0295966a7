package koanf

import (
	"github.com/knadh/koanf"
	"github.com/miruken-go/mixin"
	"github.com/miruken-go/mixin/config"
)

// provider of declarations populated by the koanf library.
// https://github.com/knadh/koanf
type provider struct {
	k *koanf.Koanf
}

func (p *provider) Unmarshal(path string, flat bool, output any) error {
	return p.k.UnmarshalWithConf(path, output,
		koanf.UnmarshalConf{Tag: "path", FlatPaths: flat})
}

// P returns a config.Provider using the Koanf instance.
func P(k *koanf.Koanf) config.Provider {
	if k == nil {
		panic("k cannot be nil")
	}
	return &provider{k}
}

// Define loads the strategies declared at path and defines
// a mixin.Factory over the mixins.
func Define(
	k        *koanf.Koanf,
	path     string,
	registry *config.Registry,
	mixins   []any,
	features ...mixin.Feature,
) (mixin.Factory, error) {
	strategies, err := config.Load(P(k), path, registry)
	if err != nil {
		return nil, err
	}
	return mixin.DefineWith(strategies, mixins, features...)
}
