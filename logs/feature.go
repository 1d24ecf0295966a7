package logs

import (
	"github.com/go-logr/logr"
	"github.com/miruken-go/mixin"
)

// Installer configures logging of composed methods.
type Installer struct {
	root      logr.Logger
	verbosity int
}

func (i *Installer) SetVerbosity(verbosity int) {
	i.verbosity = verbosity
}

func (i *Installer) Install(builder *mixin.Builder) error {
	if builder.Tag(&featureTag) {
		e := &emit{i.root, i.verbosity}
		builder.Decorate(e.decorate).Composed(e.composed)
	}
	return nil
}

// Verbosity sets the Verbosity level when logging.
func Verbosity(verbosity int) func(installer *Installer) {
	return func(installer *Installer) {
		installer.SetVerbosity(verbosity)
	}
}

// Feature creates and configures logging support.
func Feature(
	rootLogger logr.Logger,
	config     ...func(installer *Installer),
) mixin.Feature {
	installer := &Installer{root: rootLogger}
	for _, configure := range config {
		if configure != nil {
			configure(installer)
		}
	}
	return installer
}

var featureTag byte
