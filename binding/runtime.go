package binding

import (
	"propbind/convert"
	"propbind/properties"
	"propbind/registry"
)

// Runtime bundles the collaborators a bind call consults. Every field is
// optional: directives that need a missing collaborator fail with
// ErrNoRuntime, and a nil Converter means convert.New().
type Runtime struct {
	// Registry serves #bean:, #type: and #autowired.
	Registry registry.Registry
	// Types resolves the qualified names of #type: and #class:.
	Types registry.TypeResolver
	// Injector builds #class: instances and intermediate objects.
	Injector registry.Injector
	// Properties resolves {{name}} placeholders and #property:.
	Properties properties.Source
	// Converter coerces values to member types.
	Converter convert.Converter
}

// NewRuntime returns a Runtime backed by reg for both bean and type
// lookups, a default injector and converter, and props for placeholders.
func NewRuntime(reg *registry.Simple, props properties.Source) *Runtime {
	return &Runtime{
		Registry:   reg,
		Types:      reg,
		Injector:   registry.NewInjector(),
		Properties: props,
		Converter:  convert.New(),
	}
}

func (rt *Runtime) converter() convert.Converter {
	if rt == nil || rt.Converter == nil {
		return defaultConverter
	}

	return rt.Converter
}

var defaultConverter = convert.New()
