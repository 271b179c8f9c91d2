package binding

import (
	"maps"

	"go.uber.org/zap"
)

// Builder collects a target, properties and options for one bind. The
// terminal methods may be called more than once.
type Builder struct {
	cfg    Config
	rt     *Runtime
	target any
	single map[string]any
	props  map[string]any
}

// New starts a Builder with the default Config.
func New() *Builder {
	return &Builder{}
}

// WithRuntime sets the collaborators used for placeholders and directives.
func (b *Builder) WithRuntime(rt *Runtime) *Builder {
	b.rt = rt
	return b
}

// WithTarget sets the root object to bind into.
func (b *Builder) WithTarget(target any) *Builder {
	b.target = target
	return b
}

// WithProperty adds a single property. Single properties are never drained.
func (b *Builder) WithProperty(key string, value any) *Builder {
	if b.single == nil {
		b.single = make(map[string]any)
	}

	b.single[key] = value

	return b
}

// WithProperties sets the bulk property map. Bind removes bound keys from
// it; keys present in both win over WithProperty.
func (b *Builder) WithProperties(props map[string]any) *Builder {
	b.props = props
	return b
}

// WithIgnoreCase sets Config.IgnoreCase.
func (b *Builder) WithIgnoreCase(ignoreCase bool) *Builder {
	b.cfg.IgnoreCase = ignoreCase
	return b
}

// WithMandatory sets Config.Mandatory.
func (b *Builder) WithMandatory(mandatory bool) *Builder {
	b.cfg.Mandatory = mandatory
	return b
}

// WithOptionPrefix sets Config.OptionPrefix.
func (b *Builder) WithOptionPrefix(prefix string) *Builder {
	b.cfg.OptionPrefix = prefix
	return b
}

// WithLogger sets Config.Logger.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.cfg.Logger = logger
	return b
}

// Binder returns a Binder with the collected Runtime and options.
func (b *Builder) Binder() *Binder {
	return NewBinder(b.rt, b.cfg)
}

// Bind binds all collected properties into the target, draining the bulk
// map. It reports whether every property was bound.
func (b *Builder) Bind() (bool, error) {
	all := b.merged()

	res, err := b.Binder().Apply(b.target, all)
	res.Drain(b.props)

	if err != nil {
		return false, err
	}

	return len(res.Bound) == len(all), nil
}

// Apply binds all collected properties into the target and reports the
// outcome without draining anything.
func (b *Builder) Apply() (*Result, error) {
	return b.Binder().Apply(b.target, b.merged())
}

// BindTo binds props into target with the collected options, ignoring the
// Builder's own target and properties.
func (b *Builder) BindTo(rt *Runtime, target any, props map[string]any) (bool, error) {
	return NewBinder(rt, b.cfg).Bind(target, props)
}

// BindProperty binds one key into target with the collected options.
func (b *Builder) BindProperty(rt *Runtime, target any, key string, value any) (bool, error) {
	return NewBinder(rt, b.cfg).BindProperty(target, key, value)
}

func (b *Builder) merged() map[string]any {
	all := make(map[string]any, len(b.single)+len(b.props))
	maps.Copy(all, b.single)
	maps.Copy(all, b.props)

	return all
}
