package binding

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"propbind/properties"
)

// Binder applies properties with a fixed Config and Runtime. It keeps no
// state between calls and may be shared between goroutines, provided they
// bind into different targets.
type Binder struct {
	cfg Config
	rt  *Runtime
	log *zap.Logger
}

// NewBinder creates a Binder. rt may be nil when no directive or
// placeholder is used.
func NewBinder(rt *Runtime, cfg Config) *Binder {
	return &Binder{cfg: cfg, rt: rt, log: cfg.logger()}
}

// Config returns the options the Binder was created with.
func (b *Binder) Config() Config {
	return b.cfg
}

// Apply binds props into target without modifying props. Keys are
// processed in sorted order. On error the Result lists the keys bound
// before the failing one.
//
// target must be a non-nil pointer to a struct, a pointer to a map with
// string keys, or such a map.
func (b *Binder) Apply(target any, props map[string]any) (*Result, error) {
	res := &Result{}

	root, err := rootValue(target)
	if err != nil {
		e := &Error{Kind: InvalidTarget, Target: target, Cause: err}
		res.record(e)

		return res, e
	}

	for _, key := range properties.Keys(props) {
		o := &op{b: b, target: target, key: key, res: res}
		if err := o.bind(root, props[key]); err != nil {
			b.log.Debug("bind failed", zap.String("key", key), zap.Error(err))

			return res, err
		}
	}

	return res, nil
}

// Bind binds props into target and removes every bound key from props. It
// reports whether props ended up empty. Keys bound before an error are
// removed as well.
func (b *Binder) Bind(target any, props map[string]any) (bool, error) {
	res, err := b.Apply(target, props)
	res.Drain(props)

	if err != nil {
		return false, err
	}

	return len(props) == 0, nil
}

// BindProperty binds a single key and reports whether it was bound.
func (b *Binder) BindProperty(target any, key string, value any) (bool, error) {
	res, err := b.Apply(target, map[string]any{key: value})
	if err != nil {
		return false, err
	}

	return res.IsBound(key), nil
}

// Bind binds props into target with the default Config, draining bound
// keys from props. It reports whether props ended up empty.
func Bind(rt *Runtime, target any, props map[string]any) (bool, error) {
	return NewBinder(rt, Config{}).Bind(target, props)
}

// BindProperty binds one key into target with the default Config and
// reports whether it was bound.
func BindProperty(rt *Runtime, target any, key string, value any) (bool, error) {
	return NewBinder(rt, Config{}).BindProperty(target, key, value)
}

func rootValue(target any) (reflect.Value, error) {
	if target == nil {
		return reflect.Value{}, fmt.Errorf("target is nil")
	}

	v := reflect.ValueOf(target)

	switch {
	case v.Kind() == reflect.Pointer && v.IsNil():
		return reflect.Value{}, fmt.Errorf("target %T is a nil pointer", target)
	case isStructPtr(v.Type()):
		return v, nil
	case v.Kind() == reflect.Pointer && isStringMap(v.Type().Elem()):
		if v.Elem().IsNil() {
			v.Elem().Set(reflect.MakeMap(v.Type().Elem()))
		}

		return v.Elem(), nil
	case isStringMap(v.Type()) && !v.IsNil():
		return v, nil
	default:
		return reflect.Value{}, fmt.Errorf("target %T is not a pointer to a struct or a map with string keys", target)
	}
}

func isStructPtr(t reflect.Type) bool {
	return t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct
}

func isStringMap(t reflect.Type) bool {
	return t.Kind() == reflect.Map && t.Key().Kind() == reflect.String
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return !v.IsValid()
	}
}
