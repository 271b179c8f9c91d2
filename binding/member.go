package binding

import (
	"fmt"
	"reflect"

	"propbind/diagnostic"
	"propbind/internal/describe"
)

var mapAnyType = reflect.TypeFor[map[string]any]()

// step is the object an intermediate segment leads to.
type step struct {
	// next is a pointer to a struct or a map with string keys.
	next reflect.Value
	// commit assigns a created or copied next to its parent after the leaf
	// is bound. Nil when next is already reachable from the parent.
	commit func() error
}

// slot is the member an intermediate segment names: the value it holds
// and the way to replace it.
type slot struct {
	segment string
	owner   reflect.Type
	value   reflect.Value
	// param is the type set accepts. Nil when the member is read-only.
	param reflect.Type
	set   func(reflect.Value) error
}

// descend follows one intermediate segment from cur.
func (o *op) descend(cur reflect.Value, name string) (step, *miss, error) {
	if cur.Kind() == reflect.Map {
		key := reflect.ValueOf(name).Convert(cur.Type().Key())

		return o.enter(slot{
			segment: name,
			owner:   cur.Type(),
			value:   cur.MapIndex(key),
			param:   cur.Type().Elem(),
			set: func(v reflect.Value) error {
				cur.SetMapIndex(key, v)

				return nil
			},
		})
	}

	d, _ := describe.For(cur.Type())

	p, ok := d.FindProperty(name, o.b.cfg.IgnoreCase)
	if !ok {
		return step{}, newMiss(diagnostic.CodeNoMutator, name, cur.Type(), "no member matches %q", name), nil
	}

	if p.Accessor == nil {
		return step{}, newMiss(diagnostic.CodeNoAccessor, name, cur.Type(), "%s has no accessor", p.Name), nil
	}

	v, err := p.Accessor.Get(cur)
	if err != nil {
		return step{}, nil, failKind(MutatorFailure, "%w", err)
	}

	s := slot{segment: name, owner: cur.Type(), value: v}

	if w := p.Writer(); w != nil {
		s.param = w.Param
		s.set = func(arg reflect.Value) error {
			if err := w.Invoke(cur, arg); err != nil {
				return failKind(MutatorFailure, "%w", err)
			}

			return nil
		}
	}

	return o.enter(s)
}

// enter turns the value held by a member into the next object to bind
// into. Set values are reused; unset ones are created.
func (o *op) enter(s slot) (step, *miss, error) {
	v := s.value
	if v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}

	if isNil(v) {
		return o.create(s)
	}

	switch {
	case isStructPtr(v.Type()):
		return step{next: v}, nil, nil
	case isStringMap(v.Type()):
		return step{next: v}, nil, nil
	case v.Kind() == reflect.Pointer && isStringMap(v.Type().Elem()) && !v.Elem().IsNil():
		return step{next: v.Elem()}, nil, nil
	case v.Kind() == reflect.Struct && v.CanAddr():
		return step{next: v.Addr()}, nil, nil
	case v.Kind() == reflect.Struct:
		if s.set == nil || !v.Type().AssignableTo(s.param) {
			return step{}, newMiss(diagnostic.CodeNotCreatable, s.segment, s.owner,
				"%s is a read-only %s value", s.segment, v.Type()), nil
		}

		cp := reflect.New(v.Type())
		cp.Elem().Set(v)

		return step{next: cp, commit: func() error { return s.set(cp.Elem()) }}, nil, nil
	default:
		return step{}, newMiss(diagnostic.CodeNotContainer, s.segment, s.owner,
			"%s holds %s, which has no members", s.segment, v.Type()), nil
	}
}

// create builds a value for an unset member. It is assigned only once the
// key is bound, so a skipped or failed key leaves the parent untouched.
func (o *op) create(s slot) (step, *miss, error) {
	if s.set == nil {
		return step{}, newMiss(diagnostic.CodeNotCreatable, s.segment, s.owner,
			"%s is unset and has no mutator", s.segment), nil
	}

	t := s.param

	switch {
	case isStructPtr(t), isStringMap(t):
		v, err := o.instantiate(t)
		if err != nil {
			return step{}, nil, err
		}

		return step{next: v, commit: func() error { return s.set(v) }}, nil, nil
	case t.Kind() == reflect.Struct:
		v, err := o.instantiate(reflect.PointerTo(t))
		if err != nil {
			return step{}, nil, err
		}

		return step{next: v, commit: func() error { return s.set(v.Elem()) }}, nil, nil
	case t.Kind() == reflect.Interface && mapAnyType.AssignableTo(t):
		v := reflect.MakeMap(mapAnyType)

		return step{next: v, commit: func() error { return s.set(v) }}, nil, nil
	default:
		return step{}, newMiss(diagnostic.CodeNotCreatable, s.segment, s.owner,
			"cannot create a %s for %s", t, s.segment), nil
	}
}

// instantiate returns a new pointer to a struct or a new map of type t,
// through the Runtime's Injector when there is one.
func (o *op) instantiate(t reflect.Type) (reflect.Value, error) {
	rt := o.b.rt
	if rt == nil || rt.Injector == nil {
		if t.Kind() == reflect.Map {
			return reflect.MakeMap(t), nil
		}

		return reflect.New(t.Elem()), nil
	}

	obj, err := rt.newInstance(t)
	if err != nil {
		return reflect.Value{}, err
	}

	v := reflect.ValueOf(obj)

	switch {
	case v.Type() == t:
		return v, nil
	case t.Kind() == reflect.Pointer && v.Type() == t.Elem():
		p := reflect.New(v.Type())
		p.Elem().Set(v)

		return p, nil
	default:
		return reflect.Value{}, failKind(ConstructionFailure, "injector returned %T for %s", obj, t)
	}
}

func newMiss(code, segment string, on reflect.Type, format string, args ...any) *miss {
	return &miss{code: code, segment: segment, on: on, message: fmt.Sprintf(format, args...)}
}
