package binding

import (
	"fmt"
	"reflect"
	"strings"

	"propbind/registry"
)

// Reference directives recognised at the start of a value.
const (
	SigilBean      = "#bean:"
	SigilType      = "#type:"
	SigilClass     = "#class:"
	SigilAutowired = "#autowired"
	SigilProperty  = "#property:"
)

type reference struct {
	sigil string
	arg   string
}

func parseReference(s string) (reference, bool) {
	if !strings.HasPrefix(s, "#") {
		return reference{}, false
	}

	if s == SigilAutowired {
		return reference{sigil: SigilAutowired}, true
	}

	for _, sigil := range []string{SigilBean, SigilType, SigilClass, SigilProperty} {
		if arg, ok := strings.CutPrefix(s, sigil); ok {
			return reference{sigil: sigil, arg: strings.TrimSpace(arg)}, true
		}
	}

	return reference{}, false
}

func (r reference) String() string {
	return r.sigil + r.arg
}

// resolve turns the directive into a value. param is the member type and
// is only consulted by #autowired.
func (rt *Runtime) resolve(ref reference, param reflect.Type) (any, error) {
	switch ref.sigil {
	case SigilBean:
		return rt.lookupBean(ref.arg)
	case SigilType:
		t, err := rt.resolveType(ref.arg)
		if err != nil {
			return nil, err
		}

		return rt.lookupSingle(t)
	case SigilAutowired:
		return rt.lookupSingle(param)
	case SigilClass:
		t, err := rt.resolveType(ref.arg)
		if err != nil {
			return nil, err
		}

		return rt.newInstance(t)
	case SigilProperty:
		return rt.lookupProperty(ref.arg)
	default:
		return nil, fmt.Errorf("unknown directive %q", ref.sigil)
	}
}

func (rt *Runtime) lookupBean(name string) (any, error) {
	if rt == nil || rt.Registry == nil {
		return nil, failKind(UnresolvedReference, "%w: registry for %s%s", ErrNoRuntime, SigilBean, name)
	}

	bean, ok := rt.Registry.LookupByName(name)
	if !ok || bean == nil {
		return nil, failKind(UnresolvedReference, "%w: bean %q", registry.ErrNotFound, name)
	}

	return bean, nil
}

func (rt *Runtime) lookupSingle(t reflect.Type) (any, error) {
	if rt == nil || rt.Registry == nil {
		return nil, failKind(UnresolvedReference, "%w: registry for type %s", ErrNoRuntime, t)
	}

	bean, err := registry.Single(t, rt.Registry.LookupByType(t))
	if err != nil {
		return nil, failKind(UnresolvedReference, "%w", err)
	}

	return bean, nil
}

func (rt *Runtime) resolveType(name string) (reflect.Type, error) {
	if rt == nil || rt.Types == nil {
		return nil, failKind(ClassResolutionFailure, "%w: type resolver for %s", ErrNoRuntime, name)
	}

	t, err := rt.Types.ResolveType(name)
	if err != nil {
		return nil, failKind(ClassResolutionFailure, "%w", err)
	}

	return t, nil
}

func (rt *Runtime) newInstance(t reflect.Type) (any, error) {
	if rt == nil || rt.Injector == nil {
		return nil, failKind(ConstructionFailure, "%w: injector for %s", ErrNoRuntime, t)
	}

	inst, err := rt.Injector.NewInstance(t)
	if err != nil {
		return nil, failKind(ConstructionFailure, "%w", err)
	}

	if inst == nil {
		return nil, failKind(ConstructionFailure, "%w: %s", registry.ErrNoInstance, t)
	}

	return inst, nil
}

func (rt *Runtime) lookupProperty(name string) (any, error) {
	if rt == nil || rt.Properties == nil {
		return nil, failKind(UnresolvedPlaceholder, "%w: property source for %s", ErrNoRuntime, name)
	}

	v, ok := rt.Properties.Lookup(name)
	if !ok {
		return nil, failKind(UnresolvedPlaceholder, "property %q not found", name)
	}

	return v, nil
}
