package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"

	"propbind/internal/common"
)

var (
	// ErrNotFound is returned when no bean or type answers a lookup.
	ErrNotFound = errors.New("not found in registry")
	// ErrAmbiguous is returned when a lookup that needs one answer finds several.
	ErrAmbiguous = errors.New("ambiguous registry lookup")
	// ErrClassNotFound is returned when a qualified type name cannot be resolved.
	ErrClassNotFound = errors.New("class not found")
)

// Registry looks beans up by name or by type.
type Registry interface {
	LookupByName(name string) (any, bool)
	// LookupByType returns every bean assignable to t, in registration order.
	LookupByType(t reflect.Type) []any
}

// TypeResolver maps a qualified type name to its reflect.Type.
type TypeResolver interface {
	ResolveType(name string) (reflect.Type, error)
}

// Simple is an in-memory Registry and TypeResolver. Binding a bean also
// registers its type. Safe for concurrent use.
type Simple struct {
	mu    sync.RWMutex
	beans map[string]any
	order []string
	types map[TypeID]reflect.Type
}

// New creates an empty Simple registry.
func New() *Simple {
	return &Simple{
		beans: make(map[string]any),
		types: make(map[TypeID]reflect.Type),
	}
}

// Bind registers bean under name, replacing any previous bean of that name.
func (r *Simple) Bind(name string, bean any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.beans[name]; !exists {
		r.order = append(r.order, name)
	}

	r.beans[name] = bean
	r.registerType(reflect.TypeOf(bean))
}

// Add registers bean under a generated name and returns the name.
func (r *Simple) Add(bean any) string {
	name := "bean-" + uuid.NewString()
	r.Bind(name, bean)

	return name
}

// Unbind removes the bean registered under name.
func (r *Simple) Unbind(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.beans[name]; !exists {
		return
	}

	delete(r.beans, name)

	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)

			break
		}
	}
}

// RegisterType makes t resolvable by qualified name without binding a bean.
func (r *Simple) RegisterType(t reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.registerType(t)
}

// Register makes T resolvable by qualified name.
func Register[T any](r *Simple) {
	r.RegisterType(reflect.TypeFor[T]())
}

func (r *Simple) registerType(t reflect.Type) {
	if t == nil {
		return
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	id := TypeIDOf(t)
	if id.Name == "" {
		return
	}

	r.types[id] = t
}

// LookupByName implements Registry.
func (r *Simple) LookupByName(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bean, ok := r.beans[name]

	return bean, ok
}

// LookupByType implements Registry. A bean matches when its type is
// assignable to t, or when t is a struct type and the bean is a pointer to it.
func (r *Simple) LookupByType(t reflect.Type) []any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found []any

	for _, name := range r.order {
		bean := r.beans[name]
		if bean == nil {
			continue
		}

		bt := reflect.TypeOf(bean)
		if bt.AssignableTo(t) || (bt.Kind() == reflect.Pointer && bt.Elem() == t) {
			found = append(found, bean)
		}
	}

	return found
}

// Names returns the registered bean names in sorted order.
func (r *Simple) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := append([]string(nil), r.order...)
	sort.Strings(names)

	return names
}

// ResolveType implements TypeResolver. See TypeID for the accepted forms.
// A name matching more than one registered type is ambiguous.
func (r *Simple) ResolveType(name string) (reflect.Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []TypeID

	for id := range r.types {
		if id.matches(name) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrClassNotFound, name)
	case 1:
		return r.types[matches[0]], nil
	default:
		sort.Slice(matches, func(i, j int) bool { return matches[i].String() < matches[j].String() })

		return nil, fmt.Errorf("%w: %s matches %v", ErrAmbiguous, name, matches)
	}
}

// Single narrows a LookupByType result to exactly one bean.
func Single(t reflect.Type, beans []any) (any, error) {
	if common.IsEmpty(beans) {
		return nil, fmt.Errorf("%w: no bean of type %s", ErrNotFound, t)
	}

	if common.IsMultiple(beans) {
		return nil, fmt.Errorf("%w: %d beans of type %s", ErrAmbiguous, len(beans), t)
	}

	bean, _ := common.First(beans)

	return bean, nil
}
