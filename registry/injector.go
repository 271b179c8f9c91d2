package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// ErrNoInstance is returned when an injector produced nothing.
var ErrNoInstance = errors.New("injector returned no instance")

// Injector constructs new instances of a type.
type Injector interface {
	NewInstance(t reflect.Type) (any, error)
}

// InjectorFunc adapts a function to Injector.
type InjectorFunc func(t reflect.Type) (any, error)

// NewInstance implements Injector.
func (f InjectorFunc) NewInstance(t reflect.Type) (any, error) {
	return f(t)
}

// DefaultInjector allocates zero values, or calls a factory registered for
// the type. Struct types yield a pointer to the new value so it stays
// addressable.
type DefaultInjector struct {
	mu        sync.RWMutex
	factories map[reflect.Type]func() (any, error)
}

// NewInjector creates a DefaultInjector with no factories.
func NewInjector() *DefaultInjector {
	return &DefaultInjector{factories: make(map[reflect.Type]func() (any, error))}
}

// Factory registers a constructor for t. Pointer types are registered by
// their element type.
func (i *DefaultInjector) Factory(t reflect.Type, fn func() (any, error)) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.factories == nil {
		i.factories = make(map[reflect.Type]func() (any, error))
	}

	i.factories[elemType(t)] = fn
}

// NewInstance implements Injector.
func (i *DefaultInjector) NewInstance(t reflect.Type) (any, error) {
	t = elemType(t)

	i.mu.RLock()
	fn, ok := i.factories[t]
	i.mu.RUnlock()

	if ok {
		v, err := fn()
		if err != nil {
			return nil, fmt.Errorf("factory for %s: %w", t, err)
		}

		if v == nil {
			return nil, fmt.Errorf("%w: factory for %s", ErrNoInstance, t)
		}

		return v, nil
	}

	switch t.Kind() {
	case reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return nil, fmt.Errorf("cannot instantiate %s of kind %s", t, t.Kind())
	case reflect.Map:
		return reflect.MakeMap(t).Interface(), nil
	default:
		return reflect.New(t).Interface(), nil
	}
}

func elemType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}
