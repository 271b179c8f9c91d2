package describe

import (
	"errors"
	"fmt"
	"reflect"
)

// Invoke calls the mutator on target, a pointer of the descriptor's type.
// arg must already be assignable to Param.
func (m *Mutator) Invoke(target, arg reflect.Value) error {
	if m.field != nil {
		f, err := fieldByIndex(target.Elem(), m.field, true)
		if err != nil {
			return err
		}

		f.Set(arg)

		return nil
	}

	out := target.Method(m.method).Call([]reflect.Value{arg})

	return resultError(out, m.returnsErr, m.Member)
}

// Get reads the property from target, a pointer of the descriptor's type.
// Fields are returned addressable; a field promoted through a nil embedded
// pointer reads as its zero value.
func (a *Accessor) Get(target reflect.Value) (reflect.Value, error) {
	if a.field != nil {
		v, err := fieldByIndex(target.Elem(), a.field, false)
		if errors.Is(err, errNilEmbedded) {
			return reflect.Zero(a.Type), nil
		}

		return v, err
	}

	out := target.Method(a.method).Call(nil)
	if err := resultError(out, a.returnsErr, a.Member); err != nil {
		return reflect.Value{}, err
	}

	return out[0], nil
}

func resultError(out []reflect.Value, returnsErr bool, member string) error {
	if !returnsErr || len(out) == 0 {
		return nil
	}

	last := out[len(out)-1]
	if last.IsNil() {
		return nil
	}

	return fmt.Errorf("%s: %w", member, last.Interface().(error))
}

// fieldByIndex walks a promoted field path. With alloc, nil embedded
// pointers along the way are allocated unless the embedded field is
// unexported, which reflect does not allow to set.
func fieldByIndex(v reflect.Value, index []int, alloc bool) (reflect.Value, error) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !alloc {
					return reflect.Value{}, errNilEmbedded
				}

				if !v.CanSet() {
					return reflect.Value{}, errUnexportedEmbedded
				}

				v.Set(reflect.New(v.Type().Elem()))
			}

			v = v.Elem()
		}

		v = v.Field(x)
	}

	return v, nil
}
