// Package convert coerces property values to the parameter types of the
// members they are bound to.
//
// The Default converter handles, in order: assignable values, pointers
// (allocating the element), encoding.TextUnmarshaler targets, primitive
// kinds through the primitive conversion table, delimited or JSON lists,
// and JSON documents or decoded maps for maps and structs.
package convert

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/goccy/go-json"

	"propbind/primitive"
)

// ErrConversion is wrapped by every error the Default converter returns.
var ErrConversion = errors.New("cannot convert value")

// Converter coerces value to the type to.
type Converter interface {
	Convert(value any, to reflect.Type) (reflect.Value, error)
}

// Func adapts a function to Converter.
type Func func(value any, to reflect.Type) (reflect.Value, error)

// Convert implements Converter.
func (f Func) Convert(value any, to reflect.Type) (reflect.Value, error) {
	return f(value, to)
}

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// Default is the converter used when none is configured.
type Default struct {
	// Categories limits primitive conversions.
	Categories primitive.CategoryEnum
	// Separator splits list values given as plain text.
	Separator string
}

// New returns a Default converter with every primitive category enabled
// and "," as list separator. Narrowing number conversions still fail for
// values that do not fit the target type.
func New() *Default {
	return &Default{
		Categories: primitive.CategoryAll,
		Separator:  ",",
	}
}

// Convert implements Converter.
func (c *Default) Convert(value any, to reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(to), nil
	}

	v, ok := value.(reflect.Value)
	if !ok {
		v = reflect.ValueOf(value)
	}

	out, err := c.convert(v, to)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %v (%s) to %s: %w", ErrConversion, value, v.Type(), to, err)
	}

	return out, nil
}

func (c *Default) convert(v reflect.Value, to reflect.Type) (reflect.Value, error) {
	if v.Type().AssignableTo(to) {
		return v, nil
	}

	if v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Zero(to), nil
		}

		return c.convert(v.Elem(), to)
	}

	if to.Kind() == reflect.Pointer {
		elem, err := c.convert(v, to.Elem())
		if err != nil {
			return reflect.Value{}, err
		}

		ptr := reflect.New(to.Elem())
		ptr.Elem().Set(elem)

		return ptr, nil
	}

	if v.Kind() == reflect.String && reflect.PointerTo(to).Implements(textUnmarshalerType) {
		ptr := reflect.New(to)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(v.String())); err != nil {
			return reflect.Value{}, err
		}

		return ptr.Elem(), nil
	}

	if primitive.FromReflectType(v.Type()) != 0 && primitive.FromReflectType(to) != 0 {
		return primitive.Convert(v, to, c.Categories)
	}

	switch to.Kind() {
	case reflect.Slice, reflect.Array:
		return c.convertList(v, to)
	case reflect.Map, reflect.Struct:
		return c.convertDocument(v, to)
	}

	if v.Type().ConvertibleTo(to) {
		return v.Convert(to), nil
	}

	return reflect.Value{}, errors.New("no conversion available")
}

func (c *Default) convertList(v reflect.Value, to reflect.Type) (reflect.Value, error) {
	var items []reflect.Value

	switch v.Kind() {
	case reflect.String:
		s := strings.TrimSpace(v.String())
		if strings.HasPrefix(s, "[") {
			return c.convertDocument(v, to)
		}

		if s != "" {
			for _, part := range strings.Split(s, c.separator()) {
				items = append(items, reflect.ValueOf(strings.TrimSpace(part)))
			}
		}
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			items = append(items, v.Index(i))
		}
	default:
		items = []reflect.Value{v}
	}

	out := reflect.New(to).Elem()
	if to.Kind() == reflect.Slice {
		out = reflect.MakeSlice(to, len(items), len(items))
	} else if len(items) > to.Len() {
		return reflect.Value{}, fmt.Errorf("%d items do not fit into %s", len(items), to)
	}

	for i, item := range items {
		elem, err := c.convert(item, to.Elem())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("item %d: %w", i, err)
		}

		out.Index(i).Set(elem)
	}

	return out, nil
}

// convertDocument round-trips through JSON so decoded YAML/TOML maps and
// JSON text both land in typed maps and structs.
func (c *Default) convertDocument(v reflect.Value, to reflect.Type) (reflect.Value, error) {
	var data []byte

	if v.Kind() == reflect.String {
		data = []byte(v.String())
	} else {
		var err error

		data, err = json.Marshal(v.Interface())
		if err != nil {
			return reflect.Value{}, err
		}
	}

	ptr := reflect.New(to)
	if err := json.Unmarshal(data, ptr.Interface()); err != nil {
		return reflect.Value{}, err
	}

	return ptr.Elem(), nil
}

func (c *Default) separator() string {
	if c.Separator == "" {
		return ","
	}

	return c.Separator
}
