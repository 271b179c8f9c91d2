package describe

import (
	"errors"
	"reflect"
)

//go:generate go tool stringer -type=Style -trimprefix=Style -output=style_string.go

// Style is the calling convention of a mutator. Lower values win when
// several conventions exist for one property.
type Style int

const (
	StyleSetter Style = iota // SetName(v)
	StyleFluent              // Name(v), result ignored
	StyleWith                // WithName(v), result ignored
	StyleField               // exported struct field
)

// TagName is the struct tag consulted for aliases: `bind:"alias"` adds a
// name, `bind:"-"` hides the field.
const TagName = "bind"

var errorType = reflect.TypeFor[error]()

var (
	errNilEmbedded        = errors.New("field is promoted through a nil embedded pointer")
	errUnexportedEmbedded = errors.New("field is promoted through a nil pointer to an unexported embedded struct")
)

// Mutator assigns one property.
type Mutator struct {
	Style Style
	// Member is the Go method or field name.
	Member string
	// Param is the type the value must be converted to.
	Param reflect.Type

	method     int
	field      []int
	returnsErr bool
}

// Accessor reads one property.
type Accessor struct {
	// Member is the Go method or field name.
	Member string
	// Type is the type of the value returned.
	Type reflect.Type

	method     int
	field      []int
	returnsErr bool
}

// IsField reports whether the accessor reads a struct field directly.
func (a *Accessor) IsField() bool {
	return a.field != nil
}

// Property groups every member that reads or writes one name.
type Property struct {
	// Name is the Go-side property name, e.g. "GoldCustomer" for SetGoldCustomer.
	Name string
	// Aliases come from the bind struct tag.
	Aliases []string
	// Mutators are ordered by Style.
	Mutators []*Mutator
	// Accessor is nil when the property is write-only.
	Accessor *Accessor
}

// Mutator returns the mutator of the given style, or nil.
func (p *Property) Mutator(style Style) *Mutator {
	for _, m := range p.Mutators {
		if m.Style == style {
			return m
		}
	}

	return nil
}

// Writable reports whether the property has at least one mutator.
func (p *Property) Writable() bool {
	return len(p.Mutators) > 0
}

// Descriptor is the member table of one pointer-to-struct type.
type Descriptor struct {
	// Type is the pointer type the members are invoked on.
	Type reflect.Type
	// Properties in discovery order: fields in declaration order, then
	// methods in reflect order.
	Properties []*Property
}
