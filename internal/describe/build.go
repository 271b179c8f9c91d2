package describe

import (
	"reflect"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

var cache sync.Map // reflect.Type -> *Descriptor

// For returns the descriptor of t, which must be a struct or a pointer to
// one. The second result is false for any other type.
func For(t reflect.Type) (*Descriptor, bool) {
	if t == nil {
		return nil, false
	}

	if t.Kind() == reflect.Struct {
		t = reflect.PointerTo(t)
	}

	if t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return nil, false
	}

	if d, ok := cache.Load(t); ok {
		return d.(*Descriptor), true
	}

	d, _ := cache.LoadOrStore(t, build(t))

	return d.(*Descriptor), true
}

type builder struct {
	desc   *Descriptor
	byName map[string]*Property
}

func build(t reflect.Type) *Descriptor {
	b := &builder{
		desc:   &Descriptor{Type: t},
		byName: make(map[string]*Property),
	}

	b.addFields(t.Elem())
	b.addMethods(t)

	for _, p := range b.desc.Properties {
		sort.SliceStable(p.Mutators, func(i, j int) bool {
			return p.Mutators[i].Style < p.Mutators[j].Style
		})
	}

	return b.desc
}

func (b *builder) property(name string) *Property {
	if p, ok := b.byName[name]; ok {
		return p
	}

	p := &Property{Name: name}
	b.byName[name] = p
	b.desc.Properties = append(b.desc.Properties, p)

	return p
}

func (b *builder) addFields(st reflect.Type) {
	for _, f := range reflect.VisibleFields(st) {
		if !f.IsExported() {
			continue
		}

		tag, hasTag := f.Tag.Lookup(TagName)
		if tag == "-" {
			continue
		}

		p := b.property(f.Name)
		if hasTag {
			if alias, _, _ := strings.Cut(tag, ","); alias != "" && alias != f.Name {
				p.Aliases = append(p.Aliases, alias)
			}
		}

		p.Mutators = append(p.Mutators, &Mutator{
			Style:  StyleField,
			Member: f.Name,
			Param:  f.Type,
			field:  f.Index,
		})

		if p.Accessor == nil {
			p.Accessor = &Accessor{Member: f.Name, Type: f.Type, field: f.Index}
		}
	}
}

func (b *builder) addMethods(t reflect.Type) {
	// accessor precedence per property: GetX, IsX, X()
	accessorRank := make(map[string]int)

	for i := range t.NumMethod() {
		m := t.Method(i)
		if m.Type.IsVariadic() {
			continue
		}

		switch m.Type.NumIn() {
		case 2:
			b.addMutatorMethod(m)
		case 1:
			b.addAccessorMethod(m, accessorRank)
		}
	}
}

func (b *builder) addMutatorMethod(m reflect.Method) {
	returnsErr, ok := resultShape(m.Type, true)
	if !ok {
		return
	}

	style := StyleFluent
	name := m.Name

	if rest, found := trimWordPrefix(m.Name, "Set"); found {
		style, name = StyleSetter, rest
	} else if rest, found := trimWordPrefix(m.Name, "With"); found {
		style, name = StyleWith, rest
	}

	p := b.property(name)
	if p.Mutator(style) != nil {
		return
	}

	p.Mutators = append(p.Mutators, &Mutator{
		Style:      style,
		Member:     m.Name,
		Param:      m.Type.In(1),
		method:     m.Index,
		returnsErr: returnsErr,
	})
}

func (b *builder) addAccessorMethod(m reflect.Method, rank map[string]int) {
	returnsErr, ok := resultShape(m.Type, false)
	if !ok || m.Type.NumOut() == 0 || (returnsErr && m.Type.NumOut() == 1) {
		return
	}

	out := m.Type.Out(0)
	name, level := m.Name, 3

	if rest, found := trimWordPrefix(m.Name, "Get"); found {
		name, level = rest, 1
	} else if rest, found := trimWordPrefix(m.Name, "Is"); found && out.Kind() == reflect.Bool {
		name, level = rest, 2
	}

	p := b.property(name)

	current, ranked := rank[name]
	if p.Accessor != nil && (!ranked || current <= level) {
		// fields and better-ranked methods keep their place
		return
	}

	rank[name] = level
	p.Accessor = &Accessor{
		Member:     m.Name,
		Type:       out,
		method:     m.Index,
		returnsErr: returnsErr,
	}
}

// resultShape accepts no results, one result, or a value followed by an
// error. It reports whether the last result is an error.
func resultShape(mt reflect.Type, allowNone bool) (returnsErr, ok bool) {
	switch mt.NumOut() {
	case 0:
		return false, allowNone
	case 1:
		return mt.Out(0) == errorType, true
	case 2:
		return mt.Out(1) == errorType, mt.Out(1) == errorType
	default:
		return false, false
	}
}

// trimWordPrefix strips prefix when it is followed by an upper-case rune,
// so "SetAge" yields "Age" while "Settings" is left alone.
func trimWordPrefix(name, prefix string) (string, bool) {
	if !strings.HasPrefix(name, prefix) {
		return name, false
	}

	rest := name[len(prefix):]

	r, _ := utf8.DecodeRuneInString(rest)
	if rest == "" || !unicode.IsUpper(r) {
		return name, false
	}

	return rest, true
}
