package describe

import (
	"encoding"
	"reflect"

	"propbind/internal/match"
)

// Entry is one bindable path reported by Walk.
type Entry struct {
	Path  string
	Type  reflect.Type
	Style Style
}

// Walk lists every writable path reachable from t, descending into struct
// members that have an accessor. Names are spelled in kebab case. Descent
// stops at maxDepth segments, at types already on the current path, and at
// text-unmarshalable types such as time.Time.
func Walk(t reflect.Type, maxDepth int) []Entry {
	var out []Entry

	walk(t, "", maxDepth, map[reflect.Type]bool{}, &out)

	return out
}

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

func walk(t reflect.Type, prefix string, depth int, seen map[reflect.Type]bool, out *[]Entry) {
	d, ok := For(t)
	if !ok || depth <= 0 || seen[d.Type] || d.Type.Implements(textUnmarshalerType) {
		return
	}

	seen[d.Type] = true
	defer delete(seen, d.Type)

	for _, p := range d.Properties {
		path := prefix + match.KebabCase(p.Name)

		if w := p.Writer(); w != nil {
			*out = append(*out, Entry{Path: path, Type: w.Param, Style: w.Style})
		}

		if p.Accessor != nil {
			walk(p.Accessor.Type, path+".", depth-1, seen, out)
		}
	}
}
