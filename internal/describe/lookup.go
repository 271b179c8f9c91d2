package describe

import (
	"propbind/internal/match"
)

// Lookup returns the properties whose name or alias matches segment, in
// discovery order.
func (d *Descriptor) Lookup(segment string, ignoreCase bool) []*Property {
	var found []*Property

	for _, p := range d.Properties {
		if p.matches(segment, ignoreCase) {
			found = append(found, p)
		}
	}

	return found
}

func (p *Property) matches(segment string, ignoreCase bool) bool {
	if match.Matches(segment, p.Name, ignoreCase) {
		return true
	}

	for _, alias := range p.Aliases {
		if segment == alias || (ignoreCase && match.Canonical(segment) == match.Canonical(alias)) {
			return true
		}
	}

	return false
}

// Resolution is the outcome of looking a segment up for writing.
type Resolution struct {
	Property *Property
	Mutator  *Mutator
	// Candidates counts the properties that matched the segment; more than
	// one means the first in discovery order was chosen.
	Candidates int
}

// FindMutator picks the mutator for segment. Styles are tried in order
// (setter, fluent, with, field); within a style the first matching
// property in discovery order wins. With ignoreCase, case-insensitive
// matches are only considered when no exact-case member can be written.
func (d *Descriptor) FindMutator(segment string, ignoreCase bool) (Resolution, bool) {
	var res Resolution

	for _, fold := range passes(ignoreCase) {
		candidates := d.Lookup(segment, fold)
		res.Candidates = len(candidates)

		for style := StyleSetter; style <= StyleField; style++ {
			for _, p := range candidates {
				if m := p.Mutator(style); m != nil {
					return Resolution{Property: p, Mutator: m, Candidates: len(candidates)}, true
				}
			}
		}
	}

	return res, false
}

// FindProperty returns the first property matching segment that has an
// accessor, falling back to the first writable one. Exact-case matches are
// preferred the same way as in FindMutator.
func (d *Descriptor) FindProperty(segment string, ignoreCase bool) (*Property, bool) {
	for _, fold := range passes(ignoreCase) {
		candidates := d.Lookup(segment, fold)

		for _, p := range candidates {
			if p.Accessor != nil {
				return p, true
			}
		}

		for _, p := range candidates {
			if p.Writable() {
				return p, true
			}
		}
	}

	return nil, false
}

func passes(ignoreCase bool) []bool {
	if ignoreCase {
		return []bool{false, true}
	}

	return []bool{false}
}

// Writer returns the preferred mutator of the property, or nil.
func (p *Property) Writer() *Mutator {
	if len(p.Mutators) == 0 {
		return nil
	}

	return p.Mutators[0]
}
