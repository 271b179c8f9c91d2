package binding

import (
	"fmt"
	"slices"

	"propbind/diagnostic"
	"propbind/internal/match"
)

// Result is the outcome of Binder.Apply. Keys are listed in the order they
// were processed, which is sorted order.
type Result struct {
	// Bound keys had their mutator invoked.
	Bound []string
	// Unbound keys matched the option prefix but no member.
	Unbound []string
	// Excluded keys did not carry the option prefix and were not inspected.
	Excluded []string
	// Diagnostics explain every bound and unbound key, and the key that
	// stopped the bind when Apply returned an error.
	Diagnostics diagnostic.Diagnostics
}

// Complete reports whether every inspected key was bound.
func (r *Result) Complete() bool {
	return len(r.Unbound) == 0 && !r.Diagnostics.HasErrors()
}

// IsBound reports whether key was bound.
func (r *Result) IsBound(key string) bool {
	return slices.Contains(r.Bound, key)
}

// Drain removes the bound keys from props.
func (r *Result) Drain(props map[string]any) {
	for _, key := range r.Bound {
		delete(props, key)
	}
}

// record adds err as an error diagnostic coded after its kind, e.g.
// "type-coercion-failure".
func (r *Result) record(err *Error) {
	var target string
	if err.Target != nil {
		target = fmt.Sprintf("%T", err.Target)
	}

	r.Diagnostics.AddError(match.KebabCase(err.Kind.String()), err.Error(), err.Key, target)
}
