package binding

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=ErrorKind -output=kind_string.go

// ErrorKind classifies a bind failure.
type ErrorKind int

const (
	UnresolvedPlaceholder  ErrorKind = iota // {{name}} or #property: has no value
	UnresolvedReference                     // #bean:, #type: or #autowired found no single bean
	ClassResolutionFailure                  // #class: or #type: names an unknown type
	ConstructionFailure                     // the injector could not produce an instance
	NoCompatibleMutator                     // no member matches the segment (mandatory only)
	TypeCoercionFailure                     // the value cannot be converted to the member type
	MutatorFailure                          // the mutator or accessor returned an error
	InvalidTarget                           // the target is not a pointer to a struct or a map
	InvalidPath                             // the key is empty or has an empty segment
)

// Sentinels matched by errors.Is against any *Error of the same kind.
var (
	ErrUnresolvedPlaceholder  = errors.New("unresolved placeholder")
	ErrUnresolvedReference    = errors.New("unresolved reference")
	ErrClassResolutionFailure = errors.New("class resolution failure")
	ErrConstructionFailure    = errors.New("construction failure")
	ErrNoCompatibleMutator    = errors.New("no compatible mutator")
	ErrTypeCoercionFailure    = errors.New("type coercion failure")
	ErrMutatorFailure         = errors.New("mutator failure")
	ErrInvalidTarget          = errors.New("invalid target")
	ErrInvalidPath            = errors.New("invalid path")

	// ErrNoRuntime is the cause when a directive needs a collaborator the
	// Runtime does not provide.
	ErrNoRuntime = errors.New("runtime collaborator not configured")
)

var sentinels = [...]error{
	UnresolvedPlaceholder:  ErrUnresolvedPlaceholder,
	UnresolvedReference:    ErrUnresolvedReference,
	ClassResolutionFailure: ErrClassResolutionFailure,
	ConstructionFailure:    ErrConstructionFailure,
	NoCompatibleMutator:    ErrNoCompatibleMutator,
	TypeCoercionFailure:    ErrTypeCoercionFailure,
	MutatorFailure:         ErrMutatorFailure,
	InvalidTarget:          ErrInvalidTarget,
	InvalidPath:            ErrInvalidPath,
}

// Sentinel returns the errors.Is target for k.
func (k ErrorKind) Sentinel() error {
	if k < 0 || int(k) >= len(sentinels) {
		return nil
	}

	return sentinels[k]
}

// Error is returned for every failed bind. Key is the property key as the
// caller supplied it, Segment the path segment being processed, and Target
// the root object passed to the bind call.
type Error struct {
	Kind    ErrorKind
	Key     string
	Segment string
	Target  any
	Cause   error
}

func (e *Error) Error() string {
	var sb strings.Builder

	kind := e.Kind.String()
	if s := e.Kind.Sentinel(); s != nil {
		kind = s.Error()
	}

	fmt.Fprintf(&sb, "%s: cannot bind property %q", kind, e.Key)

	if e.Segment != "" && e.Segment != e.Key {
		fmt.Fprintf(&sb, " at segment %q", e.Segment)
	}

	if e.Target != nil {
		fmt.Fprintf(&sb, " on %T", e.Target)
	}

	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}

	return sb.String()
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.Sentinel()
}

// kindError carries the kind of a failure raised below the per-key loop
// until the key and target are known.
type kindError struct {
	kind  ErrorKind
	cause error
}

func (e *kindError) Error() string { return e.cause.Error() }
func (e *kindError) Unwrap() error { return e.cause }

func failKind(kind ErrorKind, format string, args ...any) error {
	return &kindError{kind: kind, cause: fmt.Errorf(format, args...)}
}
