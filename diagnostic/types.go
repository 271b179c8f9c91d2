package diagnostic

import (
	"fmt"
	"strings"
)

// Codes used by the binder.
const (
	CodeBound        = "bound"
	CodeNoMutator    = "no-mutator"
	CodeNoAccessor   = "no-accessor"
	CodeNotCreatable = "not-creatable"
	CodeNotContainer = "not-container"
	CodeTieBreak     = "tie-break"
)

// Diagnostics holds all diagnostic information from one bind call.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Key is the property key this relates to.
	Key string
	// Target names the type of the object the segment was looked up on.
	Target string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

func (d *Diagnostics) add(sev Severity, code, message, key, target string) {
	diag := Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Key:      key,
		Target:   target,
	}

	switch sev {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, key, target string) {
	d.add(SeverityError, code, message, key, target)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, key, target string) {
	d.add(SeverityWarning, code, message, key, target)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, key, target string) {
	d.add(SeverityInfo, code, message, key, target)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// ForKey returns every diagnostic about key, errors first.
func (d *Diagnostics) ForKey(key string) []Diagnostic {
	var out []Diagnostic

	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if diag.Key == key {
				out = append(out, diag)
			}
		}
	}

	return out
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Key != "" {
		prefix = append(prefix, d.Key)
	}

	if d.Target != "" {
		prefix = append(prefix, "("+d.Target+")")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
