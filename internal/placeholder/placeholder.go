// Package placeholder expands {{name}} tokens against a property source.
package placeholder

import (
	"errors"
	"fmt"
	"strings"

	"propbind/properties"
)

const (
	openToken  = "{{"
	closeToken = "}}"

	// defaultSep separates a name from its fallback: {{name:fallback}}.
	defaultSep = ":"

	maxDepth = 32
)

var (
	// ErrUnresolved is returned when a placeholder names a missing property.
	ErrUnresolved = errors.New("unresolved placeholder")
	// ErrMalformed is returned for a "{{" without its closing "}}" or an empty name.
	ErrMalformed = errors.New("malformed placeholder")
	// ErrCircular is returned when placeholder values refer back to themselves.
	ErrCircular = errors.New("circular placeholder reference")
)

// Resolver expands placeholders using Source.
type Resolver struct {
	Source properties.Source
}

// Contains reports whether text holds a placeholder opening.
func Contains(text string) bool {
	return strings.Contains(text, openToken)
}

// Resolve substitutes every {{name}} in text. Text without placeholders is
// returned unchanged.
func (r Resolver) Resolve(text string) (string, error) {
	if !Contains(text) {
		return text, nil
	}

	return r.resolve(text, nil)
}

func (r Resolver) resolve(text string, visiting []string) (string, error) {
	if len(visiting) > maxDepth {
		return "", fmt.Errorf("%w: %s", ErrCircular, strings.Join(visiting, " -> "))
	}

	var b strings.Builder

	rest := text
	for {
		start := strings.Index(rest, openToken)
		if start < 0 {
			b.WriteString(rest)

			break
		}

		end := strings.Index(rest[start+len(openToken):], closeToken)
		if end < 0 {
			return "", fmt.Errorf("%w: missing %q in %q", ErrMalformed, closeToken, text)
		}

		b.WriteString(rest[:start])

		token := rest[start+len(openToken) : start+len(openToken)+end]

		value, err := r.lookup(token, text, visiting)
		if err != nil {
			return "", err
		}

		b.WriteString(value)

		rest = rest[start+len(openToken)+end+len(closeToken):]
	}

	return b.String(), nil
}

func (r Resolver) lookup(token, text string, visiting []string) (string, error) {
	name, fallback, hasFallback := strings.Cut(token, defaultSep)

	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty name in %q", ErrMalformed, text)
	}

	for _, v := range visiting {
		if v == name {
			return "", fmt.Errorf("%w: %s -> %s", ErrCircular, strings.Join(visiting, " -> "), name)
		}
	}

	var (
		value string
		ok    bool
	)

	if r.Source != nil {
		value, ok = r.Source.Lookup(name)
	}

	if !ok {
		if !hasFallback {
			return "", fmt.Errorf("%w: %s", ErrUnresolved, name)
		}

		value = fallback
	}

	if !Contains(value) {
		return value, nil
	}

	return r.resolve(value, append(visiting, name))
}
