package path

import (
	"errors"
	"fmt"
	"strings"
)

// PlaceholderOpen marks the start of a placeholder inside a segment.
const PlaceholderOpen = "{{"

// Segment is one dot-delimited component of a property key.
type Segment struct {
	Name        string
	Placeholder bool // Name contains a {{...}} token
}

// Path is a parsed property key.
type Path struct {
	Segments []Segment
}

// Parse splits a property key on '.' into segments.
// Supports: "name", "bar.age", "bar.{{committer}}", "bar.gold-customer".
func Parse(key string) (Path, error) {
	if key == "" {
		return Path{}, errors.New("empty path")
	}

	var segments []Segment

	for part := range strings.SplitSeq(key, ".") {
		if part == "" {
			return Path{}, fmt.Errorf("invalid path %q: empty segment", key)
		}

		segments = append(segments, Segment{
			Name:        part,
			Placeholder: strings.Contains(part, PlaceholderOpen),
		})
	}

	return Path{Segments: segments}, nil
}

// Leaf returns the final segment.
func (p Path) Leaf() Segment {
	return p.Segments[len(p.Segments)-1]
}

// Intermediates returns every segment before the leaf.
func (p Path) Intermediates() []Segment {
	return p.Segments[:len(p.Segments)-1]
}

// Depth returns the number of segments.
func (p Path) Depth() int {
	return len(p.Segments)
}

// String joins the segments back into a dotted key.
func (p Path) String() string {
	names := make([]string, len(p.Segments))
	for i, s := range p.Segments {
		names[i] = s.Name
	}

	return strings.Join(names, ".")
}
