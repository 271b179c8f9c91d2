package binding

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"go.uber.org/zap"

	"propbind/diagnostic"
	"propbind/internal/describe"
	"propbind/internal/match"
	"propbind/internal/path"
	"propbind/internal/placeholder"
)

// op is the processing of a single key.
type op struct {
	b      *Binder
	target any
	key    string
	res    *Result
}

// miss explains why a segment could not be followed.
type miss struct {
	code    string
	segment string
	on      reflect.Type
	message string
}

// bind walks the key from root and assigns value to its leaf.
func (o *op) bind(root reflect.Value, value any) error {
	name := o.key

	if prefix := o.b.cfg.OptionPrefix; prefix != "" {
		rest, ok := match.TrimPrefix(o.key, prefix, o.b.cfg.IgnoreCase)
		if !ok {
			o.res.Excluded = append(o.res.Excluded, o.key)

			return nil
		}

		name = rest
	}

	p, err := path.Parse(name)
	if err != nil {
		return o.fail(InvalidPath, name, err)
	}

	cur := root

	var commits []func() error

	for _, seg := range p.Intermediates() {
		segName, err := o.segmentName(seg)
		if err != nil {
			return err
		}

		s, m, err := o.descend(cur, segName)
		if err != nil {
			return o.wrap(MutatorFailure, segName, err)
		}

		if m != nil {
			return o.skip(m)
		}

		if s.commit != nil {
			commits = append(commits, s.commit)
		}

		cur = s.next
	}

	leaf, err := o.segmentName(p.Leaf())
	if err != nil {
		return err
	}

	val, ref, err := o.resolveValue(leaf, value)
	if err != nil {
		return err
	}

	member, m, err := o.assign(cur, leaf, val, ref)
	if err != nil {
		return err
	}

	if m != nil {
		return o.skip(m)
	}

	for _, commit := range slices.Backward(commits) {
		if err := commit(); err != nil {
			return o.wrap(MutatorFailure, leaf, err)
		}
	}

	o.res.Bound = append(o.res.Bound, o.key)
	o.res.Diagnostics.AddInfo(diagnostic.CodeBound, "set through "+member, o.key, cur.Type().String())
	o.b.log.Debug("bound property",
		zap.String("key", o.key),
		zap.String("member", member),
		zap.Stringer("target", cur.Type()))

	return nil
}

// segmentName resolves placeholders in a segment.
func (o *op) segmentName(seg path.Segment) (string, error) {
	if !seg.Placeholder {
		return seg.Name, nil
	}

	name, err := o.placeholders(seg.Name)
	if err != nil {
		return "", o.fail(UnresolvedPlaceholder, seg.Name, err)
	}

	return name, nil
}

func (o *op) placeholders(text string) (string, error) {
	rt := o.b.rt
	if rt == nil || rt.Properties == nil {
		return "", fmt.Errorf("%w: property source for %q", ErrNoRuntime, text)
	}

	return placeholder.Resolver{Source: rt.Properties}.Resolve(text)
}

// resolveValue expands placeholders in string values. A reference
// directive is returned unresolved and only looked up once the member it
// is bound to is known, so a skipped key never reaches the registry or the
// injector.
func (o *op) resolveValue(leaf string, value any) (any, *reference, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil, nil
	}

	if placeholder.Contains(s) {
		resolved, err := o.placeholders(s)
		if err != nil {
			return nil, nil, o.fail(UnresolvedPlaceholder, leaf, err)
		}

		s = resolved
	}

	ref, ok := parseReference(s)
	if !ok {
		return s, nil, nil
	}

	return nil, &ref, nil
}

// assign sets the leaf member of cur. It returns the member used.
func (o *op) assign(cur reflect.Value, leaf string, val any, ref *reference) (string, *miss, error) {
	if cur.Kind() == reflect.Map {
		arg, err := o.coerce(leaf, val, ref, cur.Type().Elem())
		if err != nil {
			return "", nil, err
		}

		cur.SetMapIndex(reflect.ValueOf(leaf).Convert(cur.Type().Key()), arg)

		return "[" + leaf + "]", nil, nil
	}

	d, _ := describe.For(cur.Type())

	r, ok := d.FindMutator(leaf, o.b.cfg.IgnoreCase)
	if !ok {
		return "", newMiss(diagnostic.CodeNoMutator, leaf, cur.Type(), "no mutator matches %q", leaf), nil
	}

	if r.Candidates > 1 {
		o.res.Diagnostics.AddInfo(diagnostic.CodeTieBreak,
			fmt.Sprintf("%d members match %q, using %s", r.Candidates, leaf, r.Mutator.Member),
			o.key, cur.Type().String())
	}

	arg, err := o.coerce(leaf, val, ref, r.Mutator.Param)
	if err != nil {
		return "", nil, err
	}

	if err := r.Mutator.Invoke(cur, arg); err != nil {
		return "", nil, o.fail(MutatorFailure, leaf, err)
	}

	return r.Mutator.Member, nil, nil
}

func (o *op) coerce(leaf string, val any, ref *reference, to reflect.Type) (reflect.Value, error) {
	if ref != nil {
		v, err := o.b.rt.resolve(*ref, to)
		if err != nil {
			return reflect.Value{}, o.wrap(UnresolvedReference, leaf, err)
		}

		val = v
	}

	arg, err := o.b.rt.converter().Convert(val, to)
	if err != nil {
		return reflect.Value{}, o.fail(TypeCoercionFailure, leaf, err)
	}

	return arg, nil
}

// skip records an unmatched key, or fails when binding is mandatory.
func (o *op) skip(m *miss) error {
	if o.b.cfg.Mandatory {
		return o.fail(NoCompatibleMutator, m.segment, fmt.Errorf("%s on %s", m.message, m.on))
	}

	o.res.Unbound = append(o.res.Unbound, o.key)
	o.res.Diagnostics.AddWarning(m.code, m.message, o.key, m.on.String())
	o.b.log.Debug("skipping property",
		zap.String("key", o.key),
		zap.String("segment", m.segment),
		zap.String("reason", m.code))

	return nil
}

// fail builds the error for the key and records it in the Result.
func (o *op) fail(kind ErrorKind, segment string, cause error) error {
	err := &Error{Kind: kind, Key: o.key, Segment: segment, Target: o.target, Cause: cause}
	o.res.record(err)

	return err
}

// wrap converts err to an *Error, taking the kind from a kindError when
// there is one.
func (o *op) wrap(kind ErrorKind, segment string, err error) error {
	var be *Error
	if errors.As(err, &be) {
		return err
	}

	var ke *kindError
	if errors.As(err, &ke) {
		return o.fail(ke.kind, segment, ke.cause)
	}

	return o.fail(kind, segment, err)
}
