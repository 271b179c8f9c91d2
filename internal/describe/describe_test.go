package describe

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type company struct {
	ID   int
	Name string
}

type bar struct {
	age          int
	rider        bool
	work         *company
	goldCustomer bool
}

func (b *bar) GetAge() int           { return b.age }
func (b *bar) IsRider() bool         { return b.rider }
func (b *bar) GetWork() *company     { return b.work }
func (b *bar) IsGoldCustomer() bool  { return b.goldCustomer }
func (b *bar) WithAge(age int) *bar  { b.age = age; return b }
func (b *bar) WithRider(r bool) *bar { b.rider = r; return b }
func (b *bar) Work(c *company) *bar  { b.work = c; return b }
func (b *bar) GoldCustomer(g bool) *bar {
	b.goldCustomer = g
	return b
}

type server struct {
	Host    string
	Port    int `bind:"listen-port"`
	Secret  string `bind:"-"`
	Timeout time.Duration
	hidden  int

	port int
}

var errBadPort = errors.New("bad port")

func (s *server) SetPort(p int) error {
	if p <= 0 {
		return errBadPort
	}

	s.port = p

	return nil
}

func (s *server) Settings(v string) {}

func (s *server) Close() {}

type Inner struct {
	Level int
}

type outer struct {
	*Inner
	Name string
}

func TestForRejectsNonStructs(t *testing.T) {
	for _, typ := range []reflect.Type{nil, reflect.TypeFor[int](), reflect.TypeFor[*int](), reflect.TypeFor[map[string]int]()} {
		_, ok := For(typ)
		assert.False(t, ok, "%v", typ)
	}
}

func TestForIsCached(t *testing.T) {
	a, ok := For(reflect.TypeFor[bar]())
	require.True(t, ok)

	b, ok := For(reflect.TypeFor[*bar]())
	require.True(t, ok)

	assert.Same(t, a, b)
	assert.Equal(t, reflect.TypeFor[*bar](), a.Type)
}

func TestFluentStyles(t *testing.T) {
	d, _ := For(reflect.TypeFor[*bar]())

	tests := []struct {
		segment  string
		style    Style
		member   string
		accessor string
	}{
		{"age", StyleWith, "WithAge", "GetAge"},
		{"rider", StyleWith, "WithRider", "IsRider"},
		{"work", StyleFluent, "Work", "GetWork"},
		{"gold-customer", StyleFluent, "GoldCustomer", "IsGoldCustomer"},
	}

	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			res, ok := d.FindMutator(tt.segment, false)
			require.True(t, ok)
			assert.Equal(t, tt.style, res.Mutator.Style)
			assert.Equal(t, tt.member, res.Mutator.Member)
			require.NotNil(t, res.Property.Accessor)
			assert.Equal(t, tt.accessor, res.Property.Accessor.Member)
		})
	}

	_, ok := d.FindMutator("AGE", false)
	assert.False(t, ok)

	res, ok := d.FindMutator("AGE", true)
	require.True(t, ok)
	assert.Equal(t, "WithAge", res.Mutator.Member)
	assert.Equal(t, 1, res.Candidates)
}

func TestSetterBeatsField(t *testing.T) {
	d, _ := For(reflect.TypeFor[*server]())

	res, ok := d.FindMutator("port", false)
	require.True(t, ok)
	assert.Equal(t, StyleSetter, res.Mutator.Style)
	assert.Equal(t, "SetPort", res.Mutator.Member)
	require.Len(t, res.Property.Mutators, 2)
	assert.Equal(t, StyleField, res.Property.Mutators[1].Style)

	res, ok = d.FindMutator("listen-port", false)
	require.True(t, ok)
	assert.Equal(t, "SetPort", res.Mutator.Member)

	res, ok = d.FindMutator("LISTEN_PORT", true)
	require.True(t, ok)
	assert.Equal(t, "SetPort", res.Mutator.Member)
}

func TestExactCaseBeatsFolded(t *testing.T) {
	type link struct {
		URL string
		Url string //nolint:revive // second spelling on purpose
	}

	d, _ := For(reflect.TypeFor[*link]())

	res, ok := d.FindMutator("Url", true)
	require.True(t, ok)
	assert.Equal(t, "Url", res.Mutator.Member)
	assert.Equal(t, 1, res.Candidates)

	p, ok := d.FindProperty("URL", true)
	require.True(t, ok)
	assert.Equal(t, "URL", p.Name)

	res, ok = d.FindMutator("uRl", true)
	require.True(t, ok)
	assert.Equal(t, "URL", res.Mutator.Member)
	assert.Equal(t, 2, res.Candidates)
}

func TestHiddenAndNonMutators(t *testing.T) {
	d, _ := For(reflect.TypeFor[*server]())

	_, ok := d.FindMutator("secret", false)
	assert.False(t, ok, "bind:\"-\" hides the field")

	_, ok = d.FindMutator("hidden", false)
	assert.False(t, ok, "unexported fields are ignored")

	_, ok = d.FindMutator("close", false)
	assert.False(t, ok, "methods without arguments are not mutators")

	res, ok := d.FindMutator("settings", false)
	require.True(t, ok)
	assert.Equal(t, StyleFluent, res.Mutator.Style, "Settings is not a Set prefix")
}

func TestFieldOrderPrecedesMethods(t *testing.T) {
	d, _ := For(reflect.TypeFor[*server]())

	var names []string
	for _, p := range d.Properties {
		names = append(names, p.Name)
	}

	require.GreaterOrEqual(t, len(names), 3)
	assert.Equal(t, []string{"Host", "Port", "Timeout"}, names[:3])
}

func TestInvoke(t *testing.T) {
	d, _ := For(reflect.TypeFor[*bar]())
	b := &bar{}
	target := reflect.ValueOf(b)

	res, _ := d.FindMutator("age", false)
	require.NoError(t, res.Mutator.Invoke(target, reflect.ValueOf(33)))
	assert.Equal(t, 33, b.age)

	got, err := res.Property.Accessor.Get(target)
	require.NoError(t, err)
	assert.Equal(t, 33, got.Interface())

	acme := &company{ID: 123}
	res, _ = d.FindMutator("work", false)
	require.NoError(t, res.Mutator.Invoke(target, reflect.ValueOf(acme)))
	assert.Same(t, acme, b.work)
}

func TestInvokeReturnsError(t *testing.T) {
	d, _ := For(reflect.TypeFor[*server]())
	s := &server{}

	res, _ := d.FindMutator("port", false)

	err := res.Mutator.Invoke(reflect.ValueOf(s), reflect.ValueOf(-1))
	require.ErrorIs(t, err, errBadPort)
	assert.Contains(t, err.Error(), "SetPort")

	require.NoError(t, res.Mutator.Invoke(reflect.ValueOf(s), reflect.ValueOf(2525)))
	assert.Equal(t, 2525, s.port)
}

func TestFieldAccessorIsAddressable(t *testing.T) {
	d, _ := For(reflect.TypeFor[*server]())
	s := &server{Host: "smtp"}

	p, ok := d.FindProperty("host", false)
	require.True(t, ok)
	require.True(t, p.Accessor.IsField())

	v, err := p.Accessor.Get(reflect.ValueOf(s))
	require.NoError(t, err)
	require.True(t, v.CanSet())

	v.SetString("imap")
	assert.Equal(t, "imap", s.Host)
}

func TestEmbeddedPointer(t *testing.T) {
	d, _ := For(reflect.TypeFor[*outer]())
	o := &outer{}

	p, ok := d.FindProperty("level", false)
	require.True(t, ok)

	v, err := p.Accessor.Get(reflect.ValueOf(o))
	require.NoError(t, err)
	assert.Equal(t, 0, v.Interface())
	assert.Nil(t, o.Inner)

	require.NoError(t, p.Writer().Invoke(reflect.ValueOf(o), reflect.ValueOf(5)))
	require.NotNil(t, o.Inner)
	assert.Equal(t, 5, o.Level)
}

type address struct {
	Host string
}

type mailbox struct {
	*address
	Name string
}

func TestUnexportedEmbeddedPointer(t *testing.T) {
	d, _ := For(reflect.TypeFor[*mailbox]())

	p, ok := d.FindProperty("host", false)
	require.True(t, ok)

	m := &mailbox{}
	err := p.Writer().Invoke(reflect.ValueOf(m), reflect.ValueOf("smtp.example.com"))
	require.ErrorIs(t, err, errUnexportedEmbedded)
	assert.Nil(t, m.address)

	m.address = &address{}
	require.NoError(t, p.Writer().Invoke(reflect.ValueOf(m), reflect.ValueOf("smtp.example.com")))
	assert.Equal(t, "smtp.example.com", m.Host)
}

func TestWalk(t *testing.T) {
	type root struct {
		Name  string
		Bar   *bar
		Start time.Time
	}

	var paths []string
	for _, e := range Walk(reflect.TypeFor[*root](), 3) {
		paths = append(paths, e.Path)
	}

	assert.Contains(t, paths, "name")
	assert.Contains(t, paths, "bar")
	assert.Contains(t, paths, "bar.age")
	assert.Contains(t, paths, "bar.gold-customer")
	assert.Contains(t, paths, "bar.work")
	assert.Contains(t, paths, "bar.work.id")
	assert.Contains(t, paths, "start")
	assert.NotContains(t, paths, "start.unmarshal-json")

	shallow := Walk(reflect.TypeFor[*root](), 1)
	for _, e := range shallow {
		assert.NotContains(t, e.Path, ".")
	}
}

func TestStyleString(t *testing.T) {
	assert.Equal(t, "Setter", StyleSetter.String())
	assert.Equal(t, "Field", StyleField.String())
	assert.Equal(t, "Style(9)", Style(9).String())
}
