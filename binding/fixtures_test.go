package binding_test

import (
	"errors"
	"testing"

	"propbind/binding"
	"propbind/properties"
	"propbind/registry"
)

type Company struct {
	id   int
	name string
}

func (c *Company) GetID() int          { return c.id }
func (c *Company) SetID(id int)        { c.id = id }
func (c *Company) GetName() string     { return c.name }
func (c *Company) SetName(name string) { c.name = name }

// Bar has no setters, only fluent mutators in both styles.
type Bar struct {
	age          int
	rider        bool
	work         *Company
	goldCustomer bool
}

func (b *Bar) GetAge() int          { return b.age }
func (b *Bar) IsRider() bool        { return b.rider }
func (b *Bar) GetWork() *Company    { return b.work }
func (b *Bar) IsGoldCustomer() bool { return b.goldCustomer }

func (b *Bar) WithAge(age int) *Bar {
	b.age = age
	return b
}

func (b *Bar) WithRider(rider bool) *Bar {
	b.rider = rider
	return b
}

func (b *Bar) Work(work *Company) *Bar {
	b.work = work
	return b
}

func (b *Bar) GoldCustomer(goldCustomer bool) *Bar {
	b.goldCustomer = goldCustomer
	return b
}

type Foo struct {
	name string
	bar  *Bar
}

func (f *Foo) GetName() string     { return f.name }
func (f *Foo) SetName(name string) { f.name = name }
func (f *Foo) GetBar() *Bar        { return f.bar }
func (f *Foo) SetBar(bar *Bar)     { f.bar = bar }

func newFoo() *Foo {
	return &Foo{bar: &Bar{}}
}

// Limits mixes exported fields, a value struct and a map.
type Limits struct {
	Retries int
	Window  Window
	Labels  map[string]string
	Owners  map[string]*Company
}

type Window struct {
	Size  int
	Burst int `bind:"max-burst"`
}

// Server exposes a struct by value through an accessor and a setter.
type Server struct {
	window Window
	port   int
}

var errPort = errors.New("port out of range")

func (s *Server) GetWindow() Window  { return s.window }
func (s *Server) SetWindow(w Window) { s.window = w }
func (s *Server) GetPort() int       { return s.port }

func (s *Server) SetPort(p int) error {
	if p <= 0 || p > 65535 {
		return errPort
	}

	s.port = p

	return nil
}

const companyType = "binding_test.Company"

// newRuntime mirrors the fixture every scenario shares: a registry holding
// "myWork" and placeholders for the committer and company name.
func newRuntime(t *testing.T) (*binding.Runtime, *Company) {
	t.Helper()

	work := &Company{id: 456, name: "Acme"}

	reg := registry.New()
	reg.Bind("myWork", work)

	rt := binding.NewRuntime(reg, properties.Map{
		"companyName": "Acme",
		"committer":   "rider",
	})

	return rt, work
}
