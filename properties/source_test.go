package properties

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLookup(t *testing.T) {
	m := Map{"companyName": "Acme"}

	v, ok := m.Lookup("companyName")
	require.True(t, ok)
	assert.Equal(t, "Acme", v)

	_, ok = m.Lookup("missing")
	assert.False(t, ok)
}

func TestChainFirstHitWins(t *testing.T) {
	c := Chain{
		Map{"committer": "rider"},
		nil,
		Map{"committer": "driver", "companyName": "Acme"},
	}

	v, ok := c.Lookup("committer")
	require.True(t, ok)
	assert.Equal(t, "rider", v)

	v, ok = c.Lookup("companyName")
	require.True(t, ok)
	assert.Equal(t, "Acme", v)

	_, ok = c.Lookup("nothing")
	assert.False(t, ok)
}

func TestEnvLookup(t *testing.T) {
	t.Setenv("PROPBIND_COMPANY_NAME", "Acme")
	t.Setenv("PROPBIND_GOLD_CUSTOMER", "true")

	e := Env{Prefix: "PROPBIND_"}

	v, ok := e.Lookup("company.name")
	require.True(t, ok)
	assert.Equal(t, "Acme", v)

	v, ok = e.Lookup("gold-customer")
	require.True(t, ok)
	assert.Equal(t, "true", v)

	_, ok = e.Lookup("company.id")
	assert.False(t, ok)
}

func TestViperLookup(t *testing.T) {
	v := viper.New()
	v.Set("companyName", "Acme")
	v.Set("mail.port", 25)

	src := Viper{V: v}

	got, ok := src.Lookup("companyName")
	require.True(t, ok)
	assert.Equal(t, "Acme", got)

	got, ok = src.Lookup("mail.port")
	require.True(t, ok)
	assert.Equal(t, "25", got)

	_, ok = src.Lookup("missing")
	assert.False(t, ok)

	_, ok = Viper{}.Lookup("companyName")
	assert.False(t, ok)
}
