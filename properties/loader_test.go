package properties

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAML(t *testing.T) {
	doc := `
name: James
bar:
  age: 33
  gold-customer: true
  work:
    id: 123
    name: "{{companyName}}"
tags: [a, b]
`

	flat, err := LoadYAML([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "James", flat["name"])
	assert.Equal(t, 33, flat["bar.age"])
	assert.Equal(t, true, flat["bar.gold-customer"])
	assert.Equal(t, 123, flat["bar.work.id"])
	assert.Equal(t, "{{companyName}}", flat["bar.work.name"])
	assert.Equal(t, []any{"a", "b"}, flat["tags"])
	assert.Len(t, flat, 6)
}

func TestLoadTOML(t *testing.T) {
	doc := `
name = "James"

[bar]
age = 33

[bar.work]
id = 123
`

	flat, err := LoadTOML([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "James", flat["name"])
	assert.Equal(t, int64(33), flat["bar.age"])
	assert.Equal(t, int64(123), flat["bar.work.id"])
}

func TestLoadJSON(t *testing.T) {
	flat, err := LoadJSON([]byte(`{"name":"James","bar":{"age":33,"work":{"name":"Acme"}}}`))
	require.NoError(t, err)

	assert.Equal(t, "James", flat["name"])
	assert.InDelta(t, 33.0, flat["bar.age"], 0)
	assert.Equal(t, "Acme", flat["bar.work.name"])
}

func TestLoadInvalid(t *testing.T) {
	_, err := LoadYAML([]byte("name: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse property YAML")

	_, err = LoadJSON([]byte("{"))
	require.Error(t, err)

	_, err = LoadTOML([]byte("= nope"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "props.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("bar:\n  age: 33\n"), 0o644))

	flat, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 33, flat["bar.age"])

	tomlPath := filepath.Join(dir, "props.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("name = \"James\"\n"), 0o644))

	flat, err = LoadFile(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, "James", flat["name"])

	_, err = LoadFile(filepath.Join(dir, "props.ini"))
	require.Error(t, err)

	txtPath := filepath.Join(dir, "props.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("x"), 0o644))

	_, err = LoadFile(txtPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported property file extension")
}

func TestStringsAndKeys(t *testing.T) {
	m := Strings(map[string]any{"b": 2, "a": true, "c": "x"})

	assert.Equal(t, Map{"a": "true", "b": "2", "c": "x"}, m)
	assert.Equal(t, []string{"a", "b", "c"}, Keys(m))
}
