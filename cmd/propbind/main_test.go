package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propbind/binding"
)

const endpointYAML = `
mail:
  protocol: imaps
  host: "{{mailHost}}"
  password: "{{mailPassword}}"
  tls: "#bean:defaultTLS"
  fetch:
    folder: Archive
  unknown: 1
other: x
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestBindCommand(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "endpoint.yaml", endpointYAML)
	secrets := writeFile(t, dir, "secrets.yaml", "mailPassword: s3cret\nmailHost: imap.example.com\n")

	out, errOut, err := execute(t, "bind", "--file", file, "--prefix", "mail.", "--properties", secrets)
	require.NoError(t, err)

	assert.Contains(t, out, "destination: imaps://imap.example.com:993")
	assert.Contains(t, out, "password: '******'")
	assert.Contains(t, out, "folder: Archive")
	assert.Contains(t, out, "TLSv1.3")

	assert.Contains(t, errOut, "5 bound, 1 unbound, 1 excluded")
	assert.Contains(t, errOut, "unbound  mail.unknown")
	assert.Contains(t, errOut, "excluded other")
}

func TestBindCommandJSON(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "endpoint.json", `{"host": "smtp.example.com", "port": 2525, "to": "a@example.com"}`)

	out, _, err := execute(t, "bind", "-f", file, "-o", "json")
	require.NoError(t, err)

	assert.Contains(t, out, `"destination": "smtp://smtp.example.com:2525"`)
	assert.Contains(t, out, `"a@example.com"`)
}

func TestBindCommandPlaceholdersFromEnv(t *testing.T) {
	t.Setenv("PROPBIND_MAILHOST", "env.example.com")

	dir := t.TempDir()
	file := writeFile(t, dir, "endpoint.toml", "host = \"{{mailHost}}\"\n")

	out, _, err := execute(t, "bind", "--file", file)
	require.NoError(t, err)

	assert.Contains(t, out, "destination: smtp://env.example.com:25")
}

func TestBindCommandSettingsFile(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "endpoint.yaml", "MAIL:\n  HOST: smtp.example.com\n  Debug_Mode: true\n")
	settings := writeFile(t, dir, "propbind.yaml", "prefix: mail.\nignore-case: true\n")

	out, errOut, err := execute(t, "bind", "--config", settings, "--file", file)
	require.NoError(t, err)

	assert.Contains(t, out, "destination: smtp://smtp.example.com:25")
	assert.Contains(t, out, "debug_mode: true")
	assert.Contains(t, errOut, "2 bound, 0 unbound, 0 excluded")
}

func TestBindCommandMandatory(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "endpoint.yaml", endpointYAML)
	secrets := writeFile(t, dir, "secrets.yaml", "mailPassword: s3cret\nmailHost: imap.example.com\n")

	_, errOut, err := execute(t, "bind", "--file", file, "--prefix", "mail.", "--properties", secrets, "--mandatory")
	require.ErrorIs(t, err, binding.ErrNoCompatibleMutator)

	assert.Contains(t, errOut, "5 bound, 0 unbound, 1 excluded")
	assert.Contains(t, errOut, "failed   mail.unknown: [no-compatible-mutator]")
}

func TestBindCommandRequiresFile(t *testing.T) {
	_, _, err := execute(t, "bind")
	require.Error(t, err)
}

func TestPathsCommand(t *testing.T) {
	out, _, err := execute(t, "paths")
	require.NoError(t, err)

	assert.Contains(t, out, "PATH")
	assert.Contains(t, out, "tls.trust-store")
	assert.Contains(t, out, "fetch.folder")
	assert.Contains(t, out, "Setter")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "propbind v"+version)
	assert.Contains(t, out, "Go version:")
}
