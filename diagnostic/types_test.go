package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.False(t, d.HasErrors())

	d.AddInfo(CodeBound, "bound via SetName", "name", "*Foo")
	d.AddWarning(CodeNoMutator, "no member named myAge", "bar.myAge", "*Bar")
	assert.False(t, d.HasErrors())

	d.AddError(CodeNoMutator, "no member named myAge", "bar.myAge", "*Bar")
	assert.True(t, d.HasErrors())

	require.Len(t, d.Errors, 1)
	assert.Equal(t, "bar.myAge (*Bar): [no-mutator] no member named myAge", d.Errors[0].String())

	forKey := d.ForKey("bar.myAge")
	require.Len(t, forKey, 2)
	assert.Equal(t, SeverityError, forKey[0].Severity)
	assert.Equal(t, SeverityWarning, forKey[1].Severity)
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		diag     Diagnostic
		expected string
	}{
		{Diagnostic{Message: "plain"}, "plain"},
		{Diagnostic{Code: "c", Message: "m"}, "[c] m"},
		{Diagnostic{Key: "k", Message: "m"}, "k: m"},
		{Diagnostic{Target: "*T", Message: "m"}, "(*T): m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.diag.String())
	}

	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
