package match

import (
	"testing"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"goldCustomer", "goldcustomer"},
		{"gold-customer", "goldcustomer"},
		{"gold_customer", "goldcustomer"},
		{"gOLd-Customer", "goldcustomer"},
		{"GOLDCUSTOMER", "goldcustomer"},

		// Go exported names
		{"GoldCustomer", "goldcustomer"},
		{"ID", "id"},
		{"SMTPHost", "smtphost"},

		// Edge cases
		{"", ""},
		{"a", "a"},
		{"A", "a"},
		{"-", ""},

		// Mixed separators
		{"order_item-ID", "orderitemid"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Canonical(tt.input)
			if result != tt.expected {
				t.Errorf("Canonical(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gold-customer", "goldCustomer"},
		{"work_id", "workId"},
		{"age", "age"},
		{"a-b-c", "aBC"},
		{"-leading", "leading"},
		{"trailing-", "trailing"},
		{"double--dash", "doubleDash"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := CamelCase(tt.input)
			if result != tt.expected {
				t.Errorf("CamelCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestKebabCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"GoldCustomer", "gold-customer"},
		{"SMTPHost", "smtp-host"},
		{"Name", "name"},
		{"ID", "id"},
		{"parseURL", "parse-url"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := KebabCase(tt.input)
			if result != tt.expected {
				t.Errorf("KebabCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		segment    string
		goName     string
		ignoreCase bool
		expected   bool
	}{
		{"age", "Age", false, true},
		{"Age", "Age", false, true},
		{"AGE", "Age", false, false},
		{"AGE", "Age", true, true},
		{"gold-customer", "GoldCustomer", false, true},
		{"goldCustomer", "GoldCustomer", false, true},
		{"goldcustomer", "GoldCustomer", false, false},
		{"gOLd-Customer", "GoldCustomer", true, true},
		{"gold_customer", "GoldCustomer", true, true},
		{"rider", "Rider", false, true},
		{"ride", "Rider", true, false},
		{"id", "ID", false, true},
		{"smtpHost", "SMTPHost", false, true},
		{"sMTPHost", "SMTPHost", false, true},
		{"id", "ID", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.segment+"/"+tt.goName, func(t *testing.T) {
			result := Matches(tt.segment, tt.goName, tt.ignoreCase)
			if result != tt.expected {
				t.Errorf("Matches(%q, %q, %v) = %v, want %v",
					tt.segment, tt.goName, tt.ignoreCase, result, tt.expected)
			}
		})
	}
}

func TestTrimPrefix(t *testing.T) {
	tests := []struct {
		input      string
		prefix     string
		ignoreCase bool
		rest       string
		ok         bool
	}{
		{"my.prefix.name", "my.prefix.", false, "name", true},
		{"my.PREFIX.bar.AGE", "my.prefix.", false, "my.PREFIX.bar.AGE", false},
		{"my.PREFIX.bar.AGE", "my.prefix.", true, "bar.AGE", true},
		{"mY.prefix.bar.work.ID", "my.prefix.", true, "bar.work.ID", true},
		{"my.other.prefix.something", "my.prefix.", true, "my.other.prefix.something", false},
		{"my.pre", "my.prefix.", true, "my.pre", false},
		{"name", "", false, "name", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rest, ok := TrimPrefix(tt.input, tt.prefix, tt.ignoreCase)
			if rest != tt.rest || ok != tt.ok {
				t.Errorf("TrimPrefix(%q, %q, %v) = (%q, %v), want (%q, %v)",
					tt.input, tt.prefix, tt.ignoreCase, rest, ok, tt.rest, tt.ok)
			}
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"OrderID", []string{"order", "id"}},
		{"goldCustomer", []string{"gold", "customer"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"order_id", []string{"order", "id"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := TokenizeIdent(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("TokenizeIdent(%q) = %v, want %v", tt.input, result, tt.expected)
			}

			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("TokenizeIdent(%q)[%d] = %q, want %q", tt.input, i, result[i], tt.expected[i])
				}
			}
		})
	}
}
