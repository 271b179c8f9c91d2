package match

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// Canonical normalizes an identifier for case-insensitive matching.
// The normalization pipeline:
// 1. Strip separators (_, -, spaces).
// 2. Case-fold.
func Canonical(s string) string {
	return folder.String(stripSeparators(s))
}

// CamelCase converts a dashed or underscored name to lower camel case.
// Examples:
//   - "gold-customer" -> "goldCustomer"
//   - "work_id" -> "workId"
//   - "age" -> "age"
func CamelCase(s string) string {
	if !strings.ContainsFunc(s, isSeparator) {
		return s
	}

	var b strings.Builder

	b.Grow(len(s))

	upperNext := false

	for _, r := range s {
		if isSeparator(r) {
			upperNext = b.Len() > 0

			continue
		}

		if upperNext {
			r = unicode.ToUpper(r)
			upperNext = false
		}

		b.WriteRune(r)
	}

	return b.String()
}

// KebabCase renders a Go identifier the way property keys usually spell it.
// Examples:
//   - "GoldCustomer" -> "gold-customer"
//   - "SMTPHost" -> "smtp-host"
func KebabCase(s string) string {
	return strings.Join(TokenizeIdent(s), "-")
}

// Matches reports whether a path segment names the Go member goName.
//
// In case-sensitive mode the segment is camel-cased first and must equal the
// member name as is, with its first rune lowered, or with a leading
// initialism lowered ("ID" -> "id", "SMTPHost" -> "smtpHost"). With
// ignoreCase both sides are compared in canonical form.
func Matches(segment, goName string, ignoreCase bool) bool {
	if ignoreCase {
		return Canonical(segment) == Canonical(goName)
	}

	camel := CamelCase(segment)

	return camel == goName || camel == lowerFirst(goName) || camel == lowerInitialism(goName)
}

// TrimPrefix strips prefix from s. With ignoreCase the prefix is compared
// after case folding; separators are significant either way.
func TrimPrefix(s, prefix string, ignoreCase bool) (string, bool) {
	if prefix == "" {
		return s, true
	}

	if !ignoreCase {
		if !strings.HasPrefix(s, prefix) {
			return s, false
		}

		return s[len(prefix):], true
	}

	// walk rune by rune so multi-byte folds do not split the remainder
	rest := s
	for _, pr := range prefix {
		r, size := utf8.DecodeRuneInString(rest)
		if size == 0 || folder.String(string(r)) != folder.String(string(pr)) {
			return s, false
		}

		rest = rest[size:]
	}

	return rest, true
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}

// lowerInitialism lowers a leading run of upper-case runes, keeping the last
// one when it starts the next word.
func lowerInitialism(s string) string {
	runes := []rune(s)

	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}

	if n > 1 && n < len(runes) && unicode.IsLower(runes[n]) {
		n--
	}

	for i := range n {
		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "goldCustomer" -> ["gold", "Customer"]
//   - "SMTPHost" -> ["SMTP", "Host"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)

	// "goldCustomer" -> split before 'C'
	if isUpper && !isPrevUpper && !isSeparator(prevRune) {
		return true
	}

	// "SMTPHost" -> "SMTP" + "Host", split before 'H'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}

// stripSeparators removes common separators from a string.
func stripSeparators(s string) string {
	if !strings.ContainsFunc(s, isSeparator) {
		return s
	}

	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// TokenizeIdent splits an identifier into normalized lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}
