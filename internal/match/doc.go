// Package match provides the name normalization shared by property lookup
// and option-prefix comparison.
//
// Key functions:
//   - Canonical: case-folds and strips separators ("gold-Customer" -> "goldcustomer")
//   - CamelCase: turns dashed or underscored names into lower camel case
//   - Matches: compares a path segment against a Go member name
//   - TrimPrefix: strips an option prefix, optionally ignoring case
package match
