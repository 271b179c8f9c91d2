// Package describe builds, once per type, the table of members a property
// key can reach: mutators (SetX, X, WithX, exported fields) and accessors
// (GetX, IsX, X(), exported fields), grouped by property name.
//
// Descriptors are cached for the life of the process; building one is the
// only place that walks a type's method set.
package describe
