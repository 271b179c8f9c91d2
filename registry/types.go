package registry

import (
	"reflect"
	"strings"
)

// TypeID uniquely identifies a named type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "propbind/examples/mail"
	Name    string // e.g., "Configuration"
}

// TypeIDOf returns the identity of t, looking through pointers.
func TypeIDOf(t reflect.Type) TypeID {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return TypeID{PkgPath: t.PkgPath(), Name: t.Name()}
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// matches reports whether a qualified name refers to this type. Accepted
// forms for PkgPath "example.com/acme/support" and Name "Company":
//   - "Company" (name only)
//   - "example.com/acme/support.Company" (full)
//   - "support.Company" (package path suffix)
//   - "acme.support.Company" (dotted package path suffix)
func (t TypeID) matches(qualified string) bool {
	lastDot := strings.LastIndex(qualified, ".")
	if lastDot < 0 {
		return qualified == t.Name
	}

	pkg, name := qualified[:lastDot], qualified[lastDot+1:]
	if pkg == "" || name != t.Name || t.PkgPath == "" {
		return false
	}

	if t.PkgPath == pkg || strings.HasSuffix(t.PkgPath, "/"+pkg) {
		return true
	}

	dotted := strings.ReplaceAll(t.PkgPath, "/", ".")

	return dotted == pkg || strings.HasSuffix(dotted, "."+pkg)
}
