// Package registry provides the collaborators behind reference directives:
//
//   - Registry: named and by-type bean lookup (#bean:, #type:, #autowired)
//   - TypeResolver: maps a qualified type name to a reflect.Type (#class:, #type:)
//   - Injector: constructs new instances of a type (#class:)
//
// Simple implements Registry and TypeResolver in memory; DefaultInjector
// allocates zero values or calls registered factories.
package registry
