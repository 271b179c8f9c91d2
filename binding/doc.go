// Package binding sets values on an object graph from flat, dotted property
// keys.
//
// A key such as "bar.work.name" is split into segments. Every segment but
// the last names a nested object that is read through its accessor and,
// when unset, created and assigned through its mutator. The last segment
// names the member that receives the value. Values may be placeholders
// ("{{companyName}}") resolved against a property source, or reference
// directives ("#bean:myWork", "#type:acme.Company", "#class:acme.Company",
// "#autowired", "#property:name") resolved through the Runtime.
//
// Mutators are looked up per segment in the order SetName(v), Name(v),
// WithName(v), then the exported field Name. See package internal/describe
// for the member table built once per type.
//
// Bind and BindProperty mutate the caller's map, removing every key that was
// bound. Binder.Apply reports the same outcome as a Result without touching
// the input.
package binding
