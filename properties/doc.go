// Package properties provides the property sources consulted by placeholder
// resolution and #property: references, plus loaders that turn YAML, TOML
// and JSON documents into flat dotted-key maps ready for binding.
//
// Sources compose: a Chain asks each source in order and returns the first
// hit, so initial properties can shadow environment or file values.
//
//	src := properties.Chain{
//	    properties.Map{"companyName": "Acme"},
//	    properties.Env{Prefix: "APP_"},
//	}
package properties
