// Package path splits dotted property keys into segments.
//
// A key like "bar.work.name" becomes three segments; the last one is the
// leaf, the others are intermediates. Segments may carry a {{placeholder}}
// that is resolved later, so its text is preserved verbatim here.
package path
