// Package diagnostic provides structured per-key reports attached to a bind
// result: why a key was skipped, which member was used, and warnings such as
// a case-insensitive tie-break.
package diagnostic
