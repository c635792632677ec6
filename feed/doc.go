// Package feed implements the schema validation and normalization
// engine for merchant product-catalog records.
//
// A record arrives as an untyped mapping (parsed JSON or YAML) and
// passes once through ValidateItem, which dispatches every declared
// field to a leaf or composite validator, applies the cross-field
// checks, and returns either a normalized Item or the complete ordered
// list of path-qualified violations. Validation failure is an expected
// outcome carried as data, never an error condition: the engine does
// not recover, clamp, or silently fix a value, and it never panics on
// malformed input.
//
// The engine holds no mutable state and performs no I/O; every call is
// a pure function of its input, safe to invoke from any number of
// goroutines. ValidateBatch builds on that to validate a whole feed in
// parallel while keeping results in input order.
package feed
