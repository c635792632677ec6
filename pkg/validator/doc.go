// Package validator provides the leaf-level validation rules and the
// violation collector used by the feed schema engine.
//
// Rules are small pure values: each exported helper returns a Rule
// pairing a boolean Check with the path-qualified Violation reported
// when the check fails. Rules are evaluated with Apply, which runs
// every rule and aggregates failures into a Violations slice - there
// is no short-circuiting, so a single pass surfaces every defect.
//
// # Architecture
//
// Each source file groups a family of rules (string_rules.go,
// numeric_rules.go, format_rules.go, money_rules.go, choice_rules.go).
// No rule holds state; the package is stateless and goroutine-safe.
//
// Core building blocks:
//   - Rule       - Check func plus the Violation it produces on failure
//   - Violation  - one path-qualified failure with a closed Code set
//   - Violations - ordered collector; implements error; supports
//     re-pathing of nested composite results via MergeAt and Prefix
//
// # Usage
//
//	vs := validator.Apply(
//	    validator.RequiredString("title", title),
//	    validator.MaxLenString("title", title, 150),
//	    validator.ValidURL("link", link),
//	)
//	if !vs.IsEmpty() {
//	    // every failed rule is present, in rule order
//	}
//
// Violation ordering is append order. Callers that validate a schema
// should apply rules in field declaration order so reports read like
// the schema.
package validator
