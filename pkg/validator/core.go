package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Numeric covers every built-in numeric type usable in range rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Code classifies a violation. The set is closed: every possible
// validation failure maps to one of these values.
type Code string

const (
	CodeMissingRequiredField    Code = "missing_required_field"
	CodeInvalidFormat           Code = "invalid_format"
	CodeOutOfRange              Code = "out_of_range"
	CodeInvalidEnumValue        Code = "invalid_enum_value"
	CodeCrossFieldInconsistency Code = "cross_field_inconsistency"
)

// Violation is a single path-qualified reason a record failed
// validation. Paths use dots for object members and bracketed indexes
// for array elements (variants[1].inventory_quantity).
type Violation struct {
	Path    string `json:"path"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// Violations is an ordered collection of violations. Order is
// append order; callers append fields in schema declaration order so
// the final report reads top to bottom like the schema itself.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, v := range vs {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Path, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (vs *Violations) Add(v Violation) {
	*vs = append(*vs, v)
}

// Merge appends child violations in order, keeping their paths as-is.
func (vs *Violations) Merge(children Violations) {
	*vs = append(*vs, children...)
}

// MergeAt appends child violations with each path prefixed by the
// parent path, so composite validators can report members relative to
// themselves and still end up fully qualified in the final report.
func (vs *Violations) MergeAt(parent string, children Violations) {
	for _, v := range children {
		v.Path = JoinPath(parent, v.Path)
		*vs = append(*vs, v)
	}
}

// Prefix returns a copy with every path prefixed by parent.
func (vs Violations) Prefix(parent string) Violations {
	if len(vs) == 0 {
		return nil
	}
	out := make(Violations, len(vs))
	for i, v := range vs {
		v.Path = JoinPath(parent, v.Path)
		out[i] = v
	}
	return out
}

func (vs Violations) Has(path string) bool {
	for _, v := range vs {
		if v.Path == path {
			return true
		}
	}
	return false
}

// At returns every violation recorded for the given path. A path may
// carry more than one violation; none are dropped or deduplicated.
func (vs Violations) At(path string) []Violation {
	var out []Violation
	for _, v := range vs {
		if v.Path == path {
			out = append(out, v)
		}
	}
	return out
}

func (vs Violations) Paths() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, v := range vs {
		if !seen[v.Path] {
			paths = append(paths, v.Path)
			seen[v.Path] = true
		}
	}
	return paths
}

func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}

// JoinPath joins a parent path with a relative child path. An empty
// child refers to the parent itself; a child starting with a bracket
// is an index into the parent.
func JoinPath(parent, child string) string {
	switch {
	case parent == "":
		return child
	case child == "":
		return parent
	case strings.HasPrefix(child, "["):
		return parent + child
	default:
		return parent + "." + child
	}
}

// Rule pairs a pure check with the violation reported when it fails.
type Rule struct {
	Check     func() bool
	Violation Violation
}

// Apply evaluates every rule and collects the violations of those that
// failed. It never stops at the first failure.
func Apply(rules ...Rule) Violations {
	var vs Violations

	for _, rule := range rules {
		if !rule.Check() {
			vs = append(vs, rule.Violation)
		}
	}

	return vs
}

// Missing builds the violation for an absent required field.
func Missing(path string) Violation {
	return Violation{
		Path:    path,
		Code:    CodeMissingRequiredField,
		Message: "required field is missing",
	}
}

// ExtractViolations extracts Violations from an error.
func ExtractViolations(err error) Violations {
	if err == nil {
		return nil
	}

	var vs Violations
	if errors.As(err, &vs) {
		return vs
	}

	return nil
}

func IsViolations(err error) bool {
	if err == nil {
		return false
	}

	var vs Violations
	return errors.As(err, &vs)
}
