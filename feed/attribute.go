package feed

import "github.com/dmitrymomot/feedgate/pkg/validator"

// parseCustomAttribute validates one custom_attributes element.
// Duplicate names across the list are allowed; the schema leaves the
// pairs unconstrained beyond their shape.
func parseCustomAttribute(v any) (CustomAttribute, validator.Violations) {
	obj, ok := rawObject(v)
	if !ok {
		return CustomAttribute{}, validator.Violations{{
			Code:    validator.CodeInvalidFormat,
			Message: "must be an object with name and value",
		}}
	}

	var ca CustomAttribute
	var vs validator.Violations

	if raw, present := obj["name"]; !present {
		vs.Add(validator.Missing("name"))
	} else if s, ok := rawString(raw); !ok {
		vs.Add(validator.Violation{Path: "name", Code: validator.CodeInvalidFormat, Message: "must be a string"})
	} else {
		vs.Merge(validator.Apply(validator.RequiredString("name", s)))
		ca.Name = s
	}

	if raw, present := obj["value"]; !present {
		vs.Add(validator.Missing("value"))
	} else if s, ok := rawString(raw); !ok {
		vs.Add(validator.Violation{Path: "value", Code: validator.CodeInvalidFormat, Message: "must be a string"})
	} else {
		ca.Value = s
	}

	return ca, vs
}
