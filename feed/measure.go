package feed

import "github.com/dmitrymomot/feedgate/pkg/validator"

// parseDimension validates a unit-carrying length measure. The allowed
// unit set differs between general dimensions and shipping dimensions,
// so it is a parameter.
func parseDimension(v any, units []string) (Dimension, validator.Violations) {
	obj, ok := rawObject(v)
	if !ok {
		return Dimension{}, validator.Violations{{
			Code:    validator.CodeInvalidFormat,
			Message: "must be an object with value and unit",
		}}
	}

	var d Dimension
	var vs validator.Violations

	if raw, present := obj["value"]; !present {
		vs.Add(validator.Missing("value"))
	} else if n, ok := rawNumber(raw); !ok {
		vs.Add(validator.Violation{Path: "value", Code: validator.CodeInvalidFormat, Message: "must be a number"})
	} else {
		vs.Merge(validator.Apply(validator.PositiveNum("value", n)))
		d.Value = n
	}

	if raw, present := obj["unit"]; !present {
		vs.Add(validator.Missing("unit"))
	} else if s, ok := rawString(raw); !ok {
		vs.Add(validator.Violation{Path: "unit", Code: validator.CodeInvalidFormat, Message: "must be a string"})
	} else {
		vs.Merge(validator.Apply(validator.InListString("unit", s, units)))
		d.Unit = s
	}

	return d, vs
}

// parseWeight validates a unit-carrying mass measure.
func parseWeight(v any) (Weight, validator.Violations) {
	obj, ok := rawObject(v)
	if !ok {
		return Weight{}, validator.Violations{{
			Code:    validator.CodeInvalidFormat,
			Message: "must be an object with value and unit",
		}}
	}

	var w Weight
	var vs validator.Violations

	if raw, present := obj["value"]; !present {
		vs.Add(validator.Missing("value"))
	} else if n, ok := rawNumber(raw); !ok {
		vs.Add(validator.Violation{Path: "value", Code: validator.CodeInvalidFormat, Message: "must be a number"})
	} else {
		vs.Merge(validator.Apply(validator.PositiveNum("value", n)))
		w.Value = n
	}

	if raw, present := obj["unit"]; !present {
		vs.Add(validator.Missing("unit"))
	} else if s, ok := rawString(raw); !ok {
		vs.Add(validator.Violation{Path: "unit", Code: validator.CodeInvalidFormat, Message: "must be a string"})
	} else {
		vs.Merge(validator.Apply(validator.InListString("unit", s, weightUnits)))
		w.Unit = s
	}

	return w, vs
}
