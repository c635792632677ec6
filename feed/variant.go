package feed

import (
	"slices"

	"github.com/dmitrymomot/feedgate/pkg/validator"
)

// parseVariant validates one element of the variants array. Member
// violations use relative paths; the caller qualifies them with the
// element's index. variant_id uniqueness across the list is not
// checked; the schema does not require it.
func parseVariant(v any) (Variant, validator.Violations) {
	obj, ok := rawObject(v)
	if !ok {
		return Variant{}, validator.Violations{{
			Code:    validator.CodeInvalidFormat,
			Message: "must be an object",
		}}
	}

	var vr Variant
	var vs validator.Violations

	if raw, present := obj["variant_id"]; !present {
		vs.Add(validator.Missing("variant_id"))
	} else if s, ok := rawString(raw); !ok {
		vs.Add(validator.Violation{Path: "variant_id", Code: validator.CodeInvalidFormat, Message: "must be a string"})
	} else {
		vs.Merge(validator.Apply(validator.RequiredString("variant_id", s)))
		vr.VariantID = s
	}

	if raw, present := obj["attributes"]; present {
		if attrs, avs := parseStringMap(raw); avs.IsEmpty() {
			vr.Attributes = attrs
		} else {
			vs.MergeAt("attributes", avs)
		}
	}

	if raw, present := obj["price"]; present {
		m, mvs := parseMoney(raw)
		if mvs.IsEmpty() {
			vr.Price = &m
		} else {
			vs.MergeAt("price", mvs)
		}
	}

	if raw, present := obj["availability"]; present {
		if s, ok := rawString(raw); !ok {
			vs.Add(validator.Violation{Path: "availability", Code: validator.CodeInvalidFormat, Message: "must be a string"})
		} else if evs := validator.Apply(validator.InListString("availability", s, availabilityValues)); !evs.IsEmpty() {
			vs.Merge(evs)
		} else {
			vr.Availability = Availability(s)
		}
	}

	if raw, present := obj["inventory_quantity"]; present {
		if n, ok := rawNumber(raw); !ok {
			vs.Add(validator.Violation{Path: "inventory_quantity", Code: validator.CodeInvalidFormat, Message: "must be a number"})
		} else if nvs := validator.Apply(
			validator.IntegerValue("inventory_quantity", n),
			validator.NonNegativeNum("inventory_quantity", n),
		); !nvs.IsEmpty() {
			vs.Merge(nvs)
		} else {
			q := int(n)
			vr.InventoryQuantity = &q
		}
	}

	if raw, present := obj["sku"]; present {
		if s, ok := rawString(raw); !ok {
			vs.Add(validator.Violation{Path: "sku", Code: validator.CodeInvalidFormat, Message: "must be a string"})
		} else {
			vr.SKU = s
		}
	}

	if raw, present := obj["barcode"]; present {
		if s, ok := rawString(raw); !ok {
			vs.Add(validator.Violation{Path: "barcode", Code: validator.CodeInvalidFormat, Message: "must be a string"})
		} else {
			vr.Barcode = s
		}
	}

	if raw, present := obj["image_url"]; present {
		if s, ok := rawString(raw); !ok {
			vs.Add(validator.Violation{Path: "image_url", Code: validator.CodeInvalidFormat, Message: "must be a string"})
		} else if uvs := validator.Apply(validator.ValidURL("image_url", s)); !uvs.IsEmpty() {
			vs.Merge(uvs)
		} else {
			vr.ImageURL = s
		}
	}

	return vr, vs
}

// parseStringMap validates a string-to-string mapping. Non-string
// values are reported per key, in sorted key order so reports stay
// deterministic across runs.
func parseStringMap(v any) (map[string]string, validator.Violations) {
	obj, ok := rawObject(v)
	if !ok {
		return nil, validator.Violations{{
			Code:    validator.CodeInvalidFormat,
			Message: "must be a string-to-string mapping",
		}}
	}

	var vs validator.Violations
	out := make(map[string]string, len(obj))
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		s, ok := rawString(obj[k])
		if !ok {
			vs.Add(validator.Violation{Path: k, Code: validator.CodeInvalidFormat, Message: "must be a string"})
			continue
		}
		out[k] = s
	}

	if !vs.IsEmpty() {
		return nil, vs
	}
	return out, nil
}
