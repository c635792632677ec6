package feed

import "github.com/dmitrymomot/feedgate/pkg/validator"

// parseGeoPrice validates one geo_price element: a region with a price
// override. Duplicate regions across elements are not rejected.
func parseGeoPrice(v any) (GeoPrice, validator.Violations) {
	obj, ok := rawObject(v)
	if !ok {
		return GeoPrice{}, validator.Violations{{
			Code:    validator.CodeInvalidFormat,
			Message: "must be an object with region and price",
		}}
	}

	var gp GeoPrice
	var vs validator.Violations

	if raw, present := obj["region"]; !present {
		vs.Add(validator.Missing("region"))
	} else if s, ok := rawString(raw); !ok {
		vs.Add(validator.Violation{Path: "region", Code: validator.CodeInvalidFormat, Message: "must be a string"})
	} else {
		vs.Merge(validator.Apply(validator.RequiredString("region", s)))
		gp.Region = s
	}

	if raw, present := obj["price"]; !present {
		vs.Add(validator.Missing("price"))
	} else {
		m, mvs := parseMoney(raw)
		vs.MergeAt("price", mvs)
		gp.Price = m
	}

	return gp, vs
}

// parseGeoAvailability validates one geo_availability element: a
// region with an availability override.
func parseGeoAvailability(v any) (GeoAvailability, validator.Violations) {
	obj, ok := rawObject(v)
	if !ok {
		return GeoAvailability{}, validator.Violations{{
			Code:    validator.CodeInvalidFormat,
			Message: "must be an object with region and availability",
		}}
	}

	var ga GeoAvailability
	var vs validator.Violations

	if raw, present := obj["region"]; !present {
		vs.Add(validator.Missing("region"))
	} else if s, ok := rawString(raw); !ok {
		vs.Add(validator.Violation{Path: "region", Code: validator.CodeInvalidFormat, Message: "must be a string"})
	} else {
		vs.Merge(validator.Apply(validator.RequiredString("region", s)))
		ga.Region = s
	}

	if raw, present := obj["availability"]; !present {
		vs.Add(validator.Missing("availability"))
	} else if s, ok := rawString(raw); !ok {
		vs.Add(validator.Violation{Path: "availability", Code: validator.CodeInvalidFormat, Message: "must be a string"})
	} else if evs := validator.Apply(validator.InListString("availability", s, availabilityValues)); !evs.IsEmpty() {
		vs.Merge(evs)
	} else {
		ga.Availability = Availability(s)
	}

	return ga, vs
}
