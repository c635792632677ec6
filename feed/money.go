package feed

import "github.com/dmitrymomot/feedgate/pkg/validator"

// parseMoney validates a raw money object. Member violations use
// relative paths; callers qualify them with MergeAt so the same parser
// serves price, sale_price, shipping_cost, variant prices, and geo
// overrides.
func parseMoney(v any) (Money, validator.Violations) {
	obj, ok := rawObject(v)
	if !ok {
		return Money{}, validator.Violations{{
			Code:    validator.CodeInvalidFormat,
			Message: "must be an object with amount and currency",
		}}
	}

	var m Money
	var vs validator.Violations

	if raw, present := obj["amount"]; !present {
		vs.Add(validator.Missing("amount"))
	} else if s, ok := rawString(raw); !ok {
		vs.Add(validator.Violation{Path: "amount", Code: validator.CodeInvalidFormat, Message: "must be a string"})
	} else {
		vs.Merge(validator.Apply(validator.ValidDecimalAmount("amount", s)))
		m.Amount = s
	}

	if raw, present := obj["currency"]; !present {
		vs.Add(validator.Missing("currency"))
	} else if s, ok := rawString(raw); !ok {
		vs.Add(validator.Violation{Path: "currency", Code: validator.CodeInvalidFormat, Message: "must be a string"})
	} else {
		vs.Merge(validator.Apply(validator.ValidCurrencyCode("currency", s)))
		m.Currency = s
	}

	return m, vs
}
