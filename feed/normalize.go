package feed

import "golang.org/x/text/currency"

// normalize canonicalizes an already-valid item. Validation has
// enforced every format, so this step is identity-preserving for
// accepted input: recognized ISO 4217 currency codes are case-folded
// into canonical form, pattern-valid unknown codes pass through
// untouched.
func (it *Item) normalize() {
	it.Price.Currency = canonicalCurrency(it.Price.Currency)
	normalizeMoney(it.CompareAtPrice)
	normalizeMoney(it.SalePrice)
	normalizeMoney(it.ApplicableTaxesFees)
	normalizeMoney(it.ShippingCost)
	for i := range it.Variants {
		normalizeMoney(it.Variants[i].Price)
	}
	for i := range it.GeoPrices {
		it.GeoPrices[i].Price.Currency = canonicalCurrency(it.GeoPrices[i].Price.Currency)
	}
}

func normalizeMoney(m *Money) {
	if m != nil {
		m.Currency = canonicalCurrency(m.Currency)
	}
}

func canonicalCurrency(code string) string {
	if unit, err := currency.ParseISO(code); err == nil {
		return unit.String()
	}
	return code
}
