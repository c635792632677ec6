package validator

import "regexp"

var (
	// Non-negative decimal string with at most two fractional digits.
	decimalAmountRegex = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

	// 3 uppercase letters. The schema declares the pattern only; it
	// deliberately does not reject codes outside ISO 4217.
	currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)
)

// ValidDecimalAmount validates a money amount given as a decimal
// string: non-negative, at most two fractional digits.
func ValidDecimalAmount(path, value string) Rule {
	return Rule{
		Check: func() bool {
			return decimalAmountRegex.MatchString(value)
		},
		Violation: Violation{
			Path:    path,
			Code:    CodeInvalidFormat,
			Message: "must be a non-negative decimal with at most 2 fractional digits",
		},
	}
}

// ValidCurrencyCode validates a 3-letter uppercase currency code.
// Lowercase input is rejected, not upper-cased; canonicalization of
// accepted codes happens after validation.
func ValidCurrencyCode(path, value string) Rule {
	return Rule{
		Check: func() bool {
			return currencyCodeRegex.MatchString(value)
		},
		Violation: Violation{
			Path:    path,
			Code:    CodeInvalidFormat,
			Message: "must be a 3-letter uppercase currency code",
		},
	}
}
