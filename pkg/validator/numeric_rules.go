package validator

import (
	"fmt"
	"math"
)

// MinNum validates that a numeric value is greater than or equal to min.
func MinNum[T Numeric](path string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Violation: Violation{
			Path:    path,
			Code:    CodeOutOfRange,
			Message: fmt.Sprintf("must be at least %v", min),
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to max.
func MaxNum[T Numeric](path string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Violation: Violation{
			Path:    path,
			Code:    CodeOutOfRange,
			Message: fmt.Sprintf("must be at most %v", max),
		},
	}
}

// RangeNum validates that a numeric value lies within [min, max].
func RangeNum[T Numeric](path string, value T, min T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Violation: Violation{
			Path:    path,
			Code:    CodeOutOfRange,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		},
	}
}

// PositiveNum validates that a numeric value is strictly positive.
func PositiveNum[T Numeric](path string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value > 0
		},
		Violation: Violation{
			Path:    path,
			Code:    CodeOutOfRange,
			Message: "must be positive",
		},
	}
}

// NonNegativeNum validates that a numeric value is zero or greater.
func NonNegativeNum[T Numeric](path string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value >= 0
		},
		Violation: Violation{
			Path:    path,
			Code:    CodeOutOfRange,
			Message: "must not be negative",
		},
	}
}

// maxIntFloat is 2^63, the smallest float64 that overflows int64.
const maxIntFloat = float64(math.MaxInt64)

// FitsInInt validates that a float converts to int without overflow.
// Conversion of an out-of-range float64 is implementation-defined, so
// the bound is checked before any field is narrowed to int.
func FitsInInt(path string, value float64) Rule {
	return Rule{
		Check: func() bool {
			return value >= math.MinInt64 && value < maxIntFloat
		},
		Violation: Violation{
			Path:    path,
			Code:    CodeOutOfRange,
			Message: "exceeds the maximum supported integer",
		},
	}
}

// IntegerValue validates that a float carries no fractional part.
// JSON decoding hands every number over as float64, so integer fields
// are checked for integrality rather than decoded as int.
func IntegerValue(path string, value float64) Rule {
	return Rule{
		Check: func() bool {
			return value == math.Trunc(value) && !math.IsInf(value, 0) && !math.IsNaN(value)
		},
		Violation: Violation{
			Path:    path,
			Code:    CodeInvalidFormat,
			Message: "must be an integer",
		},
	}
}
