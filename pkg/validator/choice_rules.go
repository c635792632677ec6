package validator

import (
	"fmt"
	"strings"
)

// InList validates that a value is one of the allowed values.
func InList[T comparable](path string, value T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			for _, allowed := range allowedValues {
				if value == allowed {
					return true
				}
			}
			return false
		},
		Violation: Violation{
			Path:    path,
			Code:    CodeInvalidEnumValue,
			Message: fmt.Sprintf("must be one of: %v", allowedValues),
		},
	}
}

// InListString validates that a string is one of the allowed values,
// case-sensitively. The feed schema declares exact lowercase enum
// literals, so "In_Stock" is as invalid as "unknown".
func InListString(path, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			for _, allowed := range allowedValues {
				if value == allowed {
					return true
				}
			}
			return false
		},
		Violation: Violation{
			Path:    path,
			Code:    CodeInvalidEnumValue,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(allowedValues, ", ")),
		},
	}
}

// OneOf is a semantic alias for InList.
func OneOf[T comparable](path string, value T, options []T) Rule {
	return InList(path, value, options)
}

func OneOfString(path, value string, options []string) Rule {
	return InListString(path, value, options)
}
