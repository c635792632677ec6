package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequiredString validates that a string is not empty after trimming
// whitespace. An empty value on a required field reads the same as a
// missing one, so the violation code matches.
func RequiredString(path, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Violation: Violation{
			Path:    path,
			Code:    CodeMissingRequiredField,
			Message: "required field is missing",
		},
	}
}

// MaxLenString validates that a string does not exceed max characters.
// Lengths count runes, not bytes, so multibyte text is not penalized.
func MaxLenString(path, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Violation: Violation{
			Path:    path,
			Code:    CodeOutOfRange,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}

func MinLenString(path, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Violation: Violation{
			Path:    path,
			Code:    CodeOutOfRange,
			Message: fmt.Sprintf("must be at least %d characters long", min),
		},
	}
}
