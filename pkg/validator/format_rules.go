package validator

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

var (
	// 2-letter uppercase country code (ISO 3166-1 alpha-2 shape)
	countryCodeRegex = regexp.MustCompile(`^[A-Z]{2}$`)
)

// ValidURL validates that a string is an absolute URL with a scheme
// and a host.
func ValidURL(path, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}

			return u.Scheme != "" && u.Host != ""
		},
		Violation: Violation{
			Path:    path,
			Code:    CodeInvalidFormat,
			Message: "must be a valid URL",
		},
	}
}

// ValidDateTime validates that a string is an ISO-8601 datetime in the
// RFC 3339 profile (the form product feeds carry, e.g.
// 2025-06-01T00:00:00Z).
func ValidDateTime(path, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := time.Parse(time.RFC3339, value)
			return err == nil
		},
		Violation: Violation{
			Path:    path,
			Code:    CodeInvalidFormat,
			Message: "must be an ISO-8601 datetime",
		},
	}
}

// MatchesPattern validates a string against a compiled regex. The hint
// describes the expected shape in the violation message.
func MatchesPattern(path, value string, pattern *regexp.Regexp, hint string) Rule {
	return Rule{
		Check: func() bool {
			return pattern.MatchString(value)
		},
		Violation: Violation{
			Path:    path,
			Code:    CodeInvalidFormat,
			Message: fmt.Sprintf("must be %s", hint),
		},
	}
}

// ValidCountryCode validates a 2-letter uppercase country code.
func ValidCountryCode(path, value string) Rule {
	return Rule{
		Check: func() bool {
			return countryCodeRegex.MatchString(value)
		},
		Violation: Violation{
			Path:    path,
			Code:    CodeInvalidFormat,
			Message: "must be a 2-letter uppercase country code",
		},
	}
}
