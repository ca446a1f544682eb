package util

import (
	"fmt"
	"regexp"
	"strings"
)

// mobilePattern matches a 10-digit Indian mobile number, optionally
// prefixed with +91.
var mobilePattern = regexp.MustCompile(`^(\+91)?[6-9][0-9]{9}$`)

// ValidateMobile checks that a mobile number is a plausible Indian
// mobile: 10 digits starting with 6-9, with an optional +91 prefix.
// Spaces and hyphens are ignored.
func ValidateMobile(mobile string) error {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(mobile))
	if cleaned == "" {
		return fmt.Errorf("mobile number is required")
	}
	if !mobilePattern.MatchString(cleaned) {
		return fmt.Errorf("mobile number %q is not a valid 10-digit Indian mobile", mobile)
	}
	return nil
}

// ValidateRequired checks that a field value is non-blank.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// ValidateURL checks that a value looks like an absolute http(s) URL.
func ValidateURL(field, value string) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	if !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") {
		return fmt.Errorf("%s must start with http:// or https://", field)
	}
	return nil
}
