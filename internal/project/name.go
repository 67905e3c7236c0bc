package project

import (
	"regexp"
	"strings"
)

// Examples lists names shown to the user after a rejected attempt.
var Examples = []string{"myApp", "coolProject", "reactNativeApp"}

// camelCaseRegex matches a lowercase ASCII letter followed by ASCII letters or digits.
var camelCaseRegex = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)

// Name is a project name that passed ValidateName.
type Name string

// String implements fmt.Stringer.
func (n Name) String() string { return string(n) }

// IsCamelCase reports whether s is an acceptable project name.
func IsCamelCase(s string) bool {
	return camelCaseRegex.MatchString(s) && !strings.ContainsAny(s, " -_")
}

// ValidateName returns nil if s is an acceptable project name.
// The returned error is suitable for showing to the user as-is.
func ValidateName(s string) error {
	if s == "" {
		return ErrNameRequired
	}
	if !IsCamelCase(s) {
		return ErrNameNotCamelCase
	}
	return nil
}

// ParseName validates s and converts it to a Name. Case is preserved.
func ParseName(s string) (Name, error) {
	if err := ValidateName(s); err != nil {
		return "", err
	}
	return Name(s), nil
}
