package project

import "errors"

// Validation errors for project names.
var (
	ErrNameRequired     = errors.New("please enter a name")
	ErrNameNotCamelCase = errors.New("must be camelCase (e.g., myApp or coolProject): start with a lowercase letter, no spaces, hyphens, or underscores")
)
