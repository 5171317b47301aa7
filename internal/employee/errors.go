package employee

import "errors"

// Domain-specific errors for the employee package.
var (
	ErrNotFound = errors.New("employee not found")
)
