package auth

import "errors"

// Domain-specific errors for the auth package.
var (
	ErrInvalidCredentials = errors.New("invalid employee id or password")
	ErrNotLoggedIn        = errors.New("not logged in")
)
