package http

import "errors"

var (
	errWrongBody = errors.New("message is required")
)
