package utils

import "errors"

// Error kinds surfaced by the engine. Controllers translate them to 400/404;
// nothing in this core is retriable.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)
