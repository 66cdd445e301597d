package domain

import "errors"

// ErrUnknownAlgorithm is returned by catalog lookups for an identifier that is not registered.
// Engine runs never return it: they fall back to DefaultAlgorithm instead.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// ErrInvalidValues is returned when user supplied values cannot be parsed or are out of range.
var ErrInvalidValues = errors.New("invalid values")

// ErrTooManyElements is returned when an input exceeds the configured element limit.
var ErrTooManyElements = errors.New("too many elements")
