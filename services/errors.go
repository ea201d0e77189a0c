package services

import (
	"errors"
	"fmt"
)

// ValidationError marks bad caller input (unknown platform, bogus
// timezone). Surfaced to the caller, never retried.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// ErrDeviceNotFound covers both a genuinely unknown token and a token owned
// by someone else, so an unregister call cannot probe for existence.
var ErrDeviceNotFound = errors.New("device not found")
