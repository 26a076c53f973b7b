/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idd

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrMissedError = errors.New("missed")

func ErrMissed(msg string, args ...any) error {
	return EnrichError(ErrMissedError, msg, args...)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

var ErrAlreadyExistsError = errors.New("already exists")

func ErrAlreadyExists(msg string, args ...any) error {
	return EnrichError(ErrAlreadyExistsError, msg, args...)
}

var ErrNotFoundError = errors.New("not found")

func ErrNotFound(msg string, args ...any) error {
	return EnrichError(ErrNotFoundError, msg, args...)
}

func ErrObjectNotFound(name string) error {
	return ErrNotFound("object «%s»", name)
}

var ErrOutOfBoundsError = errors.New("out of bounds")

func ErrOutOfBounds(msg string, args ...any) error {
	return EnrichError(ErrOutOfBoundsError, msg, args...)
}

var ErrTooManyError = errors.New("too many")

func ErrTooMany(msg string, args ...any) error {
	return EnrichError(ErrTooManyError, msg, args...)
}
