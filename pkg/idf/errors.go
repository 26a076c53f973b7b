/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idf

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSyntax          = errors.New("syntax error")
	ErrEmptyRecord     = errors.New("empty record")
	ErrUnknownObject   = errors.New("unknown schema object")
	ErrTooManyFields   = errors.New("too many fields")
	ErrUnterminated    = errors.New("record is not terminated")
	ErrNotSingleRecord = errors.New("text holds more than one record")
	ErrSave            = errors.New("file can not be saved")
)

func errAt(err error, line int, msg string, args ...any) error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("line %d: %w: %s", line, err, msg)
}

// returns record text shortened for error messages
func brief(text string) string {
	const maxLen = 40
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > maxLen {
		return text[:maxLen] + "..."
	}
	return text
}
