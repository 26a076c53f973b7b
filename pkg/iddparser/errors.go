/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package iddparser

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

var ErrSyntaxError = errors.New("syntax error")

var ErrPropertyValueError = errors.New("invalid property value")

func errProperty(pos lexer.Position, prop, value string) error {
	return fmt.Errorf("%s: %w: \\%s «%s»", pos, ErrPropertyValueError, prop, value)
}
