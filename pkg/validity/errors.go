/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package validity

import "errors"

var (
	ErrNoIdd           = errors.New("no schema")
	ErrDataType        = errors.New("wrong field type")
	ErrNumericBound    = errors.New("out of numeric bounds")
	ErrNameConflict    = errors.New("name conflict")
	ErrNullAndRequired = errors.New("required field is null")
	ErrNumberOfFields  = errors.New("number of fields out of range")
	ErrDuplicate       = errors.New("duplicate of unique object")
)

var ErrUnknownLevel = errors.New("unknown strictness level")
