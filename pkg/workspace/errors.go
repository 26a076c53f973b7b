/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package workspace

import "errors"

var (
	ErrUnknownOrderKind = errors.New("unknown order kind")
	ErrNotAdded         = errors.New("records can not be added to workspace")
	ErrInvalid          = errors.New("workspace is not valid")
)
