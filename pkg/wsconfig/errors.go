/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package wsconfig

import "errors"

var (
	ErrConfig      = errors.New("invalid configuration")
	ErrUnknownType = errors.New("unknown object type")
)
