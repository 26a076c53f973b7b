/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package main

import "errors"

var (
	ErrNoSchema     = errors.New("schema is not set, use --idd flag or schema_path of configuration")
	ErrInvalidFiles = errors.New("some files are not valid")
)
