/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package wsstore

import "errors"

var (
	ErrBucketNotFound   = errors.New("bucket not found")
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrEmptyName        = errors.New("empty snapshot name")
	ErrCorruptedInfo    = errors.New("corrupted snapshot info")
)
