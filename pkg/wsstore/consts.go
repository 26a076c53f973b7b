/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package wsstore

import "time"

const (
	textBucketName = "text"
	infoBucketName = "info"
	openTimeout    = time.Second
	fileMode       = 0o600
)

// saved at, number of records
const infoHeaderSize = 8 + 4
