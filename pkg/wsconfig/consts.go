/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package wsconfig

import "github.com/voedger/idfspace/pkg/goutils/logger"

const (
	DefaultStorePath = "idfspace.db"
	DefaultLogLevel  = logger.LogLevelInfo
)
