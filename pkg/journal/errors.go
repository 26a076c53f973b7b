/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package journal

import "errors"

var ErrJournalClosed = errors.New("journal is already closed")
