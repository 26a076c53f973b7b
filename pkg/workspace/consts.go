/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package workspace

import "github.com/voedger/idfspace/pkg/validity"

const (
	captionAdding   = "Adding Objects"
	captionValidity = "Checking Validity"
)

const DefaultStrictness = validity.Draft

// Reference list every record belongs to
const allObjectsReference = "AllObjects"
