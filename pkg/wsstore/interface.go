/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package wsstore

import (
	"time"

	"github.com/voedger/idfspace/pkg/idd"
	"github.com/voedger/idfspace/pkg/workspace"
)

// Store of named workspace snapshots. Snapshot is the IDF text of workspace,
// saving under existing name replaces the snapshot
type IStore interface {
	Put(name string, ws *workspace.Workspace) (Info, error)

	// Loads workspace from snapshot. Returns ErrSnapshotNotFound if there is
	// no snapshot with the name
	Get(name string, schema idd.ISchema, opts ...workspace.Option) (*workspace.Workspace, error)

	// Returns IDF text of snapshot
	Text(name string) ([]byte, error)

	// Returns infos of snapshots sorted by name
	List() ([]Info, error)

	// Deletes snapshot, returns false if there is no snapshot with the name
	Delete(name string) (bool, error)

	Close() error
}

// Description of snapshot
type Info struct {
	Name       string
	SavedAt    time.Time
	NumObjects int
	Version    string
}
