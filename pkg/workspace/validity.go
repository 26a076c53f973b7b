/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package workspace

import (
	"github.com/voedger/idfspace/pkg/validity"
)

// Returns validity report of workspace at the level: reports of records,
// name conflicts between records sharing reference lists at Draft and
// collection errors at Final. Workspace is not changed
func (ws *Workspace) ValidityReport(level validity.StrictnessLevel) *validity.Report {
	r := validity.NewReport(level)
	if level == validity.None {
		return r
	}
	objects := ws.AllObjects()
	outer := ws.journal == nil
	if outer {
		ws.setProgress(captionValidity, len(objects))
	}
	for i, o := range objects {
		r.Merge(o.ValidityReport(level, false))
		if outer {
			ws.stepProgress(i + 1)
		}
	}

	if level >= validity.Draft {
		for _, group := range ws.NameConflicts(objects) {
			for i, o := range group {
				for j, x := range group {
					if i != j && len(intersectRefs(o.IddObject().References(), x.IddObject().References())) > 0 {
						r.Insert(validity.ObjectError(validity.Kind_NameConflict, o.Handle(), o.IddObject(), o.NameOrEmpty()))
						break
					}
				}
			}
		}
	}

	if level >= validity.Final {
		for _, t := range ws.schema.RequiredObjects() {
			if ws.NumObjectsOfType(t.Type()) < 1 {
				r.Insert(validity.CollectionError(validity.Kind_NullAndRequired, t))
			}
		}
		for _, t := range ws.schema.UniqueObjects() {
			if ws.NumObjectsOfType(t.Type()) > 1 {
				r.Insert(validity.CollectionError(validity.Kind_Duplicate, t))
			}
		}
	}
	return r
}

// Returns is workspace valid at the level
func (ws *Workspace) IsValid(level validity.StrictnessLevel) bool {
	return ws.ValidityReport(level).Valid()
}
