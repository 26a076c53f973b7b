/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package workspace

import (
	"strings"

	"github.com/google/uuid"

	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/idd"
	"github.com/voedger/idfspace/pkg/idf"
	"github.com/voedger/idfspace/pkg/naming"
	"github.com/voedger/idfspace/pkg/validity"
)

// Owner of workspace records, implements idf.IOwner
type owner struct {
	ws *Workspace
}

func objectListField(o *idf.Object, index int) (*idd.Field, bool) {
	f, ok := o.IddObject().Field(index)
	if !ok || !f.IsObjectList() {
		return nil, false
	}
	return f, true
}

func (ow *owner) ManagedField(o *idf.Object, index int, withHandles bool) (string, bool) {
	if _, ok := objectListField(o, index); !ok {
		return "", false
	}
	h, ok := ow.ws.links.target(o.Handle(), index)
	if !ok {
		raw, _ := o.RawField(index)
		return idf.Decode(raw), true
	}
	if !withHandles {
		if n, ok := ow.ws.objects[h].Name(); ok && n != "" {
			return n, true
		}
	}
	return idf.HandleString(h), true
}

func (ow *owner) SetManagedField(o *idf.Object, index int, value string) (handled, ok bool) {
	f, isPointer := objectListField(o, index)
	if !isPointer {
		return false, false
	}
	ws := ow.ws
	if value == "" {
		ws.unlink(o.Handle(), index)
		o.SetRawField(index, "")
		return true, true
	}
	target, found := ws.resolve(value, f.ObjectLists)
	if !found {
		if logger.IsVerbose() {
			logger.Verbose("field", index, "of", o.BriefDescription(), "can not point to «"+value+"»")
		}
		return true, false
	}
	ws.link(o.Handle(), index, target)
	o.SetRawField(index, "")
	return true, true
}

func (ow *owner) FieldsTruncated(o *idf.Object, n int) {
	for _, i := range ow.ws.links.fieldsOf(o.Handle()) {
		if i >= n {
			ow.ws.unlink(o.Handle(), i)
		}
	}
}

func (ow *owner) ApproveName(o *idf.Object, name string) (string, bool) {
	ws := ow.ws
	i, _ := o.IddObject().NameFieldIndex()
	f, _ := o.IddObject().Field(i)
	if name == "" {
		return "", ws.level < validity.Draft || !f.Required
	}
	if f.Required && ws.nameTaken(o.Handle(), o.IddObject(), name) {
		newName := ws.NextName(name, ws.fillNameGaps)
		if o.IddObject().UnderscoreName() {
			newName = strings.ReplaceAll(newName, " ", "_")
		}
		logger.Info("name «"+name+"» of", o.TypeName(), "is taken, «"+newName+"» is used")
		return newName, true
	}
	return name, true
}

func (ow *owner) Approve(o *idf.Object, diffs []idf.Diff, resized bool) bool {
	level := ow.ws.level
	if level == validity.None {
		return true
	}
	for _, d := range diffs {
		if errs := o.FieldDataErrors(d.Index, level); len(errs) > 0 {
			if logger.IsVerbose() {
				logger.Verbose("change of", o.BriefDescription(), "is not valid at", level, "level:", errs[0])
			}
			return false
		}
	}
	if resized {
		if r := o.ValidityReport(level, false); !r.Valid() {
			if logger.IsVerbose() {
				logger.Verbose("resized", o.BriefDescription(), "is not valid:", r)
			}
			return false
		}
	}
	return true
}

func (ow *owner) Checkpoint(*idf.Object) idf.ICheckpoint {
	return checkpoint{ow.ws.begin()}
}

func (ow *owner) Commit(o *idf.Object, diffs []idf.Diff) {
	nameIndex, hasName := o.IddObject().NameFieldIndex()
	seen := make(map[int]struct{}, len(diffs))
	for _, d := range diffs {
		if _, ok := seen[d.Index]; ok {
			continue
		}
		seen[d.Index] = struct{}{}
		if hasName && d.Index == nameIndex {
			ow.ws.emit(EventKind_NameChanged, o.Handle(), o.Type(), -1)
		} else {
			ow.ws.emit(EventKind_DataChanged, o.Handle(), o.Type(), d.Index)
		}
	}
}

func (ow *owner) UniquelyIdentifiableByName(o *idf.Object) bool {
	name, ok := o.Name()
	if !ok || name == "" {
		return true
	}
	return !ow.ws.nameTaken(o.Handle(), o.IddObject(), name)
}

// Returns is name used by other record registered in any reference list of
// the schema object
func (ws *Workspace) nameTaken(h uuid.UUID, iddObject *idd.Object, name string) bool {
	refs := iddObject.References()
	if len(refs) == 0 {
		return false
	}
	for _, x := range ws.ObjectsByReference(refs...) {
		if x.Handle() == h {
			continue
		}
		if n, ok := x.Name(); ok && naming.Equal(n, name) {
			return true
		}
	}
	return false
}

// Resolves pointer text: handle of workspace record or name of record
// registered in one of reference lists
func (ws *Workspace) resolve(value string, refs []string) (uuid.UUID, bool) {
	if h, ok := idf.ParseHandle(value); ok && ws.IsMember(h) {
		if ws.level > validity.Minimal && !ws.refs.inAny(h, refs) {
			return uuid.Nil, false
		}
		return h, true
	}
	if t, ok := ws.ObjectByNameAndReference(value, refs); ok {
		return t.Handle(), true
	}
	return uuid.Nil, false
}

// Links pointer field to target and forwards reference lists of the field
func (ws *Workspace) link(source uuid.UUID, index int, target uuid.UUID) {
	if t, ok := ws.links.target(source, index); ok && t == target {
		return
	}
	ws.unlink(source, index)
	ws.links.set(source, index, target, ws.journal)
	for _, r := range ws.objects[source].IddObject().ForwardedReferences(index) {
		ws.refs.forward(r, target, ws.journal)
	}
}

// Unlinks pointer field, withdraws forwarded reference lists
func (ws *Workspace) unlink(source uuid.UUID, index int) (uuid.UUID, bool) {
	t, ok := ws.links.clear(source, index, ws.journal)
	if ok {
		if s, exists := ws.objects[source]; exists {
			for _, r := range s.IddObject().ForwardedReferences(index) {
				ws.refs.withdraw(r, t, ws.journal)
			}
		}
	}
	return t, ok
}
