/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package workspace

import (
	"sort"

	"github.com/google/uuid"

	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/idf"
	"github.com/voedger/idfspace/pkg/validity"
)

// Removes record. Pointers to the record are nulled. At Final level the
// removal is undone and false is returned if workspace becomes invalid
func (ws *Workspace) RemoveObject(h uuid.UUID) bool {
	return ws.RemoveObjects([]uuid.UUID{h})
}

// Removes records as one operation, see RemoveObject. Fails if any handle
// is not a workspace record
func (ws *Workspace) RemoveObjects(handles []uuid.UUID) bool {
	for _, h := range handles {
		if !ws.IsMember(h) {
			return false
		}
	}
	t := ws.begin()
	var nulled []link
	removed := make([]*Object, 0, len(handles))
	for _, h := range handles {
		o, ok := ws.objects[h]
		if !ok {
			// duplicated handle
			continue
		}
		nulled = append(nulled, ws.nominallyRemove(o)...)
		removed = append(removed, o)
	}

	if ws.level == validity.Final {
		if r := ws.ValidityReport(ws.level); !r.Valid() {
			logger.Info("records can not be removed,", r)
			return t.end(false)
		}
	}

	for _, o := range removed {
		ws.emit(EventKind_Removed, o.Handle(), o.Type(), -1)
	}
	for _, lk := range nulled {
		if s, ok := ws.objects[lk.source]; ok {
			ws.emit(EventKind_DataChanged, lk.source, s.Type(), lk.index)
		}
	}
	return t.end(true)
}

// Removes record from identity map and indexes, returns nulled pointers of
// other records. Removed record keeps target names as plain text
func (ws *Workspace) nominallyRemove(o *Object) []link {
	h := o.Handle()
	sources := ws.links.sourcesOf(h)
	sort.Slice(sources, func(i, j int) bool {
		if sources[i].source != sources[j].source {
			return ws.objects[sources[i].source].seq < ws.objects[sources[j].source].seq
		}
		return sources[i].index < sources[j].index
	})
	for _, lk := range sources {
		ws.unlink(lk.source, lk.index)
	}

	for _, i := range ws.links.fieldsOf(h) {
		text, _ := o.Value(i)
		index := i
		o.SetRawField(index, idf.Encode(text))
		ws.journal.Push(func() { o.SetRawField(index, "") })
		ws.unlink(h, index)
	}

	ws.refs.unregister(h, o.IddObject(), ws.journal)
	ws.order.remove(h, ws.journal)
	delete(ws.objects, h)
	o.Detach()
	ws.order.invalidate()
	ws.journal.Push(func() {
		ws.objects[h] = o
		o.Reattach(ws.owner)
		ws.order.invalidate()
	})
	if logger.IsVerbose() {
		logger.Verbose(o.BriefDescription(), "removed, pointers nulled:", len(sources))
	}
	return sources
}
