/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package workspace

import (
	"github.com/google/uuid"

	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/idf"
	"github.com/voedger/idfspace/pkg/naming"
)

// Replaces workspace record by copy of record.
//
// Records pointing to current point to the replacement after the swap, so
// the replacement must be of the same type or share reference lists with
// current. If keepTargets, every pointer of current is moved to a pointer
// field of the replacement which is empty or names the same target. Other
// pointers of the replacement are resolved by name. Returns the added
// replacement, current is removed. Replacement must be valid at the
// strictness level of workspace. On failure nothing is changed
func (ws *Workspace) Swap(current *Object, replacement *idf.Object, keepTargets bool) (*Object, bool) {
	if current == nil || current.ws != ws || !current.IsMember() {
		logger.Info("records can not be swapped, record is not in workspace")
		return nil, false
	}
	curRefs := current.IddObject().References()
	newRefs := replacement.IddObject().References()
	if current.Type() != replacement.Type() && len(intersectRefs(curRefs, newRefs)) == 0 {
		logger.Info("records can not be swapped,", current.TypeName(), "and", replacement.TypeName(), "have no common reference lists")
		return nil, false
	}

	b := ws.newBatch([]*idf.Object{replacement}, false)
	s := b.items[0]
	c := s.o

	currentName, _ := current.Name()
	newName, named := c.Name()
	sameName := named && newName != "" && naming.Equal(newName, currentName)
	switch {
	case sameName:
		// restored when current is removed
		c.SetName(naming.Unique())
	case named && newName != "" && ws.PotentialNameConflict(newName, c.IddObject()):
		renamed, _ := c.SetName(ws.NextNameForType(c.Type(), false))
		logger.Info("renaming", replacement.BriefDescription(), "to «"+renamed+"» to avoid name conflict")
	}

	sources := ws.links.sourcesOf(current.Handle())
	for _, lk := range sources {
		src := ws.objects[lk.source]
		if lk.source == current.Handle() {
			continue
		}
		if !src.CanBeSource(lk.index, newRefs) {
			logger.Info("records can not be swapped,", src.BriefDescription(), "can not point to", replacement.TypeName(), "from field", lk.index)
			return nil, false
		}
	}

	newFields := c.IddObject().ObjectListFields(c.NumFields())
	if keepTargets {
		for _, i := range ws.links.fieldsOf(current.Handle()) {
			target, _ := ws.links.target(current.Handle(), i)
			if target == current.Handle() {
				continue
			}
			if !ws.keepTarget(s, newFields, target) {
				logger.Info("records can not be swapped,", replacement.BriefDescription(), "can not point to", ws.objects[target].BriefDescription())
				return nil, false
			}
		}
	}

	t := ws.begin()
	added, err := ws.add(b, addOptions{deferValidation: true})
	if err != nil {
		t.end(false)
		return nil, false
	}
	x := added[0]
	for _, lk := range sources {
		if lk.source == current.Handle() {
			continue
		}
		ws.link(lk.source, lk.index, x.Handle())
		ws.emit(EventKind_DataChanged, lk.source, ws.objects[lk.source].Type(), lk.index)
	}
	if ws.order.kind == OrderKind_Direct {
		if pos, ok := ws.order.indexOf(current.Handle()); ok {
			ws.order.move(x.Handle(), pos, ws.journal)
		}
	}
	if !ws.RemoveObject(current.Handle()) {
		t.end(false)
		return nil, false
	}
	if sameName {
		if _, ok := x.SetName(currentName); !ok {
			t.end(false)
			return nil, false
		}
		logger.Info("original name «"+currentName+"» restored after swap of", x.BriefDescription())
	}
	if r := ws.validateAdded([]*Object{x}, false); !r.Valid() {
		logger.Info("records can not be swapped,", r)
		t.end(false)
		return nil, false
	}
	return x, t.end(true)
}

// Finds free pointer field of staged record which is empty or names target
// and can point to it, the field will be linked to target
func (ws *Workspace) keepTarget(s *staged, fields []int, target uuid.UUID) bool {
	targetName := ws.objects[target].NameOrEmpty()
	for _, i := range fields {
		if _, taken := s.links[i]; taken {
			continue
		}
		text, _ := s.o.Value(i)
		if text != "" && !naming.Equal(text, targetName) {
			continue
		}
		f, _ := s.o.IddObject().Field(i)
		if ws.CanBeTarget(target, f.ObjectLists) {
			s.links[i] = target
			return true
		}
	}
	return false
}
