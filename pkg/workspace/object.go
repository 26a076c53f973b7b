/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package workspace

import (
	"sort"

	"github.com/google/uuid"

	"github.com/voedger/idfspace/pkg/idf"
)

// Record owned by workspace.
//
// Record methods are promoted from idf.Object. Pointer fields read as the
// current names of their targets, setting them links to the named record
type Object struct {
	*idf.Object
	ws *Workspace

	// order of addition
	seq uint64
}

func (o *Object) Workspace() *Workspace { return o.ws }

// Returns is record still in its workspace
func (o *Object) IsMember() bool {
	return o.State() == idf.State_Owned && o.ws.IsMember(o.Handle())
}

// Returns record pointed by field
func (o *Object) Target(index int) (*Object, bool) {
	h, ok := o.ws.links.target(o.Handle(), index)
	if !ok {
		return nil, false
	}
	t, ok := o.ws.objects[h]
	return t, ok
}

// Returns records pointed by record, each once, in field order
func (o *Object) Targets() []*Object {
	var res []*Object
	seen := make(map[uuid.UUID]struct{})
	for _, i := range o.ws.links.fieldsOf(o.Handle()) {
		h, _ := o.ws.links.target(o.Handle(), i)
		if _, ok := seen[h]; !ok {
			seen[h] = struct{}{}
			res = append(res, o.ws.objects[h])
		}
	}
	return res
}

// Returns records pointing to record, each once, in order of addition
func (o *Object) Sources() []*Object {
	var hh []uuid.UUID
	seen := make(map[uuid.UUID]struct{})
	for _, lk := range o.ws.links.sourcesOf(o.Handle()) {
		if _, ok := seen[lk.source]; !ok {
			seen[lk.source] = struct{}{}
			hh = append(hh, lk.source)
		}
	}
	return o.ws.objectsOf(o.ws.bySeq(hh))
}

// Returns indexes of fields pointing to target
func (o *Object) SourceIndices(target uuid.UUID) []int {
	var res []int
	for _, i := range o.ws.links.fieldsOf(o.Handle()) {
		if h, _ := o.ws.links.target(o.Handle(), i); h == target {
			res = append(res, i)
		}
	}
	sort.Ints(res)
	return res
}

// Returns indexes of present pointer fields
func (o *Object) ObjectListFields() []int {
	return o.IddObject().ObjectListFields(o.NumFields())
}

// Points field to target, uuid.Nil nulls the pointer. Fails if target is not
// in workspace or field can not point to target
func (o *Object) SetPointer(index int, target uuid.UUID) bool {
	if target == uuid.Nil {
		return o.SetString(index, "")
	}
	if !o.ws.IsMember(target) {
		return false
	}
	return o.SetString(index, idf.HandleString(target))
}

// Returns can field point to records registered in any of reference lists
func (o *Object) CanBeSource(index int, refs []string) bool {
	f, ok := o.IddObject().Field(index)
	if !ok || !f.IsObjectList() {
		return false
	}
	return len(intersectRefs(f.ObjectLists, refs)) > 0 || containsRef(f.ObjectLists, allObjectsReference)
}

// Returns is record name unique among records it may be confused with
func (o *Object) UniquelyIdentifiableByName() bool {
	return o.ws.owner.UniquelyIdentifiableByName(o.Object)
}

// Removes record from workspace, see Workspace.RemoveObject
func (o *Object) Remove() bool {
	return o.ws.RemoveObject(o.Handle())
}
