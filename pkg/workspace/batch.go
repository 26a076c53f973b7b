/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package workspace

import (
	"github.com/google/uuid"

	"github.com/voedger/idfspace/pkg/idf"
	"github.com/voedger/idfspace/pkg/naming"
)

// Record of batch being added
type staged struct {
	// unbound copy of the input record
	o *idf.Object

	// existing record the input is replaced by, uuid.Nil for new records
	existing uuid.UUID

	// reference lists of record within batch, folded, forwarded ones included
	refs map[string]struct{}

	// pointer fields resolved within batch, field to batch index
	targets map[int]int

	// pointer fields to link to existing records
	links map[int]uuid.UUID
}

func (s *staged) in(lists []string) bool {
	for _, l := range lists {
		f := naming.Fold(l)
		if f == naming.Fold(allObjectsReference) {
			return true
		}
		if _, ok := s.refs[f]; ok {
			return true
		}
	}
	return false
}

// Records being added. Pointers between batch records are resolved before
// any record is renamed, so renames keep them
type batch struct {
	items    []*staged
	byHandle map[uuid.UUID]int
	byName   map[string][]int
}

// Returns batch of copies of records. Copies keep handles if keepHandles and
// the handle is not used by workspace or earlier record
func (ws *Workspace) newBatch(objects []*idf.Object, keepHandles bool) *batch {
	b := &batch{
		items:    make([]*staged, 0, len(objects)),
		byHandle: make(map[uuid.UUID]int, len(objects)),
		byName:   make(map[string][]int),
	}
	used := make(map[uuid.UUID]struct{}, len(objects))
	for i, o := range objects {
		keep := keepHandles
		if _, dup := used[o.Handle()]; dup || ws.IsMember(o.Handle()) {
			keep = false
		}
		c := o.Clone(keep)
		used[c.Handle()] = struct{}{}
		if _, ok := b.byHandle[o.Handle()]; !ok {
			b.byHandle[o.Handle()] = i
		}
		if name, ok := c.Name(); ok && name != "" {
			key := naming.Fold(name)
			b.byName[key] = append(b.byName[key], i)
		}
		refs := make(map[string]struct{})
		for _, r := range c.IddObject().References() {
			refs[naming.Fold(r)] = struct{}{}
		}
		b.items = append(b.items, &staged{
			o:       c,
			refs:    refs,
			targets: make(map[int]int),
			links:   make(map[int]uuid.UUID),
		})
	}
	return b
}

// Returns handle batch record has in workspace
func (b *batch) handle(i int) uuid.UUID {
	if s := b.items[i]; s.existing != uuid.Nil {
		return s.existing
	}
	return b.items[i].o.Handle()
}

// Returns records to add
func (b *batch) fresh() []*staged {
	res := make([]*staged, 0, len(b.items))
	for _, s := range b.items {
		if s.existing == uuid.Nil {
			res = append(res, s)
		}
	}
	return res
}

// Resolves pointers between batch records. If strict, pointer by handle
// must match object lists of field too
func (b *batch) resolve(strict bool) {
	for progress := true; progress; {
		progress = false
		for _, s := range b.items {
			iddObject := s.o.IddObject()
			for _, f := range iddObject.ObjectListFields(s.o.NumFields()) {
				if _, ok := s.targets[f]; ok {
					continue
				}
				if _, ok := s.links[f]; ok {
					continue
				}
				text, _ := s.o.Value(f)
				if text == "" {
					continue
				}
				fd, _ := iddObject.Field(f)
				j, ok := b.find(text, fd.ObjectLists, strict)
				if !ok {
					continue
				}
				s.targets[f] = j
				for _, r := range iddObject.ForwardedReferences(f) {
					b.items[j].refs[naming.Fold(r)] = struct{}{}
				}
				progress = true
			}
		}
	}
}

func (b *batch) find(text string, lists []string, strict bool) (int, bool) {
	if h, ok := idf.ParseHandle(text); ok {
		j, ok := b.byHandle[h]
		if ok && (!strict || b.items[j].in(lists)) {
			return j, true
		}
		return 0, false
	}
	for _, j := range b.byName[naming.Fold(text)] {
		if b.items[j].in(lists) {
			return j, true
		}
	}
	return 0, false
}
