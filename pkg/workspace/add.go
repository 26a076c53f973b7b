/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package workspace

import (
	"errors"

	"github.com/google/uuid"

	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/idf"
	"github.com/voedger/idfspace/pkg/naming"
	"github.com/voedger/idfspace/pkg/validity"
)

// Adds copies of records.
//
// Pointers between records of the batch are kept, other pointers are
// resolved in the workspace by handle or by name, unresolved pointers are
// nulled. Records which names conflict with workspace records or with each
// other are renamed, unnamed records get names of their type series. If
// checkNames, every added record must be uniquely identifiable by name.
//
// Added records are validated at the strictness level, all of them or none
// are added. Returns added records in order of objects
func (ws *Workspace) AddObjects(objects []*idf.Object, checkNames bool) ([]*Object, error) {
	if len(objects) == 0 {
		return nil, nil
	}
	b := ws.newBatch(objects, objects[0].IddObject().HasHandleField())
	return ws.add(b, addOptions{checkNames: checkNames, resolveNames: true})
}

// Adds copy of record. Name which may be confused with a workspace record
// name is replaced by a name of the type series
func (ws *Workspace) AddObject(o *idf.Object) (*Object, bool) {
	b := ws.newBatch([]*idf.Object{o}, o.IddObject().HasHandleField())
	c := b.items[0].o
	if name, ok := c.Name(); ok && name != "" && ws.PotentialNameConflict(name, c.IddObject()) {
		if logger.IsVerbose() {
			logger.Verbose("name of", c.BriefDescription(), "is taken, new name is created")
		}
		c.SetName("")
	}
	added, err := ws.add(b, addOptions{})
	if err != nil || len(added) == 0 {
		return nil, false
	}
	return added[0], true
}

// Returns equivalent workspace record, see GetEquivalentObject, or adds copy
// of record
func (ws *Workspace) InsertObject(o *idf.Object) (*Object, bool) {
	if e, ok := ws.GetEquivalentObject(o); ok {
		return e, true
	}
	return ws.AddObject(o)
}

// Inserts records, see AddAndInsertObjects
func (ws *Workspace) InsertObjects(objects []*idf.Object) ([]*Object, error) {
	return ws.AddAndInsertObjects(nil, objects)
}

// Adds copies of toAdd records and inserts toInsert records. Inserted record
// is replaced by its equivalent workspace record, if any, which gets pointers
// of the inserted record to the batch records where it has none. Returns
// records in order of toAdd followed by toInsert
func (ws *Workspace) AddAndInsertObjects(toAdd, toInsert []*idf.Object) ([]*Object, error) {
	inputs := make([]*idf.Object, 0, len(toAdd)+len(toInsert))
	inputs = append(append(inputs, toAdd...), toInsert...)
	if len(inputs) == 0 {
		return nil, nil
	}
	b := ws.newBatch(inputs, inputs[0].IddObject().HasHandleField())
	for i := len(toAdd); i < len(inputs); i++ {
		if e, ok := ws.GetEquivalentObject(inputs[i]); ok {
			b.items[i].existing = e.Handle()
		}
	}
	added, err := ws.add(b, addOptions{
		checkNames:   true,
		resolveNames: true,
		override:     func([]*Object) bool { return ws.pointEquivalents(b) },
	})
	if err != nil {
		return nil, err
	}
	res := make([]*Object, len(inputs))
	k := 0
	for i, s := range b.items {
		if s.existing != uuid.Nil {
			res[i] = ws.objects[s.existing]
			continue
		}
		res[i] = added[k]
		k++
	}
	return res, nil
}

type addOptions struct {
	checkNames bool

	// rename records which names conflict with workspace records or with
	// each other
	resolveNames bool

	// records are copies of records of other workspace: unresolved pointers
	// are nulled silently, names are not created
	copying bool

	// caller validates the workspace when the operation is complete
	deferValidation bool

	// called after pointers are linked, false rolls the addition back
	override func(added []*Object) bool
}

// Adds records of batch as one operation
func (ws *Workspace) add(b *batch, opts addOptions) ([]*Object, error) {
	if vo := ws.VersionObject(); vo != nil {
		for _, s := range b.items {
			if s.existing == uuid.Nil && s.o.IddObject() == vo.IddObject() {
				s.existing = vo.Handle()
				if v, _ := s.o.Value(0); !naming.Equal(v, ws.Version()) {
					logger.Info("version «"+v+"» of added records is ignored, workspace version is", ws.Version())
				}
			}
		}
	}

	b.resolve(ws.level > validity.Minimal)
	if opts.resolveNames {
		objects := make([]*idf.Object, len(b.items))
		ignore := make(map[int]bool)
		for i, s := range b.items {
			objects[i] = s.o
			if s.existing != uuid.Nil {
				ignore[i] = true
			}
		}
		ws.resolveNames(objects, ignore, false)
	}
	fresh := b.fresh()
	if !opts.copying {
		ws.createNames(fresh)
	}

	n := len(fresh)
	ws.setProgress(captionAdding, 3*n)
	t := ws.begin()

	added := make([]*Object, 0, n)
	for i, s := range fresh {
		added = append(added, ws.nominallyAdd(s.o))
		ws.stepProgress(i + 1)
	}
	ws.relink(b, fresh, added, opts.copying)

	if opts.override != nil && !opts.override(added) {
		logger.Info("relationships of added records can not be set")
		t.end(false)
		return nil, ErrNotAdded
	}

	if !opts.deferValidation {
		if r := ws.validateAdded(added, opts.checkNames); !r.Valid() {
			logger.Info("records can not be added,", r)
			t.end(false)
			return nil, errors.Join(ErrNotAdded, r.Err())
		}
	}
	ws.stepProgress(3 * n)

	for _, o := range added {
		ws.emit(EventKind_Added, o.Handle(), o.Type(), -1)
	}
	t.end(true)
	return added, nil
}

// Inserts record into identity map and indexes
func (ws *Workspace) nominallyAdd(o *idf.Object) *Object {
	ws.seq++
	x := &Object{Object: o, ws: ws, seq: ws.seq}
	h := o.Handle()
	ws.objects[h] = x
	o.Attach(ws.owner)
	ws.refs.register(h, o.IddObject(), ws.journal)
	ws.order.push(h, ws.journal)
	ws.order.invalidate()
	ws.journal.Push(func() {
		delete(ws.objects, h)
		o.Detach()
		ws.order.invalidate()
	})
	return x
}

// Unresolved pointer of added record
type pointer struct {
	source *Object
	index  int
	text   string
	lists  []string
}

// Links pointer fields of added records to batch records and to existing
// records, then resolves other pointers by text. Text of linked fields is
// cleared, unresolved pointers are nulled
func (ws *Workspace) relink(b *batch, fresh []*staged, added []*Object, quiet bool) {
	var pending []pointer
	n := len(added)
	for k, x := range added {
		s, h := fresh[k], x.Handle()
		for _, f := range x.ObjectListFields() {
			if j, ok := s.targets[f]; ok {
				ws.link(h, f, b.handle(j))
				x.SetRawField(f, "")
				continue
			}
			if t, ok := s.links[f]; ok && ws.IsMember(t) {
				ws.link(h, f, t)
				x.SetRawField(f, "")
				continue
			}
			raw, _ := x.RawField(f)
			if text := idf.Decode(raw); text != "" {
				fd, _ := x.IddObject().Field(f)
				pending = append(pending, pointer{x, f, text, fd.ObjectLists})
			}
		}
		ws.stepProgress(n + k + 1)
	}

	// links forward reference lists, so a pointer may resolve after another one
	for progress := true; progress && len(pending) > 0; {
		progress = false
		rest := pending[:0]
		for _, p := range pending {
			if t, ok := ws.resolve(p.text, p.lists); ok {
				ws.link(p.source.Handle(), p.index, t)
				p.source.SetRawField(p.index, "")
				progress = true
				continue
			}
			rest = append(rest, p)
		}
		pending = rest
	}

	for _, p := range pending {
		p.source.SetRawField(p.index, "")
		if !quiet {
			logger.Warning("pointer «"+p.text+"» of", p.source.BriefDescription(), "can not be resolved and is nulled")
		}
	}
}

// Points fields of equivalent records to batch records, where the fields
// point nowhere
func (ws *Workspace) pointEquivalents(b *batch) bool {
	for _, s := range b.items {
		if s.existing == uuid.Nil {
			continue
		}
		e := ws.objects[s.existing]
		for _, f := range e.IddObject().ObjectListFields(s.o.NumFields()) {
			j, ok := s.targets[f]
			if !ok {
				continue
			}
			if _, linked := ws.links.target(e.Handle(), f); linked {
				continue
			}
			if !e.SetPointer(f, b.handle(j)) {
				return false
			}
		}
	}
	return true
}

// Names unnamed records, name of the type series or unique placeholder
func (ws *Workspace) createNames(items []*staged) {
	for _, s := range items {
		i, ok := s.o.IddObject().NameFieldIndex()
		if !ok {
			continue
		}
		if _, ok := s.o.GetString(i, true, true); ok {
			continue
		}
		var name string
		if ws.fastNaming {
			name = naming.Unique()
		} else {
			var extra []string
			for _, x := range items {
				if x.o.Type() == s.o.Type() {
					extra = append(extra, x.o.NameOrEmpty())
				}
			}
			name = ws.nextNameForTypeAmong(s.o.IddObject(), extra)
		}
		s.o.SetName(name)
	}
}

// Validates added records: whole workspace if it consists of them or level is
// Final, else every added record
func (ws *Workspace) validateAdded(added []*Object, checkNames bool) *validity.Report {
	if ws.level == validity.Final || len(added) >= ws.NumObjects() {
		return ws.ValidityReport(ws.level)
	}
	r := validity.NewReport(ws.level)
	for _, o := range added {
		r.Merge(o.ValidityReport(ws.level, checkNames))
	}
	return r
}
