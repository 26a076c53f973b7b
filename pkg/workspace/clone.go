/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package workspace

import (
	"github.com/google/uuid"

	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/idf"
	"github.com/voedger/idfspace/pkg/validity"
)

// Returns copy of workspace with the same options and order. Observers and
// progress are not copied
func (ws *Workspace) Clone(keepHandles bool) *Workspace {
	c := ws.CloneSubset(ws.Handles(false), keepHandles, ws.level)
	c.header = ws.header
	return c
}

// Returns workspace of copies of records. Pointers to records out of the
// subset are nulled. Level of the copy is not checked
func (ws *Workspace) CloneSubset(handles []uuid.UUID, keepHandles bool, level validity.StrictnessLevel) *Workspace {
	c := New(ws.schema,
		WithStrictness(validity.None),
		WithFastNaming(ws.fastNaming),
		WithFillNameGaps(ws.fillNameGaps),
	)
	c.order.kind = ws.order.kind
	c.order.typeOrder = ws.order.typeOrder
	if v := ws.Version(); v != c.Version() {
		if vo := c.VersionObject(); vo != nil {
			vo.SetString(0, v)
		}
	}

	var objects []*Object
	for _, h := range handles {
		if o, ok := ws.objects[h]; ok && !ws.isVersion(o) {
			objects = append(objects, o)
		}
	}
	copies := make(map[uuid.UUID]uuid.UUID, len(objects)+1)
	if vo, cvo := ws.VersionObject(), c.VersionObject(); vo != nil && cvo != nil {
		copies[vo.Handle()] = cvo.Handle()
	}
	if len(objects) > 0 {
		inputs := make([]*idf.Object, len(objects))
		index := make(map[uuid.UUID]int, len(objects))
		for i, o := range objects {
			inputs[i] = o.Object
			index[o.Handle()] = i
		}
		b := c.newBatch(inputs, keepHandles)
		for i, o := range objects {
			s := b.items[i]
			for _, f := range ws.links.fieldsOf(o.Handle()) {
				t, _ := ws.links.target(o.Handle(), f)
				if j, ok := index[t]; ok {
					s.targets[f] = j
				} else {
					s.o.SetString(f, "")
				}
			}
		}
		added, err := c.add(b, addOptions{copying: true})
		if err != nil {
			// records of valid workspace are added at None level
			logger.Error("records can not be cloned:", err)
		}
		for i, x := range added {
			copies[objects[i].Handle()] = x.Handle()
		}
	}

	if c.order.kind == OrderKind_Direct {
		c.order.direct = c.order.direct[:0]
		for _, h := range ws.order.handles(ws) {
			if x, ok := copies[h]; ok {
				c.order.direct = append(c.order.direct, x)
			}
		}
		c.order.invalidate()
	}
	c.level = level
	return c
}

// Returns workspace record equivalent to record: the version record for
// version record, else record of the same type and name, or of the same type
// for unnamed records, with equal data and non-conflicting pointers
func (ws *Workspace) GetEquivalentObject(o *idf.Object) (*Object, bool) {
	if ws.isVersionType(o) {
		if vo := ws.VersionObject(); vo != nil {
			return vo, true
		}
		return nil, false
	}
	var candidates []*Object
	if name, ok := o.Name(); ok && name != "" {
		if c, ok := ws.ObjectByTypeAndName(o.Type(), name); ok {
			candidates = append(candidates, c)
		}
	} else {
		candidates = ws.ObjectsByType(o.Type())
	}
	for _, c := range candidates {
		if c.DataFieldsEqual(o) && c.ObjectListFieldsNonConflicting(o) {
			return c, true
		}
	}
	return nil, false
}

func (ws *Workspace) isVersionType(o *idf.Object) bool {
	vo := ws.schema.VersionObject()
	return vo != nil && o.Type() == vo.Type()
}
