/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

// Package workspace provides in-memory database of cross-referenced records
// validated against a schema.
//
// Records point to each other by name through object-list fields. Workspace
// keeps pointers as identity links, so pointers follow renamed targets and
// are nulled when targets are removed. Every mutating operation is either
// committed or rolled back as a whole.
package workspace

import (
	"sort"

	"github.com/google/uuid"

	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/idd"
	"github.com/voedger/idfspace/pkg/idf"
	"github.com/voedger/idfspace/pkg/journal"
	"github.com/voedger/idfspace/pkg/naming"
	"github.com/voedger/idfspace/pkg/validity"
)

// Workspace of records.
//
// Workspace is not safe for concurrent mutation. Queries may run
// concurrently with each other
type Workspace struct {
	schema       idd.ISchema
	level        validity.StrictnessLevel
	fastNaming   bool
	fillNameGaps bool
	header       string
	progress     IProgress

	objects map[uuid.UUID]*Object
	seq     uint64
	refs    *refIndex
	links   *links
	order   order
	owner   *owner

	// journal of the current operation, nil outside operations
	journal *journal.Journal
	pending []Event

	observers      []observer
	lastObserverID uint64
}

// Returns new workspace with the version record of the schema
func New(schema idd.ISchema, opts ...Option) *Workspace {
	ws := &Workspace{
		schema:  schema,
		level:   DefaultStrictness,
		objects: make(map[uuid.UUID]*Object),
		refs:    newRefIndex(),
		links:   newLinks(),
	}
	ws.owner = &owner{ws}
	for _, opt := range opts {
		opt(ws)
	}
	if vo := schema.VersionObject(); vo != nil {
		r := idf.New(vo, false)
		r.SetString(0, schema.Version())
		ws.nominallyAdd(r)
	}
	return ws
}

func (ws *Workspace) Schema() idd.ISchema { return ws.schema }

func (ws *Workspace) StrictnessLevel() validity.StrictnessLevel { return ws.level }

// Sets strictness level. Fails if workspace is not valid at the level
func (ws *Workspace) SetStrictnessLevel(level validity.StrictnessLevel) bool {
	if level > ws.level {
		if r := ws.ValidityReport(level); !r.Valid() {
			logger.Warning("strictness can not be set to", level, "workspace is not valid:", r)
			return false
		}
	}
	ws.level = level
	return true
}

func (ws *Workspace) FastNaming() bool { return ws.fastNaming }

func (ws *Workspace) SetFastNaming(fast bool) { ws.fastNaming = fast }

func (ws *Workspace) Header() string { return ws.header }

// Sets header comment printed before records
func (ws *Workspace) SetHeader(header string) { ws.header = idf.FormatComment(header) }

func (ws *Workspace) SetProgress(p IProgress) { ws.progress = p }

// Returns version of data, from version record or from schema
func (ws *Workspace) Version() string {
	if vo := ws.VersionObject(); vo != nil {
		if v, ok := vo.GetString(0, true, true); ok {
			return v
		}
	}
	return ws.schema.Version()
}

// Returns version record or nil
func (ws *Workspace) VersionObject() *Object {
	vo := ws.schema.VersionObject()
	if vo == nil {
		return nil
	}
	hh := ws.bySeq(ws.refs.ofType(vo.Type()))
	if len(hh) == 0 {
		return nil
	}
	return ws.objects[hh[0]]
}

func (ws *Workspace) isVersion(o *Object) bool { return ws.isVersionType(o.Object) }

// Returns record by handle
func (ws *Workspace) Object(h uuid.UUID) (*Object, bool) {
	o, ok := ws.objects[h]
	return o, ok
}

func (ws *Workspace) IsMember(h uuid.UUID) bool {
	_, ok := ws.objects[h]
	return ok
}

// Returns records, the version record excluded. Sorted records follow the
// order of workspace, other in order of addition
func (ws *Workspace) Objects(sorted bool) []*Object {
	res := make([]*Object, 0, len(ws.objects))
	for _, o := range ws.objectsOf(ws.Handles(sorted)) {
		if !ws.isVersion(o) {
			res = append(res, o)
		}
	}
	return res
}

// Returns all records in order of workspace, the version record included
func (ws *Workspace) AllObjects() []*Object {
	return ws.objectsOf(ws.Handles(true))
}

// Returns handles of all records, see Objects
func (ws *Workspace) Handles(sorted bool) []uuid.UUID {
	if sorted {
		return ws.order.handles(ws)
	}
	return ws.bySeq(ws.allHandles())
}

// Returns number of records, the version record excluded
func (ws *Workspace) NumObjects() int {
	n := len(ws.objects)
	if ws.VersionObject() != nil {
		n--
	}
	return n
}

// Returns number of records, the version record included
func (ws *Workspace) NumAllObjects() int { return len(ws.objects) }

func (ws *Workspace) NumObjectsOfType(t idd.ObjectType) int { return ws.refs.numOfType(t) }

// Returns records of type in order of addition
func (ws *Workspace) ObjectsByType(t idd.ObjectType) []*Object {
	return ws.objectsOf(ws.bySeq(ws.refs.ofType(t)))
}

// Returns records named name, case insensitive. If not exact, returns
// records of the name series: names with the same base name
func (ws *Workspace) ObjectsByName(name string, exact bool) []*Object {
	var res []*Object
	base := naming.BaseName(name)
	for _, o := range ws.objectsOf(ws.bySeq(ws.allHandles())) {
		n, ok := o.Name()
		if !ok {
			continue
		}
		if exact && naming.Equal(n, name) || !exact && naming.BaseNamesMatch(base, n) {
			res = append(res, o)
		}
	}
	return res
}

// Returns record of type with name, case insensitive
func (ws *Workspace) ObjectByTypeAndName(t idd.ObjectType, name string) (*Object, bool) {
	for _, o := range ws.ObjectsByType(t) {
		if naming.Equal(o.NameOrEmpty(), name) {
			return o, true
		}
	}
	return nil, false
}

// Returns records of type from the series of name
func (ws *Workspace) ObjectsByTypeAndName(t idd.ObjectType, name string) []*Object {
	var res []*Object
	base := naming.BaseName(name)
	for _, o := range ws.ObjectsByType(t) {
		if naming.BaseNamesMatch(base, o.NameOrEmpty()) {
			res = append(res, o)
		}
	}
	return res
}

// Returns records registered in any of reference lists, in order of addition
func (ws *Workspace) ObjectsByReference(refs ...string) []*Object {
	return ws.objectsOf(ws.bySeq(ws.refs.ofReferences(refs)))
}

// Returns record with name registered in any of reference lists
func (ws *Workspace) ObjectByNameAndReference(name string, refs []string) (*Object, bool) {
	for _, o := range ws.ObjectsByReference(refs...) {
		if n, ok := o.Name(); ok && naming.Equal(n, name) {
			return o, true
		}
	}
	return nil, false
}

// Returns can record be pointed by field which object lists are refs
func (ws *Workspace) CanBeTarget(h uuid.UUID, refs []string) bool {
	return ws.IsMember(h) && ws.refs.inAny(h, refs)
}

// Sets order of sorted queries to order of addition
func (ws *Workspace) SetInsertionOrder() {
	ws.order.kind = OrderKind_Insertion
	ws.order.invalidate()
}

// Sets order of sorted queries to type priority
func (ws *Workspace) SetTypeOrder(types ...idd.ObjectType) {
	ws.order.kind = OrderKind_Type
	ws.order.typeOrder = types
	ws.order.invalidate()
}

// Sets direct order of sorted queries. If handles is nil, the current order
// becomes direct
func (ws *Workspace) SetDirectOrder(handles []uuid.UUID) {
	if handles == nil {
		handles = ws.Handles(true)
	}
	ws.order.kind = OrderKind_Direct
	ws.order.direct = append([]uuid.UUID(nil), handles...)
	ws.order.invalidate()
}

func (ws *Workspace) OrderKind() OrderKind { return ws.order.kind }

// Moves record to position of direct order
func (ws *Workspace) MoveInOrder(h uuid.UUID, pos int) bool {
	if ws.order.kind != OrderKind_Direct {
		return false
	}
	t := ws.begin()
	return t.end(ws.order.move(h, pos, ws.journal))
}

func (ws *Workspace) allHandles() []uuid.UUID {
	res := make([]uuid.UUID, 0, len(ws.objects))
	for h := range ws.objects {
		res = append(res, h)
	}
	return res
}

// sorts handles in order of addition
func (ws *Workspace) bySeq(hh []uuid.UUID) []uuid.UUID {
	sort.Slice(hh, func(i, j int) bool { return ws.objects[hh[i]].seq < ws.objects[hh[j]].seq })
	return hh
}

func (ws *Workspace) objectsOf(hh []uuid.UUID) []*Object {
	res := make([]*Object, 0, len(hh))
	for _, h := range hh {
		res = append(res, ws.objects[h])
	}
	return res
}

func (ws *Workspace) setProgress(caption string, max int) {
	if ws.progress != nil {
		ws.progress.SetCaption(caption)
		ws.progress.SetRange(0, max)
		ws.progress.SetValue(0)
	}
}

func (ws *Workspace) stepProgress(value int) {
	if ws.progress != nil {
		ws.progress.SetValue(value)
	}
}
