/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package workspace

import (
	"github.com/google/uuid"

	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/idd"
	"github.com/voedger/idfspace/pkg/journal"
	"github.com/voedger/idfspace/pkg/naming"
)

// Reference index: records by type and by reference lists.
//
// Reference list entries are counted. Native registration of a record
// counts one, every pointer forwarding the list to the record counts one
// more, so a forwarded entry is withdrawn only when the last forwarding
// pointer is gone and a native entry is never withdrawn by pointers.
// Membership of every record is kept, so unregister does not depend on
// the current record fields
type refIndex struct {
	byType map[idd.ObjectType]map[uuid.UUID]struct{}
	byRef  map[string]map[uuid.UUID]int
	member map[uuid.UUID]map[string]struct{}
}

func newRefIndex() *refIndex {
	return &refIndex{
		byType: make(map[idd.ObjectType]map[uuid.UUID]struct{}),
		byRef:  make(map[string]map[uuid.UUID]int),
		member: make(map[uuid.UUID]map[string]struct{}),
	}
}

func (x *refIndex) inc(ref string, h uuid.UUID) {
	bucket, ok := x.byRef[ref]
	if !ok {
		bucket = make(map[uuid.UUID]int)
		x.byRef[ref] = bucket
	}
	bucket[h]++
	m, ok := x.member[h]
	if !ok {
		m = make(map[string]struct{})
		x.member[h] = m
	}
	m[ref] = struct{}{}
}

func (x *refIndex) dec(ref string, h uuid.UUID) {
	bucket := x.byRef[ref]
	if bucket[h] > 1 {
		bucket[h]--
		return
	}
	delete(bucket, h)
	if len(bucket) == 0 {
		delete(x.byRef, ref)
	}
	if m, ok := x.member[h]; ok {
		delete(m, ref)
		if len(m) == 0 {
			delete(x.member, h)
		}
	}
}

func (x *refIndex) addType(t idd.ObjectType, h uuid.UUID) {
	bucket, ok := x.byType[t]
	if !ok {
		bucket = make(map[uuid.UUID]struct{})
		x.byType[t] = bucket
	}
	bucket[h] = struct{}{}
}

func (x *refIndex) removeType(t idd.ObjectType, h uuid.UUID) {
	delete(x.byType[t], h)
	if len(x.byType[t]) == 0 {
		delete(x.byType, t)
	}
}

// Registers record in its type bucket and in the reference lists of its schema
func (x *refIndex) register(h uuid.UUID, o *idd.Object, j *journal.Journal) {
	x.addType(o.Type(), h)
	refs := o.References()
	for _, r := range refs {
		x.inc(naming.Fold(r), h)
	}
	if logger.IsTrace() {
		logger.Trace("registered", h, "of", o.Name(), "in", refs)
	}
	j.Push(func() {
		for _, r := range refs {
			x.dec(naming.Fold(r), h)
		}
		x.removeType(o.Type(), h)
	})
}

// Removes record from all buckets, forwarded entries included
func (x *refIndex) unregister(h uuid.UUID, o *idd.Object, j *journal.Journal) {
	saved := make(map[string]int, len(x.member[h]))
	for ref := range x.member[h] {
		saved[ref] = x.byRef[ref][h]
		for x.byRef[ref][h] > 0 {
			x.dec(ref, h)
		}
	}
	x.removeType(o.Type(), h)
	if logger.IsTrace() {
		logger.Trace("unregistered", h, "of", o.Name())
	}
	j.Push(func() {
		x.addType(o.Type(), h)
		for ref, n := range saved {
			for i := 0; i < n; i++ {
				x.inc(ref, h)
			}
		}
	})
}

// Registers record in reference list forwarded by pointer
func (x *refIndex) forward(ref string, h uuid.UUID, j *journal.Journal) {
	ref = naming.Fold(ref)
	x.inc(ref, h)
	j.Push(func() { x.dec(ref, h) })
}

// Withdraws registration made by forward
func (x *refIndex) withdraw(ref string, h uuid.UUID, j *journal.Journal) {
	ref = naming.Fold(ref)
	if x.byRef[ref][h] == 0 {
		return
	}
	x.dec(ref, h)
	j.Push(func() { x.inc(ref, h) })
}

// Returns handles of records of type, unordered
func (x *refIndex) ofType(t idd.ObjectType) []uuid.UUID {
	res := make([]uuid.UUID, 0, len(x.byType[t]))
	for h := range x.byType[t] {
		res = append(res, h)
	}
	return res
}

func (x *refIndex) numOfType(t idd.ObjectType) int { return len(x.byType[t]) }

// Returns handles of records registered in any of reference lists, unordered
func (x *refIndex) ofReferences(refs []string) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var res []uuid.UUID
	for _, r := range refs {
		for h := range x.byRef[naming.Fold(r)] {
			if _, ok := seen[h]; !ok {
				seen[h] = struct{}{}
				res = append(res, h)
			}
		}
	}
	return res
}

// Returns is record registered in any of reference lists
func (x *refIndex) inAny(h uuid.UUID, refs []string) bool {
	for _, r := range refs {
		f := naming.Fold(r)
		if f == naming.Fold(allObjectsReference) {
			return true
		}
		if x.byRef[f][h] > 0 {
			return true
		}
	}
	return false
}
