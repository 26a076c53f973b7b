/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package workspace

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/voedger/idfspace/pkg/idd"
	"github.com/voedger/idfspace/pkg/journal"
)

// Order of sorted queries.
//
// Sorted handles are computed lazily and cached while the cache has the
// cardinality of the collection. The cache is the only state changed by
// queries, it is guarded by mutex
type order struct {
	kind      OrderKind
	typeOrder []idd.ObjectType
	direct    []uuid.UUID

	mu     sync.Mutex
	sorted []uuid.UUID
}

func (ord *order) invalidate() {
	ord.mu.Lock()
	ord.sorted = nil
	ord.mu.Unlock()
}

// Returns handles of records in order
func (ord *order) handles(ws *Workspace) []uuid.UUID {
	ord.mu.Lock()
	defer ord.mu.Unlock()
	if ord.sorted == nil || len(ord.sorted) != len(ws.objects) {
		ord.sorted = ord.sort(ws)
	}
	return slices.Clone(ord.sorted)
}

func (ord *order) sort(ws *Workspace) []uuid.UUID {
	all := ws.bySeq(ws.allHandles())
	switch ord.kind {
	case OrderKind_Type:
		priority := make(map[idd.ObjectType]int, len(ord.typeOrder))
		for i, t := range ord.typeOrder {
			if _, ok := priority[t]; !ok {
				priority[t] = i
			}
		}
		rank := func(h uuid.UUID) int {
			if p, ok := priority[ws.objects[h].Type()]; ok {
				return p
			}
			return len(ord.typeOrder)
		}
		sort.SliceStable(all, func(i, j int) bool { return rank(all[i]) < rank(all[j]) })
	case OrderKind_Direct:
		res := make([]uuid.UUID, 0, len(all))
		listed := make(map[uuid.UUID]struct{}, len(ord.direct))
		for _, h := range ord.direct {
			if _, ok := ws.objects[h]; ok {
				if _, dup := listed[h]; !dup {
					listed[h] = struct{}{}
					res = append(res, h)
				}
			}
		}
		for _, h := range all {
			if _, ok := listed[h]; !ok {
				res = append(res, h)
			}
		}
		return res
	}
	return all
}

// Appends record to direct order
func (ord *order) push(h uuid.UUID, j *journal.Journal) {
	if ord.kind != OrderKind_Direct {
		return
	}
	ord.direct = append(ord.direct, h)
	j.Push(func() { ord.direct = ord.direct[:len(ord.direct)-1] })
}

// Returns position of record in direct order
func (ord *order) indexOf(h uuid.UUID) (int, bool) {
	i := slices.Index(ord.direct, h)
	return i, i >= 0
}

// Moves record to position of direct order
func (ord *order) move(h uuid.UUID, pos int, j *journal.Journal) bool {
	from := slices.Index(ord.direct, h)
	if from < 0 || pos < 0 || pos >= len(ord.direct) {
		return false
	}
	old := slices.Clone(ord.direct)
	ord.direct = slices.Delete(ord.direct, from, from+1)
	ord.direct = slices.Insert(ord.direct, pos, h)
	ord.invalidate()
	j.Push(func() {
		ord.direct = old
		ord.invalidate()
	})
	return true
}

// Removes record from direct order
func (ord *order) remove(h uuid.UUID, j *journal.Journal) {
	i := slices.Index(ord.direct, h)
	if i < 0 {
		return
	}
	ord.direct = slices.Delete(ord.direct, i, i+1)
	ord.invalidate()
	j.Push(func() {
		ord.direct = slices.Insert(ord.direct, i, h)
		ord.invalidate()
	})
}
