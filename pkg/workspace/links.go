/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package workspace

import (
	"sort"

	"github.com/google/uuid"

	"github.com/voedger/idfspace/pkg/journal"
)

// Pointer field of record
type link struct {
	source uuid.UUID
	index  int
}

// Pointer links between records, by identity. Forward links map pointer
// fields to targets, reverse links map targets to pointer fields
type links struct {
	forward map[uuid.UUID]map[int]uuid.UUID
	reverse map[uuid.UUID]map[link]struct{}
}

func newLinks() *links {
	return &links{
		forward: make(map[uuid.UUID]map[int]uuid.UUID),
		reverse: make(map[uuid.UUID]map[link]struct{}),
	}
}

func (l *links) target(source uuid.UUID, index int) (uuid.UUID, bool) {
	t, ok := l.forward[source][index]
	return t, ok
}

func (l *links) put(source uuid.UUID, index int, target uuid.UUID) {
	f, ok := l.forward[source]
	if !ok {
		f = make(map[int]uuid.UUID)
		l.forward[source] = f
	}
	f[index] = target
	r, ok := l.reverse[target]
	if !ok {
		r = make(map[link]struct{})
		l.reverse[target] = r
	}
	r[link{source, index}] = struct{}{}
}

func (l *links) drop(source uuid.UUID, index int) (uuid.UUID, bool) {
	t, ok := l.forward[source][index]
	if !ok {
		return uuid.Nil, false
	}
	delete(l.forward[source], index)
	if len(l.forward[source]) == 0 {
		delete(l.forward, source)
	}
	delete(l.reverse[t], link{source, index})
	if len(l.reverse[t]) == 0 {
		delete(l.reverse, t)
	}
	return t, true
}

// Links pointer field to target. Field must not be linked
func (l *links) set(source uuid.UUID, index int, target uuid.UUID, j *journal.Journal) {
	l.put(source, index, target)
	j.Push(func() { l.drop(source, index) })
}

// Unlinks pointer field, returns the former target
func (l *links) clear(source uuid.UUID, index int, j *journal.Journal) (uuid.UUID, bool) {
	t, ok := l.drop(source, index)
	if ok {
		j.Push(func() { l.put(source, index, t) })
	}
	return t, ok
}

// Returns linked pointer fields of record in field order
func (l *links) fieldsOf(source uuid.UUID) []int {
	res := make([]int, 0, len(l.forward[source]))
	for i := range l.forward[source] {
		res = append(res, i)
	}
	sort.Ints(res)
	return res
}

// Returns pointer fields linked to target, unordered
func (l *links) sourcesOf(target uuid.UUID) []link {
	res := make([]link, 0, len(l.reverse[target]))
	for lk := range l.reverse[target] {
		res = append(res, lk)
	}
	return res
}

func (l *links) isTarget(target uuid.UUID) bool {
	return len(l.reverse[target]) > 0
}
