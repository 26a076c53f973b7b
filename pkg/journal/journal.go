/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

// Package journal provides an undo journal for mutations which must be
// either committed as a whole or rolled back as a whole.
//
//	j := journal.New()
//	defer j.Rollback()
//	...
//	j.Push(func() { undo change })
//	...
//	j.Commit()
package journal

// Journal of undo actions. Actions are applied in reverse order of pushing.
//
// Nested journals merge their actions into parent on commit, so that
// rollback of parent undoes changes committed by children.
type Journal struct {
	parent *Journal
	undo   []func()
	closed bool
}

func New() *Journal {
	return &Journal{}
}

// Returns journal nested into parent. Parent may be nil, then new root journal returned
func Nest(parent *Journal) *Journal {
	return &Journal{parent: parent}
}

// Returns parent journal, nil for root
func (j *Journal) Parent() *Journal { return j.parent }

// Returns is journal committed or rolled back
func (j *Journal) Closed() bool { return j.closed }

// Returns number of undo actions
func (j *Journal) Len() int { return len(j.undo) }

// Pushes undo action. Nil journal ignores actions, this is the state outside any operation
func (j *Journal) Push(undo func()) {
	if j == nil {
		return
	}
	if j.closed {
		panic(ErrJournalClosed)
	}
	j.undo = append(j.undo, undo)
}

// Commits journal. Actions are passed to parent journal, if any, or discarded
func (j *Journal) Commit() {
	if j.closed {
		return
	}
	j.closed = true
	if j.parent != nil && !j.parent.closed {
		j.parent.undo = append(j.parent.undo, j.undo...)
	}
	j.undo = nil
}

// Applies undo actions in reverse order. Does nothing if journal is already
// committed, so it is safe to defer
func (j *Journal) Rollback() {
	if j.closed {
		return
	}
	j.closed = true
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
}

// Returns current mark. Use RollbackTo to undo actions pushed after mark
func (j *Journal) Mark() int { return len(j.undo) }

// Applies in reverse order undo actions pushed after mark, journal stays open
func (j *Journal) RollbackTo(mark int) {
	if j.closed || mark < 0 || mark > len(j.undo) {
		return
	}
	for i := len(j.undo) - 1; i >= mark; i-- {
		j.undo[i]()
	}
	j.undo = j.undo[:mark]
}
