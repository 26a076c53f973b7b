/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package workspace

import (
	"github.com/google/uuid"

	"github.com/voedger/idfspace/pkg/idd"
	"github.com/voedger/idfspace/pkg/journal"
)

// Subscribes observer to events. Events are delivered synchronously after
// the change is committed, rolled back changes are not reported. Returns
// function to unsubscribe
func (ws *Workspace) Subscribe(o Observer) (unsubscribe func()) {
	ws.lastObserverID++
	id := ws.lastObserverID
	ws.observers = append(ws.observers, observer{id, o})
	return func() {
		for i, x := range ws.observers {
			if x.id == id {
				ws.observers = append(ws.observers[:i:i], ws.observers[i+1:]...)
				return
			}
		}
	}
}

type observer struct {
	id uint64
	fn Observer
}

func (ws *Workspace) emit(kind EventKind, h uuid.UUID, t idd.ObjectType, field int) {
	ws.pending = append(ws.pending, Event{Kind: kind, Handle: h, Type: t, FieldIndex: field})
	if ws.journal == nil {
		ws.flush()
	}
}

func (ws *Workspace) flush() {
	events := ws.pending
	ws.pending = nil
	for _, e := range events {
		for _, o := range ws.observers {
			o.fn(e)
		}
	}
}

// Mutating operation of workspace. Changes are journaled, events are held
// until the outermost operation is committed
type txn struct {
	ws     *Workspace
	j      *journal.Journal
	events int
}

func (ws *Workspace) begin() *txn {
	t := &txn{ws: ws, j: journal.Nest(ws.journal), events: len(ws.pending)}
	ws.journal = t.j
	return t
}

// Ends operation, commits if ok or rolls back. Returns ok
func (t *txn) end(ok bool) bool {
	ws := t.ws
	ws.journal = t.j.Parent()
	if ok {
		t.j.Commit()
	} else {
		t.j.Rollback()
		ws.pending = ws.pending[:t.events]
		ws.order.invalidate()
	}
	if ws.journal == nil {
		ws.flush()
	}
	return ok
}

// Checkpoint of record transaction, see idf.ICheckpoint
type checkpoint struct{ t *txn }

func (c checkpoint) Commit()   { c.t.end(true) }
func (c checkpoint) Rollback() { c.t.end(false) }
