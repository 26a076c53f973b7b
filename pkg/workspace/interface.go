/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package workspace

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/voedger/idfspace/pkg/idd"
)

// Receives progress of long operations. Progress is advisory, operations can
// not be cancelled
type IProgress interface {
	SetRange(min, max int)
	SetValue(value int)
	SetCaption(caption string)
}

// Kind of workspace event
type EventKind uint8

const (
	EventKind_Added EventKind = iota
	EventKind_Removed
	EventKind_DataChanged
	EventKind_NameChanged

	EventKind_count
)

func (k EventKind) String() string {
	switch k {
	case EventKind_Added:
		return "Added"
	case EventKind_Removed:
		return "Removed"
	case EventKind_DataChanged:
		return "DataChanged"
	case EventKind_NameChanged:
		return "NameChanged"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event emitted after committed change of workspace.
//
// FieldIndex is the changed field for DataChanged events, -1 otherwise
type Event struct {
	Kind       EventKind
	Handle     uuid.UUID
	Type       idd.ObjectType
	FieldIndex int
}

func (e Event) String() string {
	if e.Kind == EventKind_DataChanged {
		return fmt.Sprintf("%v %v field %d", e.Kind, e.Handle, e.FieldIndex)
	}
	return fmt.Sprintf("%v %v", e.Kind, e.Handle)
}

// Observer of workspace events
type Observer func(Event)

// Kind of order of sorted queries
type OrderKind uint8

const (
	// Records in order of addition
	OrderKind_Insertion OrderKind = iota

	// Records by priority of their types, then in order of addition
	OrderKind_Type

	// Records in explicitly given order, records not in the list follow in
	// order of addition
	OrderKind_Direct
)

func (k OrderKind) String() string {
	switch k {
	case OrderKind_Insertion:
		return "insertion"
	case OrderKind_Type:
		return "type"
	case OrderKind_Direct:
		return "direct"
	}
	return fmt.Sprintf("OrderKind(%d)", uint8(k))
}

// Parses order kind name: "insertion", "type" or "direct"
func ParseOrderKind(s string) (OrderKind, error) {
	for k := OrderKind_Insertion; k <= OrderKind_Direct; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return OrderKind_Insertion, fmt.Errorf("%w: «%s»", ErrUnknownOrderKind, s)
}
