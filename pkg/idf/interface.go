/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idf

// Lifecycle state of record
type State uint8

const (
	// Constructed, not owned by any collection
	State_Unbound State = iota

	// Owned by collection
	State_Owned

	// Removed from collection, terminal
	State_Removed
)

func (s State) String() string {
	switch s {
	case State_Unbound:
		return "Unbound"
	case State_Owned:
		return "Owned"
	case State_Removed:
		return "Removed"
	}
	return "State(?)"
}

// Change of one field
type Diff struct {
	Index    int
	OldValue string
	NewValue string
}

// Checkpoint of owner state taken before record mutation
type ICheckpoint interface {
	Commit()
	Rollback()
}

// Owner of records, like a workspace. Owner manages fields which are not
// plain values, like pointers, and approves changes of owned records
type IOwner interface {
	// Returns value of managed field and true, or false if field is not
	// managed by owner. With handles pointers are rendered as target handles
	ManagedField(o *Object, index int, withHandles bool) (value string, managed bool)

	// Sets managed field. Returns handled false if field is not managed by owner
	SetManagedField(o *Object, index int, value string) (handled, ok bool)

	// Called when fields from n are removed from record
	FieldsTruncated(o *Object, n int)

	// Returns name to store, possibly changed, or false to reject the name
	ApproveName(o *Object, name string) (string, bool)

	// Approves changes of record made by one mutating operation. Resized is
	// true if number of fields changed
	Approve(o *Object, diffs []Diff, resized bool) bool

	// Returns checkpoint of owner state related to record
	Checkpoint(o *Object) ICheckpoint

	// Called after successful mutation with all changes
	Commit(o *Object, diffs []Diff)

	// Returns is record name unique in all reference lists it registers in
	UniquelyIdentifiableByName(o *Object) bool
}
