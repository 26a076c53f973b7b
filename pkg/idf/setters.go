/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idf

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/idd"
	"github.com/voedger/idfspace/pkg/naming"
)

// Runs mutating operation as a transaction. Fields and owner state are
// restored if operation fails or owner does not approve its changes. Nested
// calls join the outer transaction
func (o *Object) transact(op func() bool) bool {
	if o.depth > 0 {
		return op()
	}

	fields := slices.Clone(o.fields)
	comments := slices.Clone(o.fieldComments)
	var cp ICheckpoint
	if o.owner != nil {
		cp = o.owner.Checkpoint(o)
	}

	o.depth++
	ok := op()
	o.depth--

	diffs := o.diffs
	o.diffs = nil
	resized := len(fields) != len(o.fields)

	if ok && o.owner != nil && (len(diffs) > 0 || resized) {
		ok = o.owner.Approve(o, diffs, resized)
	}

	if !ok {
		o.fields, o.fieldComments = fields, comments
		if cp != nil {
			cp.Rollback()
		}
		if logger.IsVerbose() {
			logger.Verbose("changes of", o.BriefDescription(), "rolled back")
		}
		return false
	}

	if cp != nil {
		cp.Commit()
	}
	if o.owner != nil && len(diffs) > 0 {
		o.owner.Commit(o, diffs)
	}
	return true
}

// stores value and records the change
func (o *Object) store(index int, value string) {
	old := Decode(o.fields[index])
	o.fields[index] = Encode(value)
	o.diffs = append(o.diffs, Diff{Index: index, OldValue: old, NewValue: value})
}

// appends empty field, handle field gets the handle
func (o *Object) grow() {
	i := len(o.fields)
	o.fields = append(o.fields, "")
	if o.isHandleField(i) {
		o.fields[i] = HandleString(o.handle)
		o.diffs = append(o.diffs, Diff{Index: i, NewValue: o.fields[i]})
	}
}

// sets value of existing field
func (o *Object) set(index int, value string) bool {
	if o.isHandleField(index) {
		h, ok := ParseHandle(value)
		return ok && h == o.handle
	}
	if o.owner != nil {
		old := o.value(index, false)
		if handled, ok := o.owner.SetManagedField(o, index, value); handled {
			if ok {
				o.diffs = append(o.diffs, Diff{Index: index, OldValue: old, NewValue: o.value(index, false)})
			}
			return ok
		}
	}
	o.store(index, value)
	return true
}

// Sets field value.
//
// Missing fields up to index are created with default values, including whole
// extensible groups. Fails if schema object can not have field at index. On
// failure record is not changed
func (o *Object) SetString(index int, value string) bool {
	return o.transact(func() bool { return o.setString(index, value) })
}

func (o *Object) setString(index int, value string) bool {
	if i, ok := o.iddObject.NameFieldIndex(); ok && i == index {
		_, ok := o.setName(value)
		return ok
	}
	if index < 0 {
		return false
	}
	if index >= len(o.fields) {
		if !o.iddObject.IsNonextensibleField(index) && !o.iddObject.IsExtensibleField(index) {
			return false
		}
		for index >= len(o.fields) && len(o.fields) < o.iddObject.NumNonextensible() {
			if !o.pushString("") {
				return false
			}
		}
		for index >= len(o.fields) {
			if _, ok := o.pushGroup(nil); !ok {
				return false
			}
		}
	}
	return o.set(index, value)
}

// Appends field. Fails if next field is not non-extensible one, or is in
// extensible group of more than one field
func (o *Object) PushString(value string) bool {
	return o.transact(func() bool { return o.pushString(value) })
}

func (o *Object) pushString(value string) bool {
	index := len(o.fields)
	if i, ok := o.iddObject.NameFieldIndex(); ok && i == index {
		_, ok := o.setName(value)
		return ok
	}
	if !o.iddObject.IsNonextensibleField(index) &&
		!(o.iddObject.GroupSize() == 1 && o.iddObject.IsExtensibleField(index)) {
		return false
	}
	o.grow()
	if o.isHandleField(index) {
		return true
	}
	return o.set(index, value)
}

// Sets record name and returns the stored name.
//
// Fails if schema object has no name field. Names of some objects can not
// contain spaces, spaces are replaced by underscores. Owner may change the
// name to avoid conflicts
func (o *Object) SetName(name string) (string, bool) {
	var res string
	ok := o.transact(func() (ok bool) {
		res, ok = o.setName(name)
		return ok
	})
	if !ok {
		return "", false
	}
	return res, true
}

func (o *Object) setName(name string) (string, bool) {
	index, ok := o.iddObject.NameFieldIndex()
	if !ok {
		return "", false
	}
	if o.iddObject.UnderscoreName() {
		name = strings.ReplaceAll(name, " ", "_")
	}
	if o.owner != nil {
		if name, ok = o.owner.ApproveName(o, name); !ok {
			return "", false
		}
	}
	for len(o.fields) <= index {
		o.grow()
	}
	o.store(index, name)
	return name, true
}

// Sets unique name. If overwrite is false, name is created only if record
// has no name yet
func (o *Object) CreateName(overwrite bool) (string, bool) {
	name, ok := o.Name()
	if !ok {
		return "", false
	}
	if name != "" && !overwrite {
		return name, true
	}
	return o.SetName(naming.FromSchemaName(o.iddObject.Name()) + " " + naming.Unique())
}

// Pops fields down to n. Owner drops state of removed fields
func (o *Object) truncate(n int) {
	if n >= len(o.fields) {
		return
	}
	for i := n; i < len(o.fields); i++ {
		o.diffs = append(o.diffs, Diff{Index: i, OldValue: o.value(i, false)})
	}
	if o.owner != nil {
		o.owner.FieldsTruncated(o, n)
	}
	o.fields = o.fields[:n]
	if len(o.fieldComments) > n {
		o.fieldComments = o.fieldComments[:n]
	}
}

// Grows record to the minimal number of fields
func (o *Object) ResizeToMinFields() bool {
	return o.transact(func() bool {
		n := o.iddObject.DefaultFieldCount()
		if n <= len(o.fields) {
			return true
		}
		return o.setString(n-1, "")
	})
}

// Changes schema object of unbound record. Fields the new object can not
// hold are dropped, incomplete extensible group is dropped too
func (o *Object) SetIddObject(iddObject *idd.Object) bool {
	if o.state != State_Unbound || iddObject == nil {
		return false
	}
	o.iddObject = iddObject
	n := len(o.fields)
	if mf, ok := iddObject.MaxFields(); ok && n > mf {
		n = mf
	}
	if gs := iddObject.GroupSize(); gs > 0 && n > iddObject.NumNonextensible() {
		n -= (n - iddObject.NumNonextensible()) % gs
	}
	o.truncate(n)
	o.diffs = nil
	if iddObject.HasHandleField() && len(o.fields) > 0 {
		o.fields[0] = HandleString(o.handle)
	}
	return true
}
