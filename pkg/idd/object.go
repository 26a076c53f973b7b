/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/voedger/idfspace/pkg/naming"
)

// Schema object, the definition of one type of records.
//
// Fields of an object are the non-extensible ones followed by one extensible
// group, which may repeat in records any number of times.
type Object struct {
	typ      ObjectType
	name     string
	group    string
	memo     string
	format   string
	unique   bool
	required bool
	obsolete bool

	minFields int
	maxFields int // extensible only, zero is unbounded

	fields     []*Field
	extensible []*Field

	nameIndex      int
	handle         bool
	references     []string
	underscoreName bool
}

func (o *Object) Type() ObjectType { return o.typ }

func (o *Object) Name() string { return o.name }

func (o *Object) Group() string { return o.group }

func (o *Object) Memo() string { return o.memo }

// Print format, "vertices" for geometry objects
func (o *Object) Format() string { return o.format }

// Returns is at most one record of the object allowed
func (o *Object) IsUnique() bool { return o.unique }

// Returns is at least one record of the object required
func (o *Object) IsRequired() bool { return o.required }

func (o *Object) IsObsolete() bool { return o.obsolete }

func (o *Object) MinFields() int { return o.minFields }

// Returns maximum number of fields. Extensible objects without `\max-fields` are unbounded
func (o *Object) MaxFields() (int, bool) {
	if !o.IsExtensible() {
		return len(o.fields), true
	}
	if o.maxFields > 0 {
		return o.maxFields, true
	}
	return 0, false
}

// Returns number of non-extensible fields
func (o *Object) NumNonextensible() int { return len(o.fields) }

func (o *Object) IsExtensible() bool { return len(o.extensible) > 0 }

// Returns number of fields in extensible group, zero for non-extensible objects
func (o *Object) GroupSize() int { return len(o.extensible) }

// Returns non-extensible fields
func (o *Object) Fields() []*Field { return o.fields }

// Returns fields of extensible group
func (o *Object) ExtensibleGroup() []*Field { return o.extensible }

// Returns field by record field index. Indexes beyond non-extensible fields
// are mapped into extensible group
func (o *Object) Field(index int) (*Field, bool) {
	if index < 0 {
		return nil, false
	}
	if index < len(o.fields) {
		return o.fields[index], true
	}
	if o.IsExtensible() {
		if mf, ok := o.MaxFields(); ok && index >= mf {
			return nil, false
		}
		return o.extensible[(index-len(o.fields))%len(o.extensible)], true
	}
	return nil, false
}

// Returns index of non-extensible field by name, case insensitive
func (o *Object) FieldIndex(name string) (int, bool) {
	for i, f := range o.fields {
		if naming.Equal(f.Name, name) {
			return i, true
		}
	}
	return 0, false
}

func (o *Object) IsNonextensibleField(index int) bool {
	return index >= 0 && index < len(o.fields)
}

func (o *Object) IsExtensibleField(index int) bool {
	if !o.IsExtensible() || index < len(o.fields) {
		return false
	}
	if mf, ok := o.MaxFields(); ok && index >= mf {
		return false
	}
	return true
}

// Returns group and field in group of extensible field index
func (o *Object) ExtensibleIndex(index int) (group, field int) {
	i := index - len(o.fields)
	return i / len(o.extensible), i % len(o.extensible)
}

// Returns record field index of field in extensible group
func (o *Object) Index(group, field int) int {
	return len(o.fields) + group*len(o.extensible) + field
}

// Returns index of name field, if object has one
func (o *Object) NameFieldIndex() (int, bool) {
	return o.nameIndex, o.nameIndex >= 0
}

func (o *Object) HasNameField() bool { return o.nameIndex >= 0 }

// Returns is field 0 is a record handle
func (o *Object) HasHandleField() bool { return o.handle }

// Returns indexes of required non-extensible fields
func (o *Object) RequiredFields() []int {
	var res []int
	for i, f := range o.fields {
		if f.Required {
			res = append(res, i)
		}
	}
	return res
}

// Returns reference lists records of the object are registered in
func (o *Object) References() []string { return o.references }

// Returns indexes of object-list fields in a record of numFields fields
func (o *Object) ObjectListFields(numFields int) []int {
	var res []int
	for i := 0; i < numFields; i++ {
		if f, ok := o.Field(i); ok && f.IsObjectList() {
			res = append(res, i)
		}
	}
	return res
}

// Returns reference lists which pointer field forwards to its target
func (o *Object) ForwardedReferences(index int) []string {
	if f, ok := o.Field(index); ok && f.IsObjectList() {
		return f.References
	}
	return nil
}

// Returns number of fields of newly constructed record
func (o *Object) DefaultFieldCount() int {
	n := o.minFields
	if o.handle && n < 1 {
		n = 1
	}
	if !o.IsExtensible() {
		return min(n, len(o.fields))
	}
	if n > len(o.fields) {
		gs := len(o.extensible)
		n = len(o.fields) + (n-len(o.fields)+gs-1)/gs*gs
	}
	return n
}

// Returns is spaces in record names are replaced by underscores
func (o *Object) UnderscoreName() bool { return o.underscoreName }

// Returns base of generated record names, like "Zone" for "Zone" or
// "ThermalZone" for "OS:ThermalZone"
func (o *Object) DefaultRecordName() string {
	return naming.FromSchemaName(o.name)
}

// Returns field label used in default field comments. Extensible fields are
// numbered by group, "Vertex 1 X-coordinate" becomes "Vertex 3 X-coordinate" in group 2
func (o *Object) FieldLabel(index int) string {
	f, ok := o.Field(index)
	if !ok {
		return ""
	}
	if !o.IsExtensibleField(index) {
		return f.Name
	}
	group, _ := o.ExtensibleIndex(index)
	num := strconv.Itoa(group + 1)
	words := strings.Fields(f.Name)
	for i, w := range words {
		if w == "1" {
			words[i] = num
			return strings.Join(words, " ")
		}
	}
	return f.Name + " " + num
}

func (o *Object) String() string {
	return fmt.Sprintf("object «%s»", o.name)
}

// Computes derived properties after fields are set
func (o *Object) prepare() {
	o.nameIndex = -1
	o.handle = len(o.fields) > 0 && o.fields[0].Type == FieldType_Handle
	i := 0
	if o.handle {
		i = 1
	}
	if i < len(o.fields) && o.fields[i].isNameCandidate() {
		o.nameIndex = i
	}
	if o.nameIndex >= 0 {
		o.references = o.fields[o.nameIndex].References
	} else {
		o.references = implicitReferences[naming.Fold(o.name)]
	}
	o.underscoreName = underscoreNameObjects[naming.Fold(o.name)]
}
