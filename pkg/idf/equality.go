/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idf

import (
	"math"
	"strconv"
	"strings"

	"github.com/voedger/idfspace/pkg/naming"
)

// Compares values case insensitive, values of numeric fields by number too
func valuesEqual(a, b string, numeric bool) bool {
	if naming.Equal(a, b) {
		return true
	}
	if !numeric {
		return false
	}
	x, err1 := strconv.ParseFloat(strings.TrimSpace(a), 64)
	y, err2 := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err1 != nil || err2 != nil {
		return false
	}
	if math.IsNaN(x) && math.IsNaN(y) {
		return true
	}
	return x == y
}

// returns value of field with schema default for absent and empty fields
func (o *Object) dataValue(index int) string {
	if v, ok := o.GetString(index, true, false); ok {
		return v
	}
	if f, ok := o.iddObject.Field(index); ok {
		if d, ok := f.DefaultValue(); ok {
			return d
		}
	}
	return ""
}

func (o *Object) isNumericField(index int) bool {
	f, ok := o.iddObject.Field(index)
	return ok && f.IsNumeric()
}

func (o *Object) isDataField(index int) bool {
	if o.isHandleField(index) {
		return false
	}
	f, ok := o.iddObject.Field(index)
	return !ok || !f.IsObjectList()
}

// Returns are records of the same schema object with equal data fields.
//
// Pointer fields and the handle field are not compared. Values of integer
// and real fields are compared by number, other values as text case
// insensitive. Empty fields are compared by their schema defaults
func (o *Object) DataFieldsEqual(other *Object) bool {
	if o.iddObject != other.iddObject {
		return false
	}
	if o.IsCatchall() && !naming.Equal(o.TypeName(), other.TypeName()) {
		return false
	}
	n := max(len(o.fields), len(other.fields))
	for i := 0; i < n; i++ {
		if !o.isDataField(i) {
			continue
		}
		if !valuesEqual(o.dataValue(i), other.dataValue(i), o.isNumericField(i)) {
			return false
		}
	}
	return true
}

func (o *Object) pointerValue(index int) string {
	v, _ := o.Value(index)
	return v
}

// Returns are records of the same schema object with pointers to the same
// named targets
func (o *Object) ObjectListFieldsEqual(other *Object) bool {
	if o.iddObject != other.iddObject {
		return false
	}
	n := max(len(o.fields), len(other.fields))
	for _, i := range o.iddObject.ObjectListFields(n) {
		if !naming.Equal(o.pointerValue(i), other.pointerValue(i)) {
			return false
		}
	}
	return true
}

// Returns are pointers of records compatible: for each pointer field either
// one of pointers is null or both point to the same named target
func (o *Object) ObjectListFieldsNonConflicting(other *Object) bool {
	if o.iddObject != other.iddObject {
		return false
	}
	n := max(len(o.fields), len(other.fields))
	for _, i := range o.iddObject.ObjectListFields(n) {
		a, b := o.pointerValue(i), other.pointerValue(i)
		if a != "" && b != "" && !naming.Equal(a, b) {
			return false
		}
	}
	return true
}
