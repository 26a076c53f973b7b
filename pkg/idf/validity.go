/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idf

import (
	"math"
	"strconv"
	"strings"

	"github.com/voedger/idfspace/pkg/idd"
	"github.com/voedger/idfspace/pkg/validity"
)

// Returns errors of field found at the level
func (o *Object) FieldDataErrors(index int, level validity.StrictnessLevel) []validity.DataError {
	if level == validity.None || index < 0 || index >= len(o.fields) {
		return nil
	}
	name := o.NameOrEmpty()
	fieldErr := func(k validity.Kind) validity.DataError {
		return validity.FieldError(k, o.handle, o.iddObject, name, index)
	}

	f, ok := o.iddObject.Field(index)
	if !ok || o.IsCatchall() {
		return []validity.DataError{fieldErr(validity.Kind_NoIdd)}
	}

	var res []validity.DataError
	if level >= validity.Draft {
		v := o.value(index, false)
		if !fieldTypeCorrect(f, v) {
			res = append(res, fieldErr(validity.Kind_DataType))
		} else if !fieldInBounds(f, v) {
			res = append(res, fieldErr(validity.Kind_NumericBound))
		}
	}
	if level >= validity.Final && f.Required && o.value(index, false) == "" {
		res = append(res, fieldErr(validity.Kind_NullAndRequired))
	}
	return res
}

func fieldTypeCorrect(f *idd.Field, v string) bool {
	if v == "" {
		return true
	}
	switch f.Type {
	case idd.FieldType_Integer, idd.FieldType_Real:
		if f.IsAutoValue(v) {
			return true
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
		return f.Type == idd.FieldType_Real || x == math.Trunc(x)
	case idd.FieldType_Choice:
		return f.IsKey(v)
	case idd.FieldType_Handle:
		_, ok := ParseHandle(v)
		return ok
	}
	return true
}

func fieldInBounds(f *idd.Field, v string) bool {
	if f.Type != idd.FieldType_Integer && f.Type != idd.FieldType_Real {
		return true
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return true
	}
	return f.InBounds(x)
}

// Returns validity report of record at the level. With checkNames owned
// record also checks its name is unique among records it may be confused with
func (o *Object) ValidityReport(level validity.StrictnessLevel, checkNames bool) *validity.Report {
	r := validity.NewReport(level)
	if level == validity.None || o.IsCommentOnly() {
		return r
	}
	name := o.NameOrEmpty()
	if o.IsCatchall() {
		r.Insert(validity.ObjectError(validity.Kind_NoIdd, o.handle, o.iddObject, o.TypeName()))
		return r
	}

	for i := range o.fields {
		for _, e := range o.FieldDataErrors(i, level) {
			r.Insert(e)
		}
	}

	if level >= validity.Draft && checkNames && o.owner != nil && !o.owner.UniquelyIdentifiableByName(o) {
		r.Insert(validity.ObjectError(validity.Kind_NameConflict, o.handle, o.iddObject, name))
	}

	if level >= validity.Final {
		for _, i := range o.iddObject.RequiredFields() {
			if i >= len(o.fields) {
				r.Insert(validity.FieldError(validity.Kind_NullAndRequired, o.handle, o.iddObject, name, i))
			}
		}
		mf, bounded := o.iddObject.MaxFields()
		if len(o.fields) < o.iddObject.MinFields() || bounded && len(o.fields) > mf {
			r.Insert(validity.ObjectError(validity.Kind_NumberOfFields, o.handle, o.iddObject, name))
		}
	}
	return r
}

// Returns is record valid at the level
func (o *Object) IsValid(level validity.StrictnessLevel, checkNames bool) bool {
	return o.ValidityReport(level, checkNames).Valid()
}
