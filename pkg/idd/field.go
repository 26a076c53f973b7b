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

// Numeric bound of field value
type Bound struct {
	Value     float64
	Exclusive bool
}

// Schema field. Field is immutable once its object is built
type Field struct {
	// Field identifier, like "A1" or "N12"
	ID   string
	Name string
	Type FieldType

	Required bool

	Default    string
	HasDefault bool

	Min, Max *Bound

	// Keys of choice field
	Keys []string

	// Reference lists which object-list field may point into
	ObjectLists []string

	// Reference lists. For a name field, lists the record is registered in.
	// For an object-list field, lists forwarded to the pointed record
	References []string

	Autosizable      bool
	Autocalculatable bool
	RetainCase       bool
	BeginExtensible  bool

	Units string
	Note  string
}

// Returns default value if field has one
func (f *Field) DefaultValue() (string, bool) {
	return f.Default, f.HasDefault
}

// Returns is s one of choice field keys, case insensitive
func (f *Field) IsKey(s string) bool {
	for _, k := range f.Keys {
		if naming.Equal(k, s) {
			return true
		}
	}
	return false
}

// Returns is field is a pointer to other records
// Returns is field of integer or real type
func (f *Field) IsNumeric() bool {
	return f.Type == FieldType_Integer || f.Type == FieldType_Real
}

func (f *Field) IsObjectList() bool {
	return f.Type == FieldType_ObjectList
}

// Returns is field is a record name
func (f *Field) isNameCandidate() bool {
	if f.Type != FieldType_Alpha {
		return false
	}
	return strings.EqualFold(f.Name, nameFieldName) || len(f.References) > 0
}

// Returns is value autosize or autocalculate literal accepted by the field
func (f *Field) IsAutoValue(s string) bool {
	return (f.Autosizable && strings.EqualFold(s, Autosize)) ||
		(f.Autocalculatable && strings.EqualFold(s, Autocalculate))
}

// Checks value against numeric bounds
func (f *Field) InBounds(v float64) bool {
	if f.Min != nil {
		if f.Min.Exclusive && v <= f.Min.Value || !f.Min.Exclusive && v < f.Min.Value {
			return false
		}
	}
	if f.Max != nil {
		if f.Max.Exclusive && v >= f.Max.Value || !f.Max.Exclusive && v > f.Max.Value {
			return false
		}
	}
	return true
}

// Renders bounds in interval notation, like "[0, 100)"
func (f *Field) BoundsString() string {
	var b strings.Builder
	if f.Min == nil {
		b.WriteString("(-inf")
	} else {
		if f.Min.Exclusive {
			b.WriteByte('(')
		} else {
			b.WriteByte('[')
		}
		b.WriteString(strconv.FormatFloat(f.Min.Value, 'g', -1, 64))
	}
	b.WriteString(", ")
	if f.Max == nil {
		b.WriteString("+inf)")
	} else {
		b.WriteString(strconv.FormatFloat(f.Max.Value, 'g', -1, 64))
		if f.Max.Exclusive {
			b.WriteByte(')')
		} else {
			b.WriteByte(']')
		}
	}
	return b.String()
}

func (f *Field) String() string {
	return fmt.Sprintf("%s «%s»", f.Type, f.Name)
}

func (f *Field) clone() *Field {
	c := *f
	c.Keys = append([]string(nil), f.Keys...)
	c.ObjectLists = append([]string(nil), f.ObjectLists...)
	c.References = append([]string(nil), f.References...)
	return &c
}
