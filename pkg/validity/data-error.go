/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package validity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/voedger/idfspace/pkg/idd"
)

// Kind of data error
type Kind uint8

const (
	Kind_NoIdd Kind = iota
	Kind_DataType
	Kind_NumericBound
	Kind_NameConflict
	Kind_NullAndRequired
	Kind_NumberOfFields
	Kind_Duplicate

	Kind_count
)

var kindErrors = [Kind_count]error{
	Kind_NoIdd:           ErrNoIdd,
	Kind_DataType:        ErrDataType,
	Kind_NumericBound:    ErrNumericBound,
	Kind_NameConflict:    ErrNameConflict,
	Kind_NullAndRequired: ErrNullAndRequired,
	Kind_NumberOfFields:  ErrNumberOfFields,
	Kind_Duplicate:       ErrDuplicate,
}

var kindNames = [Kind_count]string{
	Kind_NoIdd:           "NoIdd",
	Kind_DataType:        "DataType",
	Kind_NumericBound:    "NumericBound",
	Kind_NameConflict:    "NameConflict",
	Kind_NullAndRequired: "NullAndRequired",
	Kind_NumberOfFields:  "NumberOfFields",
	Kind_Duplicate:       "Duplicate",
}

func (k Kind) String() string {
	if k < Kind_count {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Returns sentinel error of the kind
func (k Kind) Err() error {
	if k < Kind_count {
		return kindErrors[k]
	}
	return nil
}

// Scope of data error
type Scope uint8

const (
	Scope_Field Scope = iota
	Scope_Object
	Scope_Collection
)

func (s Scope) String() string {
	switch s {
	case Scope_Field:
		return "Field"
	case Scope_Object:
		return "Object"
	case Scope_Collection:
		return "Collection"
	}
	return fmt.Sprintf("Scope(%d)", uint8(s))
}

// Data error found by validity check.
//
// Collection errors have zero Handle and refer to the object by Type only
type DataError struct {
	Scope Scope
	Kind  Kind

	Handle     uuid.UUID
	Type       idd.ObjectType
	TypeName   string
	ObjectName string

	// Field index for field scope, -1 otherwise
	FieldIndex int
}

// Returns field-level error
func FieldError(kind Kind, handle uuid.UUID, o *idd.Object, name string, index int) DataError {
	return DataError{Scope: Scope_Field, Kind: kind, Handle: handle, Type: o.Type(), TypeName: o.Name(), ObjectName: name, FieldIndex: index}
}

// Returns object-level error
func ObjectError(kind Kind, handle uuid.UUID, o *idd.Object, name string) DataError {
	return DataError{Scope: Scope_Object, Kind: kind, Handle: handle, Type: o.Type(), TypeName: o.Name(), ObjectName: name, FieldIndex: -1}
}

// Returns collection-level error
func CollectionError(kind Kind, o *idd.Object) DataError {
	return DataError{Scope: Scope_Collection, Kind: kind, Type: o.Type(), TypeName: o.Name(), FieldIndex: -1}
}

func (e DataError) Error() string {
	switch e.Scope {
	case Scope_Field:
		return fmt.Sprintf("%s «%s» field %d: %v", e.TypeName, e.ObjectName, e.FieldIndex, e.Kind.Err())
	case Scope_Object:
		return fmt.Sprintf("%s «%s»: %v", e.TypeName, e.ObjectName, e.Kind.Err())
	}
	return fmt.Sprintf("collection of %s: %v", e.TypeName, e.Kind.Err())
}

func (e DataError) Unwrap() error {
	return e.Kind.Err()
}
