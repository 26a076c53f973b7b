/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idd

import (
	"fmt"
	"strings"
)

// Type of field value
type FieldType uint8

const (
	FieldType_null FieldType = iota
	FieldType_Alpha
	FieldType_Choice
	FieldType_Integer
	FieldType_Real
	// Pointer to records registered in one of the field object lists
	FieldType_ObjectList
	FieldType_ExternalList
	FieldType_Node
	// Record handle
	FieldType_Handle
	FieldType_URL

	FieldType_count
)

var fieldTypeNames = [FieldType_count]string{
	FieldType_null:         "",
	FieldType_Alpha:        "alpha",
	FieldType_Choice:       "choice",
	FieldType_Integer:      "integer",
	FieldType_Real:         "real",
	FieldType_ObjectList:   "object-list",
	FieldType_ExternalList: "external-list",
	FieldType_Node:         "node",
	FieldType_Handle:       "handle",
	FieldType_URL:          "url",
}

// Returns field type name as it is written in IDD `\type` property
func (t FieldType) String() string {
	if t < FieldType_count {
		return fieldTypeNames[t]
	}
	return fmt.Sprintf("FieldType(%d)", uint8(t))
}

// Returns is field holds a number
func (t FieldType) IsNumeric() bool {
	return t == FieldType_Integer || t == FieldType_Real
}

// Parses IDD `\type` value, case insensitive
func ParseFieldType(s string) (FieldType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t := FieldType_Alpha; t < FieldType_count; t++ {
		if fieldTypeNames[t] == s {
			return t, nil
		}
	}
	return FieldType_null, ErrInvalid("field type «%s»", s)
}
