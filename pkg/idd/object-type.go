/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idd

import "fmt"

// Schema object type. Built-in types are ObjectType_Catchall and
// ObjectType_CommentOnly, types of schema objects are assigned by Builder in
// definition order starting from ObjectType_FirstUser
type ObjectType uint16

func (t ObjectType) String() string {
	switch t {
	case ObjectType_Null:
		return "ObjectType_Null"
	case ObjectType_Catchall:
		return "ObjectType_Catchall"
	case ObjectType_CommentOnly:
		return "ObjectType_CommentOnly"
	}
	return fmt.Sprintf("ObjectType(%d)", uint16(t))
}

// Returns is type is a built-in one
func (t ObjectType) IsBuiltIn() bool {
	return t < ObjectType_FirstUser
}
