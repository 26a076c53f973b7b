/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idd

// Built-in object types, present in every schema
const (
	ObjectType_Null ObjectType = iota

	// Record of a type unknown to the schema. Field 0 holds the original type name
	ObjectType_Catchall

	// Comments without a record
	ObjectType_CommentOnly

	// First type assigned to schema objects
	ObjectType_FirstUser
)

const (
	CatchallName    = "Catchall"
	CommentOnlyName = "CommentOnly"
)

// Version object names
var versionObjectNames = []string{"Version", "OS:Version"}

// Size of the LRU cache of object lookups by name
const DefaultNameCacheSize = 256

// Prefix of schema object names which is stripped from default record names
const schemaNamePrefix = "OS:"

// Field name of a name field
const nameFieldName = "Name"

// Literals accepted by autosizable and autocalculatable numeric fields
const (
	Autosize      = "autosize"
	Autocalculate = "autocalculate"
)
