/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idd

// Read-only view of a schema.
//
// Implemented by *File, consumed by records and workspaces.
type ISchema interface {
	// Schema version, like "9.0.1"
	Version() string

	// Returns object by type or nil if type is unknown.
	// Built-in types are always known
	Object(ObjectType) *Object

	// Returns object by name, case insensitive, or nil if not found
	ObjectByName(name string) *Object

	// Returns schema objects in definition order, built-in ones excluded
	Objects() []*Object

	// Returns objects which must be presented in a valid collection
	RequiredObjects() []*Object

	// Returns objects which may be presented in a collection at most once
	UniqueObjects() []*Object

	// Returns object of the version record, or nil if schema has none
	VersionObject() *Object

	// Returns object of records of unknown types
	Catchall() *Object

	// Returns object of comment only records
	CommentOnly() *Object
}
