/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

// Package iddtest provides the schema used by tests of record and workspace packages
package iddtest

import (
	_ "embed"
	"sync"

	"github.com/voedger/idfspace/pkg/idd"
	"github.com/voedger/idfspace/pkg/iddparser"
)

//go:embed schema.idd
var SchemaText string

var (
	once   sync.Once
	schema *idd.File
)

// Returns test schema. Schema is parsed once and shared, it is immutable
func Schema() *idd.File {
	once.Do(func() {
		schema = iddparser.MustParse("schema.idd", SchemaText)
	})
	return schema
}

// Returns object of test schema by name. Panics if not found
func Object(name string) *idd.Object {
	o := Schema().ObjectByName(name)
	if o == nil {
		panic(idd.ErrObjectNotFound(name))
	}
	return o
}
