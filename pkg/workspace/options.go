/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package workspace

import (
	"github.com/voedger/idfspace/pkg/idd"
	"github.com/voedger/idfspace/pkg/validity"
)

// Option of new workspace
type Option func(*Workspace)

// Sets strictness level, DefaultStrictness by default
func WithStrictness(level validity.StrictnessLevel) Option {
	return func(ws *Workspace) { ws.level = level }
}

// Created names are unique placeholders instead of names of series.
// Speeds up adding of many unnamed records
func WithFastNaming(fast bool) Option {
	return func(ws *Workspace) { ws.fastNaming = fast }
}

// Records renamed to resolve name conflicts take the smallest free suffix
// of their series instead of the one after the maximum
func WithFillNameGaps(fill bool) Option {
	return func(ws *Workspace) { ws.fillNameGaps = fill }
}

func WithProgress(p IProgress) Option {
	return func(ws *Workspace) { ws.progress = p }
}

// Sorted queries return records by type priority
func WithTypeOrder(types ...idd.ObjectType) Option {
	return func(ws *Workspace) {
		ws.order.kind = OrderKind_Type
		ws.order.typeOrder = types
	}
}

// Sorted queries return records in order which can be changed explicitly,
// new records are appended
func WithDirectOrder() Option {
	return func(ws *Workspace) { ws.order.kind = OrderKind_Direct }
}

func WithHeader(header string) Option {
	return func(ws *Workspace) { ws.SetHeader(header) }
}
