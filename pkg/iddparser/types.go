/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package iddparser

import "github.com/alecthomas/participle/v2/lexer"

type iddAST struct {
	Entries []*entryAST `parser:"@@*"`
}

type entryAST struct {
	Group  *string    `parser:"  @Group"`
	Object *objectAST `parser:"| @@"`
}

type objectAST struct {
	Pos    lexer.Position
	Name   string      `parser:"@Ident"`
	Term   string      `parser:"@Sep"`
	Props  []string    `parser:"@Property*"`
	Fields []*fieldAST `parser:"@@*"`
}

type fieldAST struct {
	Pos   lexer.Position
	ID    string   `parser:"@FieldID"`
	Props []string `parser:"@Property*"`
}
