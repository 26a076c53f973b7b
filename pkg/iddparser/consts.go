/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package iddparser

import (
	"regexp"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var iddLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `![^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Group", Pattern: `\\group[^\n]*`},
	{Name: "Property", Pattern: `\\[A-Za-z][^\n]*`},
	{Name: "FieldID", Pattern: `[AaNn][0-9]+[ \t]*[,;]`},
	{Name: "Sep", Pattern: `[,;]`},
	{Name: "Ident", Pattern: `[A-Za-z][^,;!\\\r\n]*`},
})

var iddParser = participle.MustBuild[iddAST](
	participle.Lexer(iddLexer),
	participle.Elide("Whitespace", "Comment"),
)

var (
	// `\name`, `\name>`, `\name<` or `\name:N` followed by value
	propertyRx = regexp.MustCompile(`^\\([A-Za-z-]+)([<>]|:[0-9]+)?\s*(.*)$`)
	versionRx  = regexp.MustCompile(`(?m)^!IDD_Version\s+(\S+)`)
)

const groupPrefix = `\group`
