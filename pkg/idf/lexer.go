/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idf

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

var idfLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `![^\r\n]*`},
	{Name: "Sep", Pattern: `[,;]`},
	{Name: "Newline", Pattern: `\r?\n|\r`},
	{Name: "Space", Pattern: `[ \t]+`},
	{Name: "Text", Pattern: `[^,;!\r\n \t]+`},
})

var (
	tokComment = idfLexer.Symbols()["Comment"]
	tokSep     = idfLexer.Symbols()["Sep"]
	tokNewline = idfLexer.Symbols()["Newline"]
)

// Record as written in text, fields are kept encoded
type rawRecord struct {
	line          int
	comment       []string
	fields        []string // type name first
	fieldComments map[int]string
	terminated    bool
}

// Result of text assembly
type rawText struct {
	header   []string
	records  []*rawRecord
	trailing []string
}

// Splits IDF text into raw records.
//
// Comment lines directly above a record become the record comment. Comment on
// the line of a field separator becomes the field comment. Leading comment
// block terminated by a blank line is the header, comments after the last
// record are trailing
func assemble(name, text string) (*rawText, error) {
	lex, err := idfLexer.LexString(name, text)
	if err != nil {
		return nil, errAt(ErrSyntax, 0, "%v", err)
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, errAt(ErrSyntax, 0, "%v", err)
	}

	res := &rawText{}
	var (
		pending    []string
		cur        *rawRecord
		value      strings.Builder
		blankLine  = true // nothing but spaces since the line start
		headerDone bool

		// record and field of the last separator on the current line
		sepRecord *rawRecord
		sepField  = -1
	)

	for _, t := range tokens {
		switch t.Type {
		case lexer.EOF:
		case tokNewline:
			if blankLine && cur == nil && !headerDone && len(res.records) == 0 && len(pending) > 0 {
				res.header, pending = pending, nil
				headerDone = true
			}
			blankLine = true
			sepRecord, sepField = nil, -1
			if cur != nil {
				value.WriteByte(' ')
			}
		case tokComment:
			c := strings.TrimRight(t.Value, " \t")
			switch {
			case sepRecord != nil:
				if sepField >= 0 {
					sepRecord.fieldComments[sepField] = c
				}
			case cur != nil:
				cur.comment = append(cur.comment, c)
			default:
				pending = append(pending, c)
			}
			blankLine = false
		case tokSep:
			if cur == nil {
				cur = &rawRecord{line: t.Pos.Line, comment: pending, fieldComments: map[int]string{}}
				pending = nil
			}
			headerDone = true
			cur.fields = append(cur.fields, strings.TrimSpace(value.String()))
			value.Reset()
			sepRecord, sepField = cur, len(cur.fields)-2
			if t.Value == recordTerminator {
				cur.terminated = true
				res.records = append(res.records, cur)
				cur = nil
			}
			blankLine = false
		default:
			if cur == nil {
				if strings.TrimSpace(t.Value) == "" {
					continue
				}
				cur = &rawRecord{line: t.Pos.Line, comment: pending, fieldComments: map[int]string{}}
				pending = nil
				headerDone = true
			}
			value.WriteString(t.Value)
			if strings.TrimSpace(t.Value) != "" {
				blankLine = false
			}
		}
	}

	if cur != nil {
		if v := strings.TrimSpace(value.String()); v != "" || len(cur.fields) > 0 {
			cur.fields = append(cur.fields, v)
		}
		res.records = append(res.records, cur)
	}
	res.trailing = pending
	return res, nil
}
