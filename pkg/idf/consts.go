/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idf

// Width of printed field value column, field comments are aligned after it
const PrintedFieldSpace = 38

// Schema object format printed as vertex triples
const verticesFormat = "vertices"

const (
	fieldSeparator     = ","
	recordTerminator   = ";"
	commentPrefix      = "!"
	fieldCommentPrefix = "!-"
	fieldIndent        = "  "
)

// Encoded forms of characters which can not be stored in field values
var encodings = []struct{ char, code string }{
	{"\n", "&#10"},
	{"\r", "&#13"},
	{",", "&#44"},
	{";", "&#59"},
	{"!", "&#33"},
}
