/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idf

import (
	"io"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
)

// Prints record in IDF text form, followed by a blank line
func (o *Object) Print(w io.Writer) error {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	o.print(bb)
	_, err := w.Write(bb.B)
	return err
}

// Returns IDF text of record
func (o *Object) String() string {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	o.print(bb)
	return bb.String()
}

func (o *Object) print(bb *bytebufferpool.ByteBuffer) {
	if o.comment != "" {
		bb.WriteString(o.comment)
		bb.WriteByte('\n')
	}
	if o.IsCommentOnly() {
		bb.WriteByte('\n')
		return
	}

	first := 0
	if o.IsCatchall() {
		first = 1
	}
	n := len(o.fields)
	bb.WriteString(o.TypeName())
	if n <= first {
		bb.WriteString(recordTerminator + "\n\n")
		return
	}
	bb.WriteString(fieldSeparator + "\n")

	withHandles := o.iddObject.HasHandleField()
	vertices := o.iddObject.Format() == verticesFormat
	textWidth := 0
	for i := first; i < n; i++ {
		v := Encode(o.value(i, withHandles))
		sep := fieldSeparator
		if i == n-1 {
			sep = recordTerminator
		}

		if vertices && o.iddObject.IsExtensibleField(i) {
			group, field := o.iddObject.ExtensibleIndex(i)
			if field == 0 {
				bb.WriteString(fieldIndent)
				textWidth = 0
			} else {
				bb.WriteByte(' ')
			}
			bb.WriteString(v)
			bb.WriteString(sep)
			textWidth += len(v)
			if field == o.iddObject.GroupSize()-1 || i == n-1 {
				writeSpaces(bb, PrintedFieldSpace-textWidth-4)
				bb.WriteString(" " + fieldCommentPrefix + " X,Y,Z Vertex " + strconv.Itoa(group+1))
				if f, ok := o.iddObject.Field(i); ok && f.Units != "" {
					bb.WriteString(" {" + f.Units + "}")
				}
				bb.WriteByte('\n')
			}
			continue
		}

		line := fieldIndent + v + sep
		if c, _ := o.FieldComment(i, true); c != "" {
			pad := PrintedFieldSpace - len(v)
			if pad > 0 {
				line += strings.Repeat(" ", pad)
			}
			line += " " + c
		}
		bb.WriteString(line)
		bb.WriteByte('\n')
	}
	bb.WriteByte('\n')
}

func writeSpaces(bb *bytebufferpool.ByteBuffer, n int) {
	if n > 0 {
		bb.WriteString(strings.Repeat(" ", n))
	}
}
