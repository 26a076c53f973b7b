/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idf

import (
	"strings"

	"github.com/google/uuid"

	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/idd"
)

// Parses text of exactly one record. Unlike Load, unknown types, extra
// fields and missed terminator are errors
func ParseObject(text string, schema idd.ISchema) (*Object, error) {
	raw, err := assemble("record", text)
	if err != nil {
		return nil, err
	}
	switch len(raw.records) {
	case 0:
		return nil, errAt(ErrEmptyRecord, 1, "«%s»", brief(text))
	case 1:
	default:
		return nil, errAt(ErrNotSingleRecord, raw.records[1].line, "«%s»", brief(text))
	}
	r := raw.records[0]
	r.comment = append(raw.header, r.comment...)
	return buildObject(r, schema, true)
}

// Builds record of raw record. Records shorter than min-fields are padded
// with empty fields. In lenient mode problems degrade record to Catchall or
// are fixed, with warnings
func buildObject(r *rawRecord, schema idd.ISchema, strict bool) (*Object, error) {
	if len(r.fields) == 0 || Decode(r.fields[0]) == "" {
		return nil, errAt(ErrEmptyRecord, r.line, "record without type")
	}
	if !r.terminated {
		if strict {
			return nil, errAt(ErrUnterminated, r.line, "«%s»", r.fields[0])
		}
		logger.Warning("line", r.line, "record", r.fields[0], "is not terminated")
	}

	typeName := Decode(r.fields[0])
	values := r.fields[1:]
	iddObject := schema.ObjectByName(typeName)

	if iddObject == nil {
		if strict {
			return nil, errAt(ErrUnknownObject, r.line, "«%s»", typeName)
		}
		logger.Warning("line", r.line, "unknown object", typeName, "is loaded as", idd.CatchallName)
		return buildCatchall(r, schema), nil
	}
	if mf, ok := iddObject.MaxFields(); ok && len(values) > mf {
		if strict {
			return nil, errAt(ErrTooManyFields, r.line, "«%s» has %d fields, %d allowed", typeName, len(values), mf)
		}
		logger.Warning("line", r.line, iddObject.Name(), "has", len(values), "fields while", mf, "allowed, loaded as", idd.CatchallName)
		return buildCatchall(r, schema), nil
	}

	o := &Object{handle: uuid.New(), iddObject: iddObject, comment: strings.Join(r.comment, "\n")}
	o.fields = append(o.fields, values...)
	if gs := iddObject.GroupSize(); gs > 0 && len(o.fields) > iddObject.NumNonextensible() {
		for (len(o.fields)-iddObject.NumNonextensible())%gs != 0 {
			o.fields = append(o.fields, "")
		}
	}
	for len(o.fields) < iddObject.DefaultFieldCount() {
		o.fields = append(o.fields, "")
	}
	if iddObject.HasHandleField() {
		if len(o.fields) == 0 {
			o.fields = append(o.fields, "")
		}
		if h, ok := ParseHandle(o.fields[0]); ok {
			o.handle = h
		}
		o.fields[0] = HandleString(o.handle)
	}

	vertices := iddObject.Format() == verticesFormat
	for i, c := range r.fieldComments {
		if i >= len(o.fields) || vertices && iddObject.IsExtensibleField(i) {
			continue
		}
		if c == o.defaultFieldComment(i) {
			continue
		}
		o.SetFieldComment(i, c)
	}
	return o, nil
}

func buildCatchall(r *rawRecord, schema idd.ISchema) *Object {
	o := &Object{handle: uuid.New(), iddObject: schema.Catchall(), comment: strings.Join(r.comment, "\n")}
	o.fields = append(o.fields, r.fields...)
	for i, c := range r.fieldComments {
		o.SetFieldComment(i+1, c)
	}
	return o
}
