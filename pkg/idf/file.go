/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/idd"
)

// Free-standing IDF file: header, version record and other records in order
type File struct {
	schema        idd.ISchema
	header        string
	versionObject *Object
	objects       []*Object
}

// Returns empty file with version record of the schema, if schema has one
func NewFile(schema idd.ISchema) *File {
	f := &File{schema: schema}
	if vo := schema.VersionObject(); vo != nil {
		o := New(vo, false)
		if len(o.fields) == 0 {
			o.fields = append(o.fields, "")
		}
		o.fields[0] = Encode(schema.Version())
		f.versionObject = o
	}
	return f
}

// Loads records from text. Records which can not be loaded as schema objects
// are loaded as Catchall, the error is returned for text which can not be
// read or tokenized
func Load(r io.Reader, schema idd.ISchema) (*File, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return LoadString("idf", string(text), schema)
}

// Loads file from disk, see Load
func LoadFile(path string, schema idd.ISchema) (*File, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadString(path, string(text), schema)
}

// Loads records from text, name is used in messages
func LoadString(name, text string, schema idd.ISchema) (*File, error) {
	raw, err := assemble(name, text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	f := &File{schema: schema, header: strings.Join(raw.header, "\n")}
	var errs []error
	for _, r := range raw.records {
		o, err := buildObject(r, schema, false)
		if err != nil {
			logger.Warning(name, err)
			errs = append(errs, err)
			continue
		}
		f.AddObject(o)
	}
	if len(raw.trailing) > 0 {
		f.AddObject(NewCommentOnly(schema, strings.Join(raw.trailing, "\n")))
	}
	if logger.IsVerbose() {
		logger.Verbose(name, "loaded,", len(f.objects), "records, skipped", len(errs))
	}
	return f, nil
}

func (f *File) Schema() idd.ISchema { return f.schema }

// Returns header comment, lines prefixed by "!"
func (f *File) Header() string { return f.header }

func (f *File) SetHeader(header string) { f.header = makeComment(header) }

// Returns version of the file, the version record value or schema version
func (f *File) Version() string {
	if f.versionObject != nil {
		if v, ok := f.versionObject.GetString(0, true, true); ok {
			return v
		}
	}
	return f.schema.Version()
}

// Returns version record or nil
func (f *File) VersionObject() *Object { return f.versionObject }

// Returns records except the version one
func (f *File) Objects() []*Object { return f.objects }

// Returns all records, version record first
func (f *File) AllObjects() []*Object {
	if f.versionObject == nil {
		return f.objects
	}
	return append([]*Object{f.versionObject}, f.objects...)
}

// Adds record. Version record replaces the current one
func (f *File) AddObject(o *Object) {
	if vo := f.schema.VersionObject(); vo != nil && o.iddObject == vo {
		if f.versionObject != nil {
			logger.Info("version record", f.versionObject.NameOrEmpty(), "is replaced")
		}
		f.versionObject = o
		return
	}
	f.objects = append(f.objects, o)
}

// Removes record. Returns false if file has no such record
func (f *File) RemoveObject(o *Object) bool {
	if f.versionObject == o {
		f.versionObject = nil
		return true
	}
	for i, x := range f.objects {
		if x == o {
			f.objects = append(f.objects[:i], f.objects[i+1:]...)
			return true
		}
	}
	return false
}

// Returns records of type
func (f *File) ObjectsOfType(t idd.ObjectType) []*Object {
	var res []*Object
	for _, o := range f.AllObjects() {
		if o.Type() == t {
			res = append(res, o)
		}
	}
	return res
}

// Prints header, version record and records
func (f *File) Print(w io.Writer) error {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	f.print(bb)
	_, err := w.Write(bb.B)
	return err
}

func (f *File) String() string {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	f.print(bb)
	return bb.String()
}

func (f *File) print(bb *bytebufferpool.ByteBuffer) {
	if f.header != "" {
		bb.WriteString(f.header)
		bb.WriteString("\n\n")
	}
	for _, o := range f.AllObjects() {
		o.print(bb)
	}
}

// Saves file to disk
func (f *File) Save(path string) error {
	var b strings.Builder
	if err := f.Print(&b); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return errors.Join(ErrSave, err)
	}
	return nil
}
