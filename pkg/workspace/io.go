/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package workspace

import (
	"fmt"
	"io"

	"github.com/valyala/bytebufferpool"

	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/idd"
	"github.com/voedger/idfspace/pkg/idf"
	"github.com/voedger/idfspace/pkg/naming"
)

// Loads workspace from IDF text, see FromFile
func Load(r io.Reader, schema idd.ISchema, opts ...Option) (*Workspace, error) {
	f, err := idf.Load(r, schema)
	if err != nil {
		return nil, err
	}
	return FromFile(f, opts...)
}

// Loads workspace from IDF file on disk, see FromFile
func LoadFile(path string, schema idd.ISchema, opts ...Option) (*Workspace, error) {
	f, err := idf.LoadFile(path, schema)
	if err != nil {
		return nil, err
	}
	ws, err := FromFile(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ws, nil
}

// Returns workspace of records of file. Records are added as one batch, name
// conflicts are resolved. Fails if records are not valid at the strictness
// level of options
func FromFile(f *idf.File, opts ...Option) (*Workspace, error) {
	ws := New(f.Schema(), opts...)
	if ws.header == "" {
		ws.header = f.Header()
	}
	if fvo := f.VersionObject(); fvo != nil {
		if v, _ := fvo.Value(0); v != "" && !naming.Equal(v, ws.Version()) {
			logger.Warning("version «"+v+"» of file differs from schema version «"+ws.Version()+"»")
			if vo := ws.VersionObject(); vo != nil {
				vo.SetString(0, v)
			}
		}
	}
	if _, err := ws.AddObjects(f.Objects(), false); err != nil {
		return nil, err
	}
	if logger.IsVerbose() {
		logger.Verbose("workspace loaded,", ws.NumObjects(), "records")
	}
	return ws, nil
}

// Returns free-standing file of copies of records in workspace order,
// version record first
func (ws *Workspace) ToIdfFile() *idf.File {
	f := idf.NewFile(ws.schema)
	f.SetHeader(ws.header)
	if vo := ws.VersionObject(); vo != nil {
		f.AddObject(vo.Clone(true))
	}
	for _, o := range ws.Objects(true) {
		f.AddObject(o.Clone(true))
	}
	return f
}

// Prints workspace as IDF text
func (ws *Workspace) Print(w io.Writer) error {
	return ws.ToIdfFile().Print(w)
}

func (ws *Workspace) String() string {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	if err := ws.Print(bb); err != nil {
		// writes to buffer do not fail
		panic(err)
	}
	return bb.String()
}

// Saves workspace as IDF file
func (ws *Workspace) Save(path string) error {
	return ws.ToIdfFile().Save(path)
}
