/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idd

import (
	"fmt"

	"github.com/voedger/idfspace/pkg/naming"
	"github.com/voedger/idfspace/pkg/objcache"
)

// Schema, immutable set of objects
type File struct {
	version string
	header  string

	// indexed by ObjectType
	objects []*Object
	names   map[string]*Object
	lookups objcache.ICache[string, *Object]

	required      []*Object
	unique        []*Object
	groups        []string
	versionObject *Object
}

func newFile(version, header string) *File {
	f := &File{
		version: version,
		header:  header,
		names:   make(map[string]*Object),
		lookups: objcache.New[string, *Object](DefaultNameCacheSize, nil),
	}
	f.objects = append(f.objects, nil, newCatchall(), newCommentOnly())
	return f
}

func newCatchall() *Object {
	o := &Object{
		typ:  ObjectType_Catchall,
		name: CatchallName,
		extensible: []*Field{
			{ID: "A1", Name: "Field", Type: FieldType_Alpha, RetainCase: true},
		},
	}
	o.prepare()
	return o
}

func newCommentOnly() *Object {
	o := &Object{typ: ObjectType_CommentOnly, name: CommentOnlyName}
	o.prepare()
	return o
}

func (f *File) Version() string { return f.version }

// Leading comments of IDD text
func (f *File) Header() string { return f.header }

func (f *File) Object(t ObjectType) *Object {
	if t == ObjectType_Null || int(t) >= len(f.objects) {
		return nil
	}
	return f.objects[t]
}

func (f *File) ObjectByName(name string) *Object {
	if o, ok := f.lookups.Get(name); ok {
		return o
	}
	o := f.names[naming.Fold(name)]
	if o != nil {
		f.lookups.Put(name, o)
	}
	return o
}

func (f *File) Objects() []*Object {
	return f.objects[ObjectType_FirstUser:]
}

func (f *File) RequiredObjects() []*Object { return f.required }

func (f *File) UniqueObjects() []*Object { return f.unique }

func (f *File) VersionObject() *Object { return f.versionObject }

func (f *File) Catchall() *Object { return f.objects[ObjectType_Catchall] }

func (f *File) CommentOnly() *Object { return f.objects[ObjectType_CommentOnly] }

// Returns groups in definition order
func (f *File) Groups() []string { return f.groups }

// Returns objects of group in definition order
func (f *File) ObjectsInGroup(group string) []*Object {
	var res []*Object
	for _, o := range f.Objects() {
		if naming.Equal(o.group, group) {
			res = append(res, o)
		}
	}
	return res
}

func (f *File) String() string {
	return fmt.Sprintf("IDD %s, %d objects", f.version, len(f.Objects()))
}

func (f *File) add(o *Object) {
	f.objects = append(f.objects, o)
	f.names[naming.Fold(o.name)] = o
	if o.required {
		f.required = append(f.required, o)
	}
	if o.unique {
		f.unique = append(f.unique, o)
	}
	if f.versionObject == nil {
		for _, n := range versionObjectNames {
			if naming.Equal(n, o.name) {
				f.versionObject = o
			}
		}
	}
	if o.group != "" && (len(f.groups) == 0 || f.groups[len(f.groups)-1] != o.group) {
		f.groups = append(f.groups, o.group)
	}
}
