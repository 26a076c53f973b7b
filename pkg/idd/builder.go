/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idd

import (
	"errors"
	"strconv"
	"strings"

	"github.com/voedger/idfspace/pkg/naming"
)

// Builder collects objects and builds an immutable schema
type Builder struct {
	version string
	header  string
	objects []*ObjectBuilder
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) SetVersion(v string) *Builder {
	b.version = v
	return b
}

func (b *Builder) SetHeader(h string) *Builder {
	b.header = h
	return b
}

// Adds new object. Object type is assigned in order of addition
func (b *Builder) AddObject(name string) *ObjectBuilder {
	ob := &ObjectBuilder{o: &Object{name: strings.TrimSpace(name)}}
	b.objects = append(b.objects, ob)
	return ob
}

// Validates objects and returns schema. All found errors are joined
func (b *Builder) Build() (*File, error) {
	f := newFile(b.version, b.header)
	var errs []error
	for i, ob := range b.objects {
		o, err := ob.build(ObjectType_FirstUser + ObjectType(i))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if f.names[naming.Fold(o.name)] != nil || naming.Equal(o.name, CatchallName) || naming.Equal(o.name, CommentOnlyName) {
			errs = append(errs, ErrAlreadyExists("object «%s»", o.name))
			continue
		}
		f.add(o)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return f, nil
}

// Builds schema and panics on error. Useful in tests
func (b *Builder) MustBuild() *File {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}

// Builder of one schema object
type ObjectBuilder struct {
	o         *Object
	fields    []*Field
	groupSize int
}

func (ob *ObjectBuilder) SetGroup(g string) *ObjectBuilder {
	ob.o.group = g
	return ob
}

func (ob *ObjectBuilder) SetMemo(m string) *ObjectBuilder {
	ob.o.memo = m
	return ob
}

func (ob *ObjectBuilder) SetFormat(f string) *ObjectBuilder {
	ob.o.format = f
	return ob
}

func (ob *ObjectBuilder) SetUnique() *ObjectBuilder {
	ob.o.unique = true
	return ob
}

func (ob *ObjectBuilder) SetRequired() *ObjectBuilder {
	ob.o.required = true
	return ob
}

func (ob *ObjectBuilder) SetObsolete() *ObjectBuilder {
	ob.o.obsolete = true
	return ob
}

func (ob *ObjectBuilder) SetMinFields(n int) *ObjectBuilder {
	ob.o.minFields = n
	return ob
}

func (ob *ObjectBuilder) SetMaxFields(n int) *ObjectBuilder {
	ob.o.maxFields = n
	return ob
}

// Makes object extensible. Group starts from the field marked BeginExtensible,
// or from the last groupSize fields if none is marked. Fields listed after the
// first group are ignored
func (ob *ObjectBuilder) SetExtensible(groupSize int) *ObjectBuilder {
	ob.groupSize = groupSize
	return ob
}

// Adds field. If type is not set, it is derived from field ID: "N" fields are
// real, others are alpha
func (ob *ObjectBuilder) AddField(f Field) *ObjectBuilder {
	ob.fields = append(ob.fields, f.clone())
	return ob
}

// Adds fields
func (ob *ObjectBuilder) AddFields(ff ...Field) *ObjectBuilder {
	for _, f := range ff {
		ob.AddField(f)
	}
	return ob
}

func (ob *ObjectBuilder) build(t ObjectType) (*Object, error) {
	o := *ob.o
	o.typ = t
	if o.name == "" {
		return nil, ErrMissed("object name")
	}

	var errs []error
	for _, f := range ob.fields {
		if f.Type == FieldType_null {
			f.Type = FieldType_Alpha
			if strings.HasPrefix(strings.ToUpper(f.ID), "N") {
				f.Type = FieldType_Real
			}
		}
		if err := validateField(&o, f); err != nil {
			errs = append(errs, err)
		}
	}

	all := ob.fields
	if ob.groupSize < 0 {
		errs = append(errs, ErrInvalid("%v extensible group size %d", &o, ob.groupSize))
	} else if ob.groupSize > 0 {
		begin := -1
		for i, f := range all {
			if f.BeginExtensible {
				begin = i
				break
			}
		}
		if begin < 0 {
			begin = len(all) - ob.groupSize
		}
		if begin < 0 || begin+ob.groupSize > len(all) {
			errs = append(errs, ErrOutOfBounds("%v extensible group of %d fields exceeds %d fields", &o, ob.groupSize, len(all)))
		} else {
			o.fields = all[:begin]
			o.extensible = all[begin : begin+ob.groupSize]
		}
	} else {
		o.fields = all
	}

	if o.maxFields > 0 && o.maxFields < len(o.fields) {
		errs = append(errs, ErrOutOfBounds("%v max-fields %d less than %d non-extensible fields", &o, o.maxFields, len(o.fields)))
	}
	if mf, ok := o.MaxFields(); ok && o.minFields > mf {
		errs = append(errs, ErrOutOfBounds("%v min-fields %d greater than max-fields %d", &o, o.minFields, mf))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	o.prepare()
	return &o, nil
}

func validateField(o *Object, f *Field) error {
	var errs []error
	switch f.Type {
	case FieldType_Choice:
		if len(f.Keys) == 0 {
			errs = append(errs, ErrMissed("%v choice field «%s» keys", o, f.Name))
		} else if f.HasDefault && !f.IsKey(f.Default) {
			errs = append(errs, ErrInvalid("%v field «%s» default «%s» is not a key", o, f.Name, f.Default))
		}
	case FieldType_Integer, FieldType_Real:
		if f.HasDefault && !f.IsAutoValue(f.Default) {
			if _, err := strconv.ParseFloat(f.Default, 64); err != nil {
				errs = append(errs, ErrInvalid("%v field «%s» default «%s» is not a number", o, f.Name, f.Default))
			}
		}
	case FieldType_ObjectList:
		if len(f.ObjectLists) == 0 {
			errs = append(errs, ErrMissed("%v object-list field «%s» lists", o, f.Name))
		}
	}
	if f.Min != nil && f.Max != nil && f.Min.Value > f.Max.Value {
		errs = append(errs, ErrInvalid("%v field «%s» bounds %s", o, f.Name, f.BoundsString()))
	}
	return errors.Join(errs...)
}
