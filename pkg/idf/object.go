/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idf

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/voedger/idfspace/pkg/idd"
	"github.com/voedger/idfspace/pkg/naming"
)

// Record of schema object.
//
// Fields are stored encoded, see Encode. Free-standing record is a plain value,
// record owned by a collection delegates pointer fields to the owner and has
// its changes approved by the owner.
type Object struct {
	handle        uuid.UUID
	iddObject     *idd.Object
	fields        []string
	fieldComments []string
	comment       string

	owner IOwner
	state State

	// changes of the current operation
	diffs []Diff
	depth int
}

// Returns new record of schema object. Fields are resized to the default
// number of fields, handle field is set. With fastName the name field is set
// to a unique placeholder
func New(iddObject *idd.Object, fastName bool) *Object {
	o := &Object{handle: uuid.New(), iddObject: iddObject}
	n := iddObject.DefaultFieldCount()
	if i, ok := iddObject.NameFieldIndex(); ok && n <= i {
		n = i + 1
	}
	o.fields = make([]string, n)
	if iddObject.HasHandleField() && n > 0 {
		o.fields[0] = HandleString(o.handle)
	}
	if fastName {
		if i, ok := iddObject.NameFieldIndex(); ok {
			o.fields[i] = naming.Unique()
		}
	}
	return o
}

// Returns record of unknown type. Type name is stored in field 0
func NewCatchall(schema idd.ISchema, typeName string, values ...string) *Object {
	o := &Object{handle: uuid.New(), iddObject: schema.Catchall()}
	o.fields = append([]string{Encode(typeName)}, encodeAll(values)...)
	return o
}

// Returns comment only record
func NewCommentOnly(schema idd.ISchema, comment string) *Object {
	o := &Object{handle: uuid.New(), iddObject: schema.CommentOnly()}
	o.comment = makeComment(comment)
	return o
}

// Returns braced textual form of handle, like "{8c6b1a3e-...}"
func HandleString(h uuid.UUID) string {
	return "{" + h.String() + "}"
}

// Parses handle in braced or plain form
func ParseHandle(s string) (uuid.UUID, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 2 && s[0] == '{' && s[len(s)-1] == '}' {
		s = s[1 : len(s)-1]
	}
	h, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return h, true
}

// Returns copy of record. Copy is unbound, pointer fields hold target names,
// or target handles if schema object has handle field. If keepHandle is false
// copy gets new handle
func (o *Object) Clone(keepHandle bool) *Object {
	c := &Object{
		handle:        o.handle,
		iddObject:     o.iddObject,
		fields:        make([]string, len(o.fields)),
		fieldComments: append([]string(nil), o.fieldComments...),
		comment:       o.comment,
	}
	withHandles := o.iddObject.HasHandleField()
	for i := range o.fields {
		c.fields[i] = Encode(o.value(i, withHandles))
	}
	if !keepHandle {
		c.handle = uuid.New()
		if c.isHandleField(0) && len(c.fields) > 0 {
			c.fields[0] = HandleString(c.handle)
		}
	}
	return c
}

func (o *Object) Handle() uuid.UUID { return o.handle }

func (o *Object) IddObject() *idd.Object { return o.iddObject }

func (o *Object) Type() idd.ObjectType { return o.iddObject.Type() }

// Returns type name of record. Records of unknown types return original type name
func (o *Object) TypeName() string {
	if o.IsCatchall() && len(o.fields) > 0 {
		return Decode(o.fields[0])
	}
	return o.iddObject.Name()
}

func (o *Object) IsCatchall() bool { return o.iddObject.Type() == idd.ObjectType_Catchall }

func (o *Object) IsCommentOnly() bool { return o.iddObject.Type() == idd.ObjectType_CommentOnly }

func (o *Object) State() State { return o.state }

func (o *Object) Owner() IOwner { return o.owner }

// Binds record to owner. Used by collections on add
func (o *Object) Attach(owner IOwner) {
	o.owner = owner
	o.state = State_Owned
}

// Unbinds record from owner. Record becomes removed, the terminal state
func (o *Object) Detach() {
	o.owner = nil
	o.state = State_Removed
}

// Restores binding undone by Detach, used by owner rollbacks
func (o *Object) Reattach(owner IOwner) {
	o.owner = owner
	o.state = State_Owned
}

func (o *Object) NumFields() int { return len(o.fields) }

// Returns number of present non-extensible fields
func (o *Object) NumNonextensibleFields() int {
	return min(len(o.fields), o.iddObject.NumNonextensible())
}

func (o *Object) NumExtensibleGroups() int {
	gs := o.iddObject.GroupSize()
	if gs == 0 {
		return 0
	}
	n := len(o.fields) - o.iddObject.NumNonextensible()
	if n <= 0 {
		return 0
	}
	return n / gs
}

// Returns minimal number of fields of valid record
func (o *Object) MinFields() int { return o.iddObject.MinFields() }

// Returns maximal number of fields, if bounded
func (o *Object) MaxFields() (int, bool) { return o.iddObject.MaxFields() }

func (o *Object) isHandleField(index int) bool {
	return index == 0 && o.iddObject.HasHandleField()
}

// Returns value of field, decoded. Pointer fields of owned records are
// resolved by owner
func (o *Object) value(index int, withHandles bool) string {
	if o.owner != nil {
		if v, ok := o.owner.ManagedField(o, index, withHandles); ok {
			return v
		}
	}
	return Decode(o.fields[index])
}

// Returns stored value of field as is, encoded and not resolved by owner
func (o *Object) RawField(index int) (string, bool) {
	if index < 0 || index >= len(o.fields) {
		return "", false
	}
	return o.fields[index], true
}

// Replaces stored value of field without any checks or notifications. Used
// by owners to clear text of fields they manage
func (o *Object) SetRawField(index int, value string) {
	if index >= 0 && index < len(o.fields) {
		o.fields[index] = value
	}
}

// Returns field value.
//
// Absent field is not ok. If returnDefault, empty value is replaced by the
// schema default, if any. If returnUninitializedEmpty, empty result is not ok
func (o *Object) GetString(index int, returnDefault, returnUninitializedEmpty bool) (string, bool) {
	if index < 0 || index >= len(o.fields) {
		return "", false
	}
	v := o.value(index, false)
	if v == "" && returnDefault {
		if f, ok := o.iddObject.Field(index); ok {
			if d, ok := f.DefaultValue(); ok {
				v = d
			}
		}
	}
	if v == "" && returnUninitializedEmpty {
		return "", false
	}
	return v, true
}

// Returns field value, absent field is not ok
func (o *Object) Value(index int) (string, bool) {
	return o.GetString(index, false, false)
}

// Returns field value with pointers rendered as target handles
func (o *Object) ValueWithHandle(index int) (string, bool) {
	if index < 0 || index >= len(o.fields) {
		return "", false
	}
	return o.value(index, true), true
}

// Returns is field absent or empty
func (o *Object) IsEmpty(index int) bool {
	v, ok := o.Value(index)
	return !ok || v == ""
}

// Returns all field values
func (o *Object) Fields() []string {
	res := make([]string, len(o.fields))
	for i := range o.fields {
		res[i] = o.value(i, false)
	}
	return res
}

// Returns all field values with pointers rendered as target handles
func (o *Object) FieldsWithHandles() []string {
	res := make([]string, len(o.fields))
	for i := range o.fields {
		res[i] = o.value(i, true)
	}
	return res
}

// Returns numeric value of field, the schema default is used for empty field
func (o *Object) GetDouble(index int) (float64, bool) {
	s, ok := o.GetString(index, true, true)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Returns integer value of field, the schema default is used for empty field
func (o *Object) GetInt(index int) (int, bool) {
	v, ok := o.GetDouble(index)
	if !ok || v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
		return 0, false
	}
	return int(v), true
}

func (o *Object) SetDouble(index int, value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	return o.SetString(index, strconv.FormatFloat(value, 'g', -1, 64))
}

func (o *Object) SetInt(index int, value int) bool {
	return o.SetString(index, strconv.Itoa(value))
}

// Returns record name. Ok is false if schema object has no name field
func (o *Object) Name() (string, bool) {
	i, ok := o.iddObject.NameFieldIndex()
	if !ok {
		return "", false
	}
	if i >= len(o.fields) {
		return "", true
	}
	return o.value(i, false), true
}

// Returns record name or empty string
func (o *Object) NameOrEmpty() string {
	n, _ := o.Name()
	return n
}

// Returns record comment, lines prefixed by "!"
func (o *Object) Comment() string { return o.comment }

// Sets record comment. Lines not started by "!" are prefixed by "! "
func (o *Object) SetComment(comment string) {
	o.comment = makeComment(comment)
}

// Returns field comment. If returnDefault, comment derived from schema field
// is returned for field without comment
func (o *Object) FieldComment(index int, returnDefault bool) (string, bool) {
	if index < 0 || index >= len(o.fields) {
		return "", false
	}
	c := ""
	if index < len(o.fieldComments) {
		c = o.fieldComments[index]
	}
	if c == "" && returnDefault {
		c = o.defaultFieldComment(index)
	}
	return c, true
}

// Sets field comment. Comment not started by "!" is prefixed by "!- "
func (o *Object) SetFieldComment(index int, comment string) bool {
	if index < 0 || index >= len(o.fields) {
		return false
	}
	comment = strings.TrimSpace(comment)
	if comment != "" && !strings.HasPrefix(comment, commentPrefix) {
		comment = fieldCommentPrefix + " " + comment
	}
	if comment == "" && index >= len(o.fieldComments) {
		return true
	}
	for len(o.fieldComments) <= index {
		o.fieldComments = append(o.fieldComments, "")
	}
	o.fieldComments[index] = comment
	return true
}

func (o *Object) defaultFieldComment(index int) string {
	f, ok := o.iddObject.Field(index)
	if !ok || o.IsCatchall() {
		return ""
	}
	c := fieldCommentPrefix + " " + o.iddObject.FieldLabel(index)
	if f.Units != "" {
		c += " {" + f.Units + "}"
	}
	return c
}

// Returns short description like "Zone «Zone 1»"
func (o *Object) BriefDescription() string {
	if n, ok := o.Name(); ok && n != "" {
		return fmt.Sprintf("%s «%s»", o.TypeName(), n)
	}
	return o.TypeName()
}

// Returns comment text with every non-empty line prefixed by "!"
func FormatComment(comment string) string { return makeComment(comment) }

func makeComment(comment string) string {
	var lines []string
	for _, l := range strings.FieldsFunc(comment, func(r rune) bool { return r == '\n' || r == '\r' }) {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if !strings.HasPrefix(l, commentPrefix) {
			l = commentPrefix + " " + l
		}
		lines = append(lines, l)
	}
	return strings.Join(lines, "\n")
}

func encodeAll(values []string) []string {
	res := make([]string, len(values))
	for i, v := range values {
		res[i] = Encode(v)
	}
	return res
}
