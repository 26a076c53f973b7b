/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idf

// View of one extensible group of record fields.
//
// Group is identified by record and group index, it does not track shifts of
// groups made by inserts and erases.
type ExtensibleGroup struct {
	o     *Object
	index int
}

// Returns is group view empty, as returned by failed operations
func (g ExtensibleGroup) Empty() bool { return g.o == nil }

func (g ExtensibleGroup) Index() int { return g.index }

func (g ExtensibleGroup) Object() *Object { return g.o }

// Returns number of fields in group
func (g ExtensibleGroup) NumFields() int {
	if g.o == nil {
		return 0
	}
	return g.o.iddObject.GroupSize()
}

// Returns record field index of group field
func (g ExtensibleGroup) FieldIndex(field int) int {
	return g.o.iddObject.Index(g.index, field)
}

func (g ExtensibleGroup) valid(field int) bool {
	return g.o != nil && field >= 0 && field < g.NumFields() && g.index < g.o.NumExtensibleGroups()
}

func (g ExtensibleGroup) GetString(field int, returnDefault, returnUninitializedEmpty bool) (string, bool) {
	if !g.valid(field) {
		return "", false
	}
	return g.o.GetString(g.FieldIndex(field), returnDefault, returnUninitializedEmpty)
}

func (g ExtensibleGroup) Value(field int) (string, bool) {
	return g.GetString(field, false, false)
}

func (g ExtensibleGroup) SetString(field int, value string) bool {
	if !g.valid(field) {
		return false
	}
	return g.o.SetString(g.FieldIndex(field), value)
}

// Returns group field values
func (g ExtensibleGroup) Fields() []string {
	if g.o == nil || g.index >= g.o.NumExtensibleGroups() {
		return nil
	}
	return g.o.groupValues(g.index, false)
}

// Sets all group fields, values must have group size. All or nothing
func (g ExtensibleGroup) SetFields(values []string) bool {
	if g.o == nil || len(values) != g.NumFields() || g.index >= g.o.NumExtensibleGroups() {
		return false
	}
	return g.o.transact(func() bool { return g.o.setGroup(g.index, values) })
}

// Returns is group fields equal to other group fields, case insensitive,
// numeric fields by number
func (g ExtensibleGroup) Equal(other ExtensibleGroup) bool {
	a, b := g.Fields(), other.Fields()
	if len(a) != len(b) || g.Empty() || other.Empty() {
		return false
	}
	for i := range a {
		if !valuesEqual(a[i], b[i], g.o.isNumericField(g.FieldIndex(i))) {
			return false
		}
	}
	return true
}

// Returns group by index or empty group
func (o *Object) ExtensibleGroup(index int) ExtensibleGroup {
	if index < 0 || index >= o.NumExtensibleGroups() {
		return ExtensibleGroup{}
	}
	return ExtensibleGroup{o: o, index: index}
}

func (o *Object) ExtensibleGroups() []ExtensibleGroup {
	n := o.NumExtensibleGroups()
	res := make([]ExtensibleGroup, n)
	for i := range res {
		res[i] = ExtensibleGroup{o: o, index: i}
	}
	return res
}

func (o *Object) groupValues(group int, withHandles bool) []string {
	gs := o.iddObject.GroupSize()
	res := make([]string, gs)
	for i := range res {
		res[i] = o.value(o.iddObject.Index(group, i), withHandles)
	}
	return res
}

func (o *Object) setGroup(group int, values []string) bool {
	for i, v := range values {
		if !o.set(o.iddObject.Index(group, i), v) {
			return false
		}
	}
	return true
}

// Appends extensible group. Values must be empty for a group of default
// values, or have group size. Returns empty group on failure, record is not
// changed then
func (o *Object) PushExtensibleGroup(values []string) ExtensibleGroup {
	var res ExtensibleGroup
	o.transact(func() bool {
		g, ok := o.pushGroup(values)
		if ok {
			res = ExtensibleGroup{o: o, index: g}
		}
		return ok
	})
	if res.o != nil && res.index >= o.NumExtensibleGroups() {
		// rejected by owner
		return ExtensibleGroup{}
	}
	return res
}

func (o *Object) pushGroup(values []string) (int, bool) {
	gs := o.iddObject.GroupSize()
	if gs == 0 || (len(values) != 0 && len(values) != gs) {
		return 0, false
	}
	nn := o.iddObject.NumNonextensible()
	if len(o.fields) < nn && !o.setString(nn-1, "") {
		return 0, false
	}
	n := len(o.fields)
	if (n-nn)%gs != 0 {
		return 0, false
	}
	if mf, ok := o.iddObject.MaxFields(); ok && n+gs > mf {
		return 0, false
	}
	for i := 0; i < gs; i++ {
		o.grow()
	}
	if values == nil {
		values = make([]string, gs)
	}
	for i, v := range values {
		if !o.set(n+i, v) {
			return 0, false
		}
	}
	return (n - nn) / gs, true
}

// Inserts extensible group at index, groups from index are shifted. Values
// must be empty or have group size. Returns empty group on failure, record
// is not changed then
func (o *Object) InsertExtensibleGroup(index int, values []string) ExtensibleGroup {
	n := o.NumExtensibleGroups()
	if index == n {
		return o.PushExtensibleGroup(values)
	}
	gs := o.iddObject.GroupSize()
	if index < 0 || index > n || (len(values) != 0 && len(values) != gs) {
		return ExtensibleGroup{}
	}
	ok := o.transact(func() bool {
		if _, ok := o.pushGroup(o.groupValues(n-1, true)); !ok {
			return false
		}
		for g := n - 1; g > index; g-- {
			if !o.setGroup(g, o.groupValues(g-1, true)) {
				return false
			}
		}
		if values == nil {
			values = make([]string, gs)
		}
		return o.setGroup(index, values)
	})
	if !ok {
		return ExtensibleGroup{}
	}
	return ExtensibleGroup{o: o, index: index}
}

// Removes last extensible group and returns its values. Returns nil on failure
func (o *Object) PopExtensibleGroup() []string {
	n := o.NumExtensibleGroups()
	if n == 0 {
		return nil
	}
	res := o.groupValues(n-1, false)
	ok := o.transact(func() bool {
		o.truncate(len(o.fields) - o.iddObject.GroupSize())
		return true
	})
	if !ok {
		return nil
	}
	return res
}

// Removes extensible group at index and returns its values, following
// groups are shifted. Returns nil on failure
func (o *Object) EraseExtensibleGroup(index int) []string {
	n := o.NumExtensibleGroups()
	if index < 0 || index >= n {
		return nil
	}
	res := o.groupValues(index, false)
	ok := o.transact(func() bool {
		for g := index; g < n-1; g++ {
			if !o.setGroup(g, o.groupValues(g+1, true)) {
				return false
			}
		}
		o.truncate(len(o.fields) - o.iddObject.GroupSize())
		return true
	})
	if !ok {
		return nil
	}
	return res
}

// Removes all extensible groups and returns their values. Returns nil on failure
func (o *Object) ClearExtensibleGroups() [][]string {
	n := o.NumExtensibleGroups()
	if n == 0 {
		return nil
	}
	res := make([][]string, n)
	for g := range res {
		res[g] = o.groupValues(g, false)
	}
	ok := o.transact(func() bool {
		o.truncate(o.iddObject.NumNonextensible())
		return true
	})
	if !ok {
		return nil
	}
	return res
}
