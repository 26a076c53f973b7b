/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idf

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/idfspace/pkg/idd/iddtest"
	"github.com/voedger/idfspace/pkg/naming"
	"github.com/voedger/idfspace/pkg/validity"
)

func TestNew(t *testing.T) {
	require := require.New(t)

	t.Run("resized to default field count", func(t *testing.T) {
		o := New(iddtest.Object("Building"), false)
		require.Equal(8, o.NumFields())
		require.Equal(State_Unbound, o.State())
		require.Nil(o.Owner())

		o = New(iddtest.Object("Construction"), false)
		require.Equal(2, o.NumFields())
		require.Equal(1, o.NumExtensibleGroups())
	})

	t.Run("fast name", func(t *testing.T) {
		o := New(iddtest.Object("Zone"), true)
		name, ok := o.Name()
		require.True(ok)
		require.True(naming.IsUnique(name))
	})

	t.Run("handle field", func(t *testing.T) {
		o := New(iddtest.Object("OS:Node"), false)
		require.Equal(2, o.NumFields())
		v, ok := o.Value(0)
		require.True(ok)
		require.Equal(HandleString(o.Handle()), v)

		require.False(o.SetString(0, HandleString(New(iddtest.Object("OS:Node"), false).Handle())))
		require.True(o.SetString(0, HandleString(o.Handle())))

		c := o.Clone(false)
		require.NotEqual(o.Handle(), c.Handle())
		v, _ = c.Value(0)
		require.Equal(HandleString(c.Handle()), v)
		require.Equal(o.Handle(), o.Clone(true).Handle())
	})

	t.Run("no name field", func(t *testing.T) {
		o := New(iddtest.Object("Timestep"), false)
		_, ok := o.Name()
		require.False(ok)
		_, ok = o.SetName("Timestep 1")
		require.False(ok)
	})
}

func TestGetString(t *testing.T) {
	require := require.New(t)
	o := New(iddtest.Object("Zone"), false)
	require.True(o.SetString(1, ""))
	require.Equal(2, o.NumFields())

	tests := []struct {
		name                string
		index               int
		returnDefault       bool
		returnUninitialized bool
		want                string
		ok                  bool
	}{
		{"plain", 1, false, false, "", true},
		{"default", 1, true, false, "0", true},
		{"uninitialized empty", 1, false, true, "", false},
		{"default beats uninitialized", 1, true, true, "0", true},
		{"absent", 3, true, false, "", false},
		{"negative", -1, false, false, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := o.GetString(tt.index, tt.returnDefault, tt.returnUninitialized)
			require.Equal(tt.ok, ok)
			require.Equal(tt.want, v)
		})
	}
}

func TestSetString(t *testing.T) {
	require := require.New(t)

	t.Run("grows through default fields", func(t *testing.T) {
		o := New(iddtest.Object("Zone"), false)
		require.True(o.SetString(4, "100"))
		require.Equal(5, o.NumFields())
		v, _ := o.GetString(2, true, false)
		require.Equal("1", v)
	})

	t.Run("beyond schema fails without changes", func(t *testing.T) {
		o := New(iddtest.Object("Zone"), false)
		require.False(o.SetString(5, "x"))
		require.False(o.SetString(-1, "x"))
		require.Equal(1, o.NumFields())
	})

	t.Run("encoded storage", func(t *testing.T) {
		o := New(iddtest.Object("Zone"), false)
		_, ok := o.SetName("a,b;c!d\ne")
		require.True(ok)
		raw, _ := o.RawField(0)
		require.Equal("a&#44b&#59c&#33d&#10e", raw)
		require.Equal("a,b;c!d\ne", o.NameOrEmpty())
	})

	t.Run("numbers", func(t *testing.T) {
		o := New(iddtest.Object("Zone"), false)
		require.True(o.SetDouble(1, 12.5))
		d, ok := o.GetDouble(1)
		require.True(ok)
		require.Equal(12.5, d)
		require.False(o.SetDouble(1, math.NaN()))
		require.False(o.SetDouble(1, math.Inf(1)))

		require.True(o.SetInt(2, 3))
		i, ok := o.GetInt(2)
		require.True(ok)
		require.Equal(3, i)

		_, ok = o.GetInt(1)
		require.False(ok)

		d, ok = o.GetDouble(3)
		require.False(ok, "absent field")
	})

	t.Run("underscore names", func(t *testing.T) {
		o := New(iddtest.Object("EnergyManagementSystem:Sensor"), false)
		name, ok := o.SetName("zone air temp")
		require.True(ok)
		require.Equal("zone_air_temp", name)
	})

	t.Run("create name", func(t *testing.T) {
		o := New(iddtest.Object("ZoneControl:Thermostat"), false)
		name, ok := o.CreateName(false)
		require.True(ok)
		require.True(strings.HasPrefix(name, "ZoneControl Thermostat {"))

		same, ok := o.CreateName(false)
		require.True(ok)
		require.Equal(name, same)
	})
}

func TestComments(t *testing.T) {
	require := require.New(t)
	o := New(iddtest.Object("Zone"), false)
	o.SetComment("first\n! second")
	require.Equal("! first\n! second", o.Comment())

	c, ok := o.FieldComment(0, true)
	require.True(ok)
	require.Equal("!- Name", c)
	c, _ = o.FieldComment(0, false)
	require.Empty(c)

	require.True(o.SetFieldComment(0, "the zone"))
	c, _ = o.FieldComment(0, false)
	require.Equal("!- the zone", c)

	require.False(o.SetFieldComment(3, "absent"))
	_, ok = o.FieldComment(3, true)
	require.False(ok)
}

func TestEncoding(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		encoded string
		decoded string
	}{
		{"plain", "Zone 1", "Zone 1", "Zone 1"},
		{"separators", "a,b;c!d", "a&#44b&#59c&#33d", "a,b;c!d"},
		{"line breaks", "a\r\nb", "a&#13&#10b", "a\r\nb"},
		{"ampersand", "A&B", "A&B", "A&B"},
		{"reference text is decoded", "x&#44y", "x&#44y", "x,y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			require.Equal(tt.encoded, Encode(tt.value))
			require.Equal(tt.decoded, Decode(Encode(tt.value)))
		})
	}
}

func TestSetIddObject(t *testing.T) {
	require := require.New(t)
	o := New(iddtest.Object("Zone"), false)
	require.True(o.SetString(4, "1"))
	o.SetName("Z")

	require.True(o.SetIddObject(iddtest.Object("ZoneList")))
	require.Equal("ZoneList", o.TypeName())
	require.Equal(5, o.NumFields())
	require.Equal(4, o.NumExtensibleGroups())

	require.True(o.SetIddObject(iddtest.Object("Material")))
	require.Equal(4, o.NumFields())
	require.Equal("Z", o.NameOrEmpty())
}

func TestEquality(t *testing.T) {
	require := require.New(t)
	lights := func(values ...string) *Object {
		o := New(iddtest.Object("Lights"), false)
		for i, v := range values {
			require.True(o.SetString(i, v))
		}
		return o
	}
	a := lights("L1", "Z1", "S1", "100")
	b := lights("l1", "Z2", "S1", "100.0")
	c := lights("L1", "", "s1", "1e2")
	d := lights("L1", "Z1", "S1", "99")

	require.True(a.DataFieldsEqual(b))
	require.False(a.ObjectListFieldsEqual(b))
	require.False(a.ObjectListFieldsNonConflicting(b))

	require.True(a.DataFieldsEqual(c))
	require.True(a.ObjectListFieldsNonConflicting(c))
	require.False(a.ObjectListFieldsEqual(c))

	require.False(a.DataFieldsEqual(d))
	require.True(a.ObjectListFieldsEqual(d))

	z := New(iddtest.Object("Zone"), false)
	require.False(a.DataFieldsEqual(z))

	t.Run("defaults", func(t *testing.T) {
		x := New(iddtest.Object("Zone"), false)
		y := New(iddtest.Object("Zone"), false)
		require.True(y.SetString(2, "1"))
		require.True(x.DataFieldsEqual(y))
		require.True(y.SetString(3, "Autocalculate"))
		require.True(x.DataFieldsEqual(y))
		require.True(y.SetString(4, "7"))
		require.False(x.DataFieldsEqual(y))
	})

	t.Run("numbers only in numeric fields", func(t *testing.T) {
		schedule := func(limits, value string) *Object {
			o := New(iddtest.Object("Schedule:Constant"), false)
			o.SetName("Always On")
			require.True(o.SetString(1, limits))
			require.True(o.SetString(2, value))
			return o
		}
		tests := []struct {
			name   string
			x, y   *Object
			wantEq bool
		}{
			{"alpha decimals", schedule("1.0", "1"), schedule("1", "1"), false},
			{"alpha infinity", schedule("inf", "1"), schedule("Infinity", "1"), false},
			{"alpha case", schedule("Fraction", "1"), schedule("FRACTION", "1"), true},
			{"real decimals", schedule("", "1.0"), schedule("", "1"), true},
			{"real infinity", schedule("", "inf"), schedule("", "Infinity"), true},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				require.Equal(tt.wantEq, tt.x.DataFieldsEqual(tt.y))
			})
		}
	})
}

func TestValidityReport(t *testing.T) {
	require := require.New(t)

	t.Run("building", func(t *testing.T) {
		o := New(iddtest.Object("Building"), false)
		o.SetName("Main")
		require.True(o.IsValid(validity.Draft, false))
		require.True(o.IsValid(validity.Final, false))
	})

	t.Run("parsed building", func(t *testing.T) {
		o, err := ParseObject("Building,MyBuilding,30,City,0.04,0.4,FullExterior,25;", iddtest.Schema())
		require.NoError(err)
		require.Equal("Building", o.TypeName())
		require.Equal(8, o.NumFields())
		require.Equal("MyBuilding", o.NameOrEmpty())
		require.True(o.IsValid(validity.Draft, false))
		require.True(o.IsValid(validity.Final, false))
	})

	t.Run("short text is padded to min-fields", func(t *testing.T) {
		short, err := ParseObject("Building, Main, 0, Suburbs, .04, .4;", iddtest.Schema())
		require.NoError(err)
		require.Equal(8, short.NumFields())
		_, ok := short.GetString(7, false, true)
		require.False(ok)
		require.True(short.IsValid(validity.Final, false))

		lights, err := ParseObject("Lights, Light 1;", iddtest.Schema())
		require.NoError(err)
		require.Equal(4, lights.NumFields())
		require.True(lights.IsValid(validity.Draft, false))
		r := lights.ValidityReport(validity.Final, false)
		require.Len(r.ErrorsOfKind(validity.Kind_NullAndRequired), 2)
		require.Empty(r.ErrorsOfKind(validity.Kind_NumberOfFields))

		short.truncate(5)
		require.True(short.IsValid(validity.Draft, false))
		r = short.ValidityReport(validity.Final, false)
		require.Len(r.ErrorsOfKind(validity.Kind_NumberOfFields), 1)
		require.ErrorIs(r.Err(), validity.ErrNumberOfFields)
	})

	t.Run("field errors", func(t *testing.T) {
		o := New(iddtest.Object("Building"), false)
		require.True(o.SetString(1, "north"))
		require.True(o.SetString(2, "Forest"))
		require.True(o.SetString(3, "0.6"))
		require.True(o.SetString(7, "2.5"))

		r := o.ValidityReport(validity.Draft, false)
		require.Len(r.ErrorsOfKind(validity.Kind_DataType), 3)
		require.Len(r.ErrorsOfKind(validity.Kind_NumericBound), 1)
		require.Empty(r.ErrorsOfKind(validity.Kind_NullAndRequired))

		r = o.ValidityReport(validity.Final, false)
		errs := r.ErrorsOfKind(validity.Kind_NullAndRequired)
		require.Len(errs, 1)
		require.Equal(0, errs[0].FieldIndex)

		require.True(o.ValidityReport(validity.Minimal, false).Valid())
		require.True(o.ValidityReport(validity.None, false).Valid())
	})

	t.Run("auto values", func(t *testing.T) {
		o := New(iddtest.Object("Zone"), false)
		require.True(o.SetString(3, "autocalculate"))
		require.True(o.SetString(4, "Autosize"))
		r := o.ValidityReport(validity.Draft, false)
		require.Len(r.Errors(), 1)
		require.Equal(4, r.Errors()[0].FieldIndex)
	})

	t.Run("catchall", func(t *testing.T) {
		o := NewCatchall(iddtest.Schema(), "Foo", "a")
		require.Equal("Foo", o.TypeName())
		require.True(o.IsValid(validity.None, false))
		r := o.ValidityReport(validity.Minimal, false)
		require.Len(r.ErrorsOfKind(validity.Kind_NoIdd), 1)
	})
}
