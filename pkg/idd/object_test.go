/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testSchema(t *testing.T) *File {
	b := NewBuilder().SetVersion("9.0.1")

	b.AddObject("Version").SetUnique().
		AddField(Field{ID: "A1", Name: "Version Identifier", Default: "9.0", HasDefault: true})

	b.AddObject("Zone").SetGroup("Thermal Zones").SetMinFields(1).
		AddFields(
			Field{ID: "A1", Name: "Name", Required: true, References: []string{"ZoneNames", "ZoneAndZoneListNames"}},
			Field{ID: "N1", Name: "Multiplier", Type: FieldType_Integer, Default: "1", HasDefault: true, Min: &Bound{Value: 1}},
			Field{ID: "N2", Name: "Volume", Autocalculatable: true, Min: &Bound{Value: 0, Exclusive: true}, Units: "m3"},
		)

	b.AddObject("BuildingSurface:Detailed").SetGroup("Thermal Zones").SetExtensible(3).SetMinFields(12).
		AddFields(
			Field{ID: "A1", Name: "Name", Required: true, References: []string{"SurfaceNames"}},
			Field{ID: "A2", Name: "Zone Name", Type: FieldType_ObjectList, ObjectLists: []string{"ZoneNames"}, References: []string{"OccupiedZones"}},
			Field{ID: "N1", Name: "Vertex 1 X-coordinate", BeginExtensible: true, Units: "m"},
			Field{ID: "N2", Name: "Vertex 1 Y-coordinate", Units: "m"},
			Field{ID: "N3", Name: "Vertex 1 Z-coordinate", Units: "m"},
			Field{ID: "N4", Name: "Vertex 2 X-coordinate", Units: "m"},
		)

	b.AddObject("OS:Connection").
		AddFields(
			Field{ID: "A1", Name: "Handle", Type: FieldType_Handle},
			Field{ID: "A2", Name: "Source Object", Type: FieldType_ObjectList, ObjectLists: []string{"ConnectionObject"}},
		)

	b.AddObject("EnergyManagementSystem:Sensor").
		AddField(Field{ID: "A1", Name: "Name", Required: true})

	f, err := b.Build()
	require.NoError(t, err)
	return f
}

func TestObject(t *testing.T) {
	f := testSchema(t)

	t.Run("non-extensible object", func(t *testing.T) {
		require := require.New(t)
		zone := f.ObjectByName("zone")
		require.NotNil(zone)
		require.Equal("Zone", zone.Name())
		require.Equal(ObjectType_FirstUser+1, zone.Type())
		require.Equal("Thermal Zones", zone.Group())
		require.False(zone.IsExtensible())

		i, ok := zone.NameFieldIndex()
		require.True(ok)
		require.Zero(i)
		require.False(zone.HasHandleField())
		require.Equal([]string{"ZoneNames", "ZoneAndZoneListNames"}, zone.References())
		require.Equal([]int{0}, zone.RequiredFields())

		mf, ok := zone.MaxFields()
		require.True(ok)
		require.Equal(3, mf)
		require.Equal(1, zone.DefaultFieldCount())

		fld, ok := zone.Field(2)
		require.True(ok)
		require.Equal(FieldType_Real, fld.Type, "type derived from field ID")
		require.True(fld.IsAutoValue("AutoCalculate"))
		require.False(fld.IsAutoValue("autosize"))

		_, ok = zone.Field(3)
		require.False(ok)
		_, ok = zone.Field(-1)
		require.False(ok)

		idx, ok := zone.FieldIndex("volume")
		require.True(ok)
		require.Equal(2, idx)
	})

	t.Run("extensible object", func(t *testing.T) {
		require := require.New(t)
		srf := f.ObjectByName("BuildingSurface:Detailed")
		require.True(srf.IsExtensible())
		require.Equal(2, srf.NumNonextensible())
		require.Equal(3, srf.GroupSize())
		require.Len(srf.ExtensibleGroup(), 3, "repeated fields are dropped")

		_, ok := srf.MaxFields()
		require.False(ok)

		require.True(srf.IsNonextensibleField(1))
		require.True(srf.IsExtensibleField(2))
		require.True(srf.IsExtensibleField(200))

		g, fi := srf.ExtensibleIndex(7)
		require.Equal(1, g)
		require.Equal(2, fi)
		require.Equal(7, srf.Index(1, 2))

		fld, ok := srf.Field(7)
		require.True(ok)
		require.Equal("Vertex 1 Z-coordinate", fld.Name)
		require.Equal("Vertex 2 Z-coordinate", srf.FieldLabel(7))
		require.Equal("Zone Name", srf.FieldLabel(1))

		require.Equal([]int{1}, srf.ObjectListFields(8))
		require.Equal([]string{"OccupiedZones"}, srf.ForwardedReferences(1))
		require.Nil(srf.ForwardedReferences(0))

		require.Equal(14, srf.DefaultFieldCount(), "min-fields rounded to whole groups")
	})

	t.Run("handle and implicit references", func(t *testing.T) {
		require := require.New(t)
		conn := f.ObjectByName("OS:Connection")
		require.True(conn.HasHandleField())
		require.False(conn.HasNameField())
		require.Equal([]string{"ConnectionNames"}, conn.References())
		require.Equal(1, conn.DefaultFieldCount())
	})

	t.Run("underscore names", func(t *testing.T) {
		require.True(t, f.ObjectByName("EnergyManagementSystem:Sensor").UnderscoreName())
		require.False(t, f.ObjectByName("Zone").UnderscoreName())
	})
}

func TestFile(t *testing.T) {
	require := require.New(t)
	f := testSchema(t)

	require.Equal("9.0.1", f.Version())
	require.Len(f.Objects(), 5)
	require.Equal("Version", f.VersionObject().Name())
	require.Equal([]*Object{f.VersionObject()}, f.UniqueObjects())
	require.Empty(f.RequiredObjects())
	require.Equal([]string{"Thermal Zones"}, f.Groups())
	require.Len(f.ObjectsInGroup("thermal zones"), 2)

	require.Equal(ObjectType_Catchall, f.Catchall().Type())
	require.True(f.Catchall().IsExtensible())
	require.Equal(ObjectType_CommentOnly, f.CommentOnly().Type())
	require.Same(f.Catchall(), f.Object(ObjectType_Catchall))
	require.Nil(f.Object(ObjectType_Null))
	require.Nil(f.Object(1000))

	require.Nil(f.ObjectByName("Unknown"))
	require.Same(f.ObjectByName("ZONE"), f.ObjectByName("zone"))

	var _ ISchema = f
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Builder)
		err   error
	}{
		{"duplicate object", func(b *Builder) {
			b.AddObject("Zone")
			b.AddObject("ZONE")
		}, ErrAlreadyExistsError},
		{"built-in name", func(b *Builder) {
			b.AddObject("catchall")
		}, ErrAlreadyExistsError},
		{"empty name", func(b *Builder) {
			b.AddObject(" ")
		}, ErrMissedError},
		{"choice without keys", func(b *Builder) {
			b.AddObject("Zone").AddField(Field{ID: "A1", Name: "Kind", Type: FieldType_Choice})
		}, ErrMissedError},
		{"choice default not a key", func(b *Builder) {
			b.AddObject("Zone").AddField(Field{ID: "A1", Name: "Kind", Type: FieldType_Choice, Keys: []string{"Yes"}, Default: "No", HasDefault: true})
		}, ErrInvalidError},
		{"numeric default", func(b *Builder) {
			b.AddObject("Zone").AddField(Field{ID: "N1", Name: "Area", Default: "big", HasDefault: true})
		}, ErrInvalidError},
		{"object list without lists", func(b *Builder) {
			b.AddObject("Zone").AddField(Field{ID: "A1", Name: "Zone", Type: FieldType_ObjectList})
		}, ErrMissedError},
		{"bounds", func(b *Builder) {
			b.AddObject("Zone").AddField(Field{ID: "N1", Name: "Area", Min: &Bound{Value: 2}, Max: &Bound{Value: 1}})
		}, ErrInvalidError},
		{"group too large", func(b *Builder) {
			b.AddObject("Zone").SetExtensible(3).AddField(Field{ID: "N1", Name: "X"})
		}, ErrOutOfBoundsError},
		{"min greater than max", func(b *Builder) {
			b.AddObject("Zone").SetMinFields(2).AddField(Field{ID: "N1", Name: "X"})
		}, ErrOutOfBoundsError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			tt.build(b)
			_, err := b.Build()
			require.ErrorIs(t, err, tt.err)
			require.Panics(t, func() { b.MustBuild() })
		})
	}
}

func TestFieldBounds(t *testing.T) {
	tests := []struct {
		f    Field
		v    float64
		want bool
		str  string
	}{
		{Field{}, -1e300, true, "(-inf, +inf)"},
		{Field{Min: &Bound{Value: 0}}, 0, true, "[0, +inf)"},
		{Field{Min: &Bound{Value: 0, Exclusive: true}}, 0, false, "(0, +inf)"},
		{Field{Max: &Bound{Value: 1}}, 1, true, "(-inf, 1]"},
		{Field{Max: &Bound{Value: 1, Exclusive: true}}, 1, false, "(-inf, 1)"},
		{Field{Min: &Bound{Value: 0.5}, Max: &Bound{Value: 1.5}}, 2, false, "[0.5, 1.5]"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			require.Equal(t, tt.want, tt.f.InBounds(tt.v))
			require.Equal(t, tt.str, tt.f.BoundsString())
		})
	}
}

func TestParseFieldType(t *testing.T) {
	require := require.New(t)
	for ft := FieldType_Alpha; ft < FieldType_count; ft++ {
		got, err := ParseFieldType(ft.String())
		require.NoError(err)
		require.Equal(ft, got)
	}
	got, err := ParseFieldType(" Object-List ")
	require.NoError(err)
	require.Equal(FieldType_ObjectList, got)

	_, err = ParseFieldType("blob")
	require.ErrorIs(err, ErrInvalidError)

	require.True(FieldType_Integer.IsNumeric())
	require.False(FieldType_Choice.IsNumeric())
	require.Equal("FieldType(200)", FieldType(200).String())
}

func TestObjectTypeString(t *testing.T) {
	require := require.New(t)
	require.Equal("ObjectType_Catchall", ObjectType_Catchall.String())
	require.Equal("ObjectType(7)", ObjectType(7).String())
	require.True(ObjectType_CommentOnly.IsBuiltIn())
	require.False(ObjectType_FirstUser.IsBuiltIn())
}
