/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package wsconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/idd/iddtest"
	"github.com/voedger/idfspace/pkg/idf"
	"github.com/voedger/idfspace/pkg/validity"
	"github.com/voedger/idfspace/pkg/workspace"
)

func TestParse(t *testing.T) {
	require := require.New(t)

	t.Run("empty file gives defaults", func(t *testing.T) {
		c, err := Parse("empty.hcl", nil)
		require.NoError(err)
		require.Equal(Default(), c)
	})

	t.Run("all attributes", func(t *testing.T) {
		c, err := Parse("full.hcl", []byte(`
strictness     = "final"
fast_naming    = true
fill_name_gaps = true
order          = "type"
type_order     = ["Zone", "Lights"]
log_level      = "verbose"
store_path     = "/tmp/ws.db"
schema_path    = "schema.idd"
`))
		require.NoError(err)
		require.Equal(Config{
			Strictness:   validity.Final,
			FastNaming:   true,
			FillNameGaps: true,
			Order:        workspace.OrderKind_Type,
			TypeOrder:    []string{"Zone", "Lights"},
			LogLevel:     logger.LogLevelVerbose,
			StorePath:    "/tmp/ws.db",
			SchemaPath:   "schema.idd",
		}, c)
	})

	cases := []struct {
		name string
		src  string
	}{
		{"syntax", `strictness = `},
		{"unknown attribute", `color = "red"`},
		{"wrong type", `fast_naming = "maybe"`},
		{"unknown level", `strictness = "Strict"`},
		{"unknown order", `order = "random"`},
		{"unknown log level", `log_level = "loud"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.name, []byte(c.src))
			require.ErrorIs(err, ErrConfig)
		})
	}

	t.Run("errors are wrapped", func(t *testing.T) {
		_, err := Parse("order.hcl", []byte(`order = "random"`))
		require.ErrorIs(err, workspace.ErrUnknownOrderKind)
		require.ErrorContains(err, "order.hcl")
	})
}

func TestLoadFile(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "idfspace.hcl")
	require.NoError(os.WriteFile(path, []byte(`order = "direct"`), 0o644))

	c, err := LoadFile(path)
	require.NoError(err)
	require.Equal(workspace.OrderKind_Direct, c.Order)
	require.Equal(DefaultStorePath, c.StorePath)

	_, err = LoadFile(filepath.Join(t.TempDir(), "absent.hcl"))
	require.ErrorIs(err, ErrConfig)
}

func TestWorkspaceOptions(t *testing.T) {
	require := require.New(t)
	schema := iddtest.Schema()

	c := Default()
	c.Strictness = validity.Minimal
	c.Order = workspace.OrderKind_Type
	c.TypeOrder = []string{"Lights", "Zone"}
	opts, err := c.WorkspaceOptions(schema)
	require.NoError(err)

	ws := workspace.New(schema, opts...)
	require.Equal(validity.Minimal, ws.StrictnessLevel())
	require.Equal(workspace.OrderKind_Type, ws.OrderKind())

	var records []*idf.Object
	for _, text := range []string{"Zone, Z;", "Lights, L, Z, , 1;"} {
		o, err := idf.ParseObject(text, schema)
		require.NoError(err)
		records = append(records, o)
	}
	_, err = ws.AddObjects(records, true)
	require.NoError(err)
	objects := ws.Objects(true)
	require.Equal("L", objects[0].NameOrEmpty())
	require.Equal("Z", objects[1].NameOrEmpty())

	t.Run("unknown type", func(t *testing.T) {
		c.TypeOrder = []string{"Zone", "Spaceship"}
		_, err := c.WorkspaceOptions(schema)
		require.ErrorIs(err, ErrUnknownType)
		require.ErrorContains(err, "Spaceship")
	})

	t.Run("direct", func(t *testing.T) {
		c := Default()
		c.Order = workspace.OrderKind_Direct
		opts, err := c.WorkspaceOptions(schema)
		require.NoError(err)
		require.Equal(workspace.OrderKind_Direct, workspace.New(schema, opts...).OrderKind())
	})
}
