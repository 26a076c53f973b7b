/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/idd/iddtest"
	"github.com/voedger/idfspace/pkg/wsstore"
)

const finalText = `! Office

Timestep, 4;
Building, Main, 0, Suburbs, .04, .4, FullExterior, 25;
Schedule:Constant, Always On, , 1;
Zone, Zone 1;
Lights, Light 1, Zone 1, Always On, 100;
`

const draftText = `Zone, Zone 1;
Lights, Light 1, Zone 1, , 100;
Zone, Zone 1;
`

type testDir string

func newTestDir(t *testing.T) testDir {
	t.Helper()
	dir := testDir(t.TempDir())
	dir.write(t, "schema.idd", iddtest.SchemaText)
	dir.write(t, "final.idf", finalText)
	dir.write(t, "draft.idf", draftText)
	return dir
}

func (d testDir) path(name string) string { return filepath.Join(string(d), name) }

func (d testDir) write(t *testing.T, name, text string) {
	t.Helper()
	require.NoError(t, os.WriteFile(d.path(name), []byte(text), 0o644))
}

func run(args ...string) (string, error) {
	root := newRootCmd(append([]string{"idfctl"}, args...), "0.1.0")
	out := bytes.Buffer{}
	root.SetOut(&out)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run("version")
	require.NoError(t, err)
	require.Equal(t, "idfctl version 0.1.0\n", out)
}

func TestValidate(t *testing.T) {
	require := require.New(t)
	defer logger.SetLogLevelWithRestore(logger.LogLevelError)()
	dir := newTestDir(t)

	out, err := run("validate", "--idd", dir.path("schema.idd"), dir.path("final.idf"), dir.path("draft.idf"))
	require.NoError(err)
	require.Contains(out, "final.idf: valid at Draft level")
	require.Contains(out, "draft.idf: valid at Draft level")

	out, err = run("validate", "--idd", dir.path("schema.idd"), "-l", "Final", dir.path("final.idf"), dir.path("draft.idf"))
	require.ErrorIs(err, ErrInvalidFiles)
	require.ErrorContains(err, "1 of 2")
	require.Contains(out, "final.idf: valid at Final level")
	require.Contains(out, "draft.idf: validity report at Final level")
	require.Contains(out, "required field is null")

	t.Run("errors", func(t *testing.T) {
		_, err := run("validate", dir.path("final.idf"))
		require.ErrorIs(err, ErrNoSchema)

		_, err = run("validate", "--idd", dir.path("schema.idd"), dir.path("absent.idf"))
		require.ErrorIs(err, os.ErrNotExist)

		_, err = run("validate", "--idd", dir.path("schema.idd"), "-l", "Strict", dir.path("final.idf"))
		require.Error(err)

		_, err = run("validate", "--idd", dir.path("schema.idd"))
		require.Error(err)
	})
}

func TestFmt(t *testing.T) {
	require := require.New(t)
	defer logger.SetLogLevelWithRestore(logger.LogLevelError)()
	dir := newTestDir(t)

	out, err := run("fmt", "--idd", dir.path("schema.idd"), dir.path("draft.idf"))
	require.NoError(err)
	require.Contains(out, "Zone 1")
	require.Contains(out, "Zone 2")

	_, err = run("fmt", "--idd", dir.path("schema.idd"), "-o", dir.path("out.idf"), dir.path("final.idf"))
	require.NoError(err)
	text, err := os.ReadFile(dir.path("out.idf"))
	require.NoError(err)
	require.True(strings.HasPrefix(string(text), "! Office"))

	t.Run("configuration", func(t *testing.T) {
		dir.write(t, "idfspace.hcl", `
schema_path = "`+filepath.ToSlash(dir.path("schema.idd"))+`"
order       = "type"
type_order  = ["Lights"]
log_level   = "error"
`)
		out, err := run("fmt", "--config", dir.path("idfspace.hcl"), dir.path("final.idf"))
		require.NoError(err)
		require.Less(strings.Index(out, "Lights,"), strings.Index(out, "Timestep,"))

		dir.write(t, "strict.hcl", `strictness = "Final"`)
		_, err = run("fmt", "--config", dir.path("strict.hcl"), "--idd", dir.path("schema.idd"), dir.path("draft.idf"))
		require.Error(err)
	})
}

func TestMerge(t *testing.T) {
	require := require.New(t)
	defer logger.SetLogLevelWithRestore(logger.LogLevelError)()
	dir := newTestDir(t)
	dir.write(t, "zone.idf", "Zone, Zone 1, 0, 2;\n")

	out, err := run("merge", "--idd", dir.path("schema.idd"), "--into", dir.path("final.idf"), dir.path("zone.idf"))
	require.NoError(err)
	require.Contains(out, "Zone 1")
	require.Contains(out, "Zone 2")
	require.True(strings.HasPrefix(out, "! Office"))

	_, err = run("merge", "--idd", dir.path("schema.idd"), dir.path("zone.idf"))
	require.Error(err)
}

func TestStats(t *testing.T) {
	require := require.New(t)
	defer logger.SetLogLevelWithRestore(logger.LogLevelError)()
	dir := newTestDir(t)

	out, err := run("stats", "--idd", dir.path("schema.idd"), dir.path("draft.idf"))
	require.NoError(err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(lines, 3)
	require.Equal("version 9.0.1, 3 records", lines[0])
	require.Equal([]string{"Lights", "1"}, strings.Fields(lines[1]))
	require.Equal([]string{"Zone", "2"}, strings.Fields(lines[2]))
}

func TestStore(t *testing.T) {
	require := require.New(t)
	defer logger.SetLogLevelWithRestore(logger.LogLevelError)()
	dir := newTestDir(t)
	store := dir.path("test.db")

	out, err := run("store", "put", "--idd", dir.path("schema.idd"), "--store", store, "office", dir.path("final.idf"))
	require.NoError(err)
	require.Equal("office: 5 records saved\n", out)

	out, err = run("store", "list", "--store", store)
	require.NoError(err)
	require.Contains(out, "office")
	require.Contains(out, "5 records, version 9.0.1")

	out, err = run("store", "get", "--idd", dir.path("schema.idd"), "--store", store, "office")
	require.NoError(err)
	require.Contains(out, "Light 1")

	_, err = run("store", "delete", "--store", store, "office")
	require.NoError(err)
	_, err = run("store", "delete", "--store", store, "office")
	require.ErrorIs(err, wsstore.ErrSnapshotNotFound)
	_, err = run("store", "get", "--idd", dir.path("schema.idd"), "--store", store, "office")
	require.ErrorIs(err, wsstore.ErrSnapshotNotFound)
}
