/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package wsstore

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/voedger/idfspace/pkg/idd/iddtest"
	"github.com/voedger/idfspace/pkg/validity"
	"github.com/voedger/idfspace/pkg/workspace"
)

var testTime = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func testStore(t *testing.T) *store {
	t.Helper()
	s, err := open(filepath.Join(t.TempDir(), "test.db"), func() time.Time { return testTime })
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testWorkspace(t *testing.T, text string) *workspace.Workspace {
	t.Helper()
	ws, err := workspace.Load(strings.NewReader(text), iddtest.Schema())
	require.NoError(t, err)
	return ws
}

func TestBasicUsage(t *testing.T) {
	require := require.New(t)
	s := testStore(t)
	ws := testWorkspace(t, "Zone, Zone 1;\nLights, Light 1, Zone 1, , 100;\n")

	info, err := s.Put("office", ws)
	require.NoError(err)
	require.Equal(Info{Name: "office", SavedAt: testTime, NumObjects: 2, Version: "9.0.1"}, info)

	loaded, err := s.Get("office", iddtest.Schema())
	require.NoError(err)
	require.Equal(ws.String(), loaded.String())
	lights, ok := loaded.ObjectByTypeAndName(iddtest.Object("Lights").Type(), "Light 1")
	require.True(ok)
	v, _ := lights.Value(1)
	require.Equal("Zone 1", v)

	text, err := s.Text("office")
	require.NoError(err)
	require.Equal(ws.String(), string(text))
}

func TestList(t *testing.T) {
	require := require.New(t)
	s := testStore(t)

	_, err := s.Put("b", testWorkspace(t, "Zone, Zone 1;"))
	require.NoError(err)
	_, err = s.Put("a", testWorkspace(t, ""))
	require.NoError(err)

	infos, err := s.List()
	require.NoError(err)
	require.Len(infos, 2)
	require.Equal("a", infos[0].Name)
	require.Equal(0, infos[0].NumObjects)
	require.Equal("b", infos[1].Name)
	require.Equal(1, infos[1].NumObjects)

	// replace
	_, err = s.Put("a", testWorkspace(t, "Zone, Zone 1;\nZone, Zone 2;"))
	require.NoError(err)
	infos, err = s.List()
	require.NoError(err)
	require.Len(infos, 2)
	require.Equal(2, infos[0].NumObjects)
}

func TestDelete(t *testing.T) {
	require := require.New(t)
	s := testStore(t)

	_, err := s.Put("office", testWorkspace(t, "Zone, Zone 1;"))
	require.NoError(err)

	ok, err := s.Delete("office")
	require.NoError(err)
	require.True(ok)

	ok, err = s.Delete("office")
	require.NoError(err)
	require.False(ok)

	_, err = s.Get("office", iddtest.Schema())
	require.ErrorIs(err, ErrSnapshotNotFound)
	infos, err := s.List()
	require.NoError(err)
	require.Empty(infos)
}

func TestErrors(t *testing.T) {
	require := require.New(t)
	s := testStore(t)

	t.Run("empty name", func(t *testing.T) {
		_, err := s.Put("", testWorkspace(t, ""))
		require.ErrorIs(err, ErrEmptyName)
	})

	t.Run("snapshot is not valid at level", func(t *testing.T) {
		_, err := s.Put("draft", testWorkspace(t, "Zone, Zone 1;"))
		require.NoError(err)
		_, err = s.Get("draft", iddtest.Schema(), workspace.WithStrictness(validity.Final))
		require.ErrorIs(err, workspace.ErrNotAdded)
		require.ErrorContains(err, "draft")
	})

	t.Run("corrupted info", func(t *testing.T) {
		require.NoError(s.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket([]byte(infoBucketName)).Put([]byte("broken"), []byte{1, 2})
		}))
		_, err := s.List()
		require.ErrorIs(err, ErrCorruptedInfo)
	})

	t.Run("missing buckets", func(t *testing.T) {
		require.NoError(s.db.Update(func(tx *bolt.Tx) error {
			return tx.DeleteBucket([]byte(textBucketName))
		}))
		_, err := s.Text("draft")
		require.ErrorIs(err, ErrBucketNotFound)
	})
}

func TestReopen(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	require.NoError(err)
	_, err = s.Put("office", testWorkspace(t, "Zone, Zone 1;"))
	require.NoError(err)
	require.NoError(s.Close())

	s, err = Open(path)
	require.NoError(err)
	defer s.Close()
	infos, err := s.List()
	require.NoError(err)
	require.Len(infos, 1)
	require.Equal("office", infos[0].Name)
}
