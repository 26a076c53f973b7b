/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package objcache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	require := require.New(t)

	evicted := make(map[string]int)
	c := New[string, int](2, func(k string, v int) { evicted[k] = v })

	c.Put("zone", 1)
	c.Put("building", 2)

	v, ok := c.Get("zone")
	require.True(ok)
	require.Equal(1, v)

	c.Put("surface", 3)
	require.Equal(map[string]int{"building": 2}, evicted)
	require.Equal(2, c.Len())

	_, ok = c.Get("building")
	require.False(ok)

	c.Remove("zone")
	require.Contains(evicted, "zone")

	c.Purge()
	require.Zero(c.Len())
}

func TestCachePanicsOnZeroSize(t *testing.T) {
	require.Panics(t, func() { New[string, int](0, nil) })
}
