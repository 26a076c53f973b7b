/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objcache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

type cache[K comparable, V any] struct {
	lru *lru.Cache[K, V]
}

func newCache[K comparable, V any](size int, onEvicted func(K, V)) *cache[K, V] {
	l, err := lru.NewWithEvict[K, V](size, onEvicted)
	if err != nil {
		// only non-positive size fails
		panic(err)
	}
	return &cache[K, V]{lru: l}
}

func (c *cache[K, V]) Get(key K) (value V, ok bool) {
	return c.lru.Get(key)
}

func (c *cache[K, V]) Put(key K, value V) {
	c.lru.Add(key, value)
}

func (c *cache[K, V]) Remove(key K) {
	c.lru.Remove(key)
}

func (c *cache[K, V]) Purge() {
	c.lru.Purge()
}

func (c *cache[K, V]) Len() int {
	return c.lru.Len()
}
