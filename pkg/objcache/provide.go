/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objcache

// Creates new LRU cache with K key type and V value type.
//
// Cache size is limited by size. Optional onEvicted is called when value is evicted or removed.
func New[K comparable, V any](size int, onEvicted func(K, V)) ICache[K, V] {
	return newCache[K, V](size, onEvicted)
}
