/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objcache

// Bounded cache of objects
type ICache[K comparable, V any] interface {
	// Returns value and true if key exists, zero value and false otherwise
	Get(K) (value V, ok bool)

	// Puts value with key. Least recently used value is evicted when cache is full
	Put(K, V)

	// Removes value with key, if any
	Remove(K)

	// Removes all values
	Purge()

	// Number of cached values
	Len() int
}
