// Package cache provides a small generic LRU cache.
//
// rasterfx uses it to memoize generated convolution kernels, which are
// immutable and cheap to share but wasteful to rebuild for every call:
//
//	kernels := cache.New[key, *Kernel](64)
//	k := kernels.GetOrCreate(key{sigma, size}, build)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
